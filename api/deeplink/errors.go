package deeplink

// ErrorCode defines error types for deep-link operations
type ErrorCode string

const (
	// ErrEncode represents text that cannot be percent-encoded, such as invalid UTF-8
	ErrEncode ErrorCode = "EncodeFailed"
	// ErrInvalidLink represents a link that is not a Cursor MCP settings link
	ErrInvalidLink ErrorCode = "InvalidLink"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
