package cli

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	InvalidArguments   ErrorCode = "InvalidArguments"
	OpenFailed         ErrorCode = "OpenFailed"
	ReadFailed         ErrorCode = "ReadFailed"
	InvalidClientFiles ErrorCode = "InvalidClientFiles"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
