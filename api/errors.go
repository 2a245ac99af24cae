package api

// ErrorCode defines error types for configuration operations
type ErrorCode string

const (
	// ErrInvalidConfig represents JSON that cannot be read as an MCP configuration
	ErrInvalidConfig ErrorCode = "InvalidConfig"

	// ErrMissingServers represents a configuration without a server map
	ErrMissingServers ErrorCode = "MissingServers"
	ErrServerNotFound ErrorCode = "ServerNotFound"
	ErrInvalidServer  ErrorCode = "InvalidServerEntry"

	ErrEncodeConfig  ErrorCode = "EncodeConfigFailed"
	ErrInvalidEnvVar ErrorCode = "InvalidEnvVar"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
