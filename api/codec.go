package api

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/morikuni/failure/v2"
)

// Indent is the indentation used for configuration shown to users
const Indent = "  "

// MarshalConfig renders the configuration as indented JSON without a trailing newline.
// Keys keep their insertion order.
func MarshalConfig(cfg *ServerConfig) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(cfg); err != nil {
		return "", failure.Wrap(err, failure.WithCode(ErrEncodeConfig),
			failure.Message("Failed to encode MCP configuration"))
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ParseConfig reads a Cursor MCP settings document. Missing or null args become empty.
func ParseConfig(data []byte) (*ServerConfig, error) {
	var cfg ServerConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, failure.Wrap(err, failure.WithCode(ErrInvalidConfig),
			failure.Message("Configuration is not valid JSON"))
	}
	if cfg.Servers == nil {
		return nil, failure.New(ErrMissingServers,
			failure.Message("Configuration has no 'mcp.servers' section"))
	}
	for pair := cfg.Servers.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Args == nil {
			entry := pair.Value
			entry.Args = []string{}
			cfg.Servers.Set(pair.Key, entry)
		}
	}
	return &cfg, nil
}
