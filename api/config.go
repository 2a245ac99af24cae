package api

import (
	"strings"

	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	// DefaultServerName is the key the Breathe HR server is registered under
	DefaultServerName = "breathe-hr"
	// DefaultCommand launches the Breathe HR MCP server module
	DefaultCommand = "python"
	// APIKeyEnv is the variable the MCP server reads its Breathe HR API key from
	APIKeyEnv = "BREATHE_HR_API_KEY"
	// APIKeyPlaceholder stands in for the user's API key in generated configuration
	APIKeyPlaceholder = "your_breathe_hr_api_key_here"
)

var defaultArgs = []string{"-m", "breathe_hr_mcp"}

// ServerConfig is the Cursor MCP settings document.
// Servers keep the order they were added in when encoded.
type ServerConfig struct {
	Servers *orderedmap.OrderedMap[string, ServerEntry] `json:"mcp.servers"`
}

// ServerEntry describes how an IDE launches a single MCP server
type ServerEntry struct {
	Command string                                 `json:"command" validate:"required"`
	Args    []string                               `json:"args" validate:"required"`
	Env     *orderedmap.OrderedMap[string, string] `json:"env,omitempty"`
}

// EnvVar is a single environment variable assignment
type EnvVar struct {
	Key   string
	Value string
}

// DefaultEntry returns the launch entry for the Breathe HR MCP server
func DefaultEntry() ServerEntry {
	return NewEntry(DefaultCommand, defaultArgs, []EnvVar{{Key: APIKeyEnv, Value: APIKeyPlaceholder}})
}

// DefaultConfig returns a fresh copy of the Breathe HR configuration.
func DefaultConfig() *ServerConfig {
	return NewConfig(DefaultServerName, DefaultEntry())
}

// NewEntry builds a ServerEntry. Args and env are copied; env keeps the given order.
func NewEntry(command string, args []string, env []EnvVar) ServerEntry {
	m := orderedmap.New[string, string]()
	for _, v := range env {
		m.Set(v.Key, v.Value)
	}
	return ServerEntry{
		Command: command,
		Args:    append([]string{}, args...),
		Env:     m,
	}
}

// NewConfig builds a configuration holding a single named server
func NewConfig(name string, entry ServerEntry) *ServerConfig {
	if entry.Args == nil {
		entry.Args = []string{}
	}
	servers := orderedmap.New[string, ServerEntry]()
	servers.Set(name, entry)
	return &ServerConfig{Servers: servers}
}

// Server looks up a server entry by name
func (c *ServerConfig) Server(name string) (ServerEntry, bool) {
	if c == nil || c.Servers == nil {
		return ServerEntry{}, false
	}
	return c.Servers.Get(name)
}

// Names returns the server names in insertion order
func (c *ServerConfig) Names() []string {
	if c == nil || c.Servers == nil {
		return nil
	}
	names := make([]string, 0, c.Servers.Len())
	for pair := c.Servers.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// EnvVars returns the entry's environment in insertion order
func (e ServerEntry) EnvVars() []EnvVar {
	if e.Env == nil {
		return nil
	}
	vars := make([]EnvVar, 0, e.Env.Len())
	for pair := e.Env.Oldest(); pair != nil; pair = pair.Next() {
		vars = append(vars, EnvVar{Key: pair.Key, Value: pair.Value})
	}
	return vars
}

// HasPlaceholder reports whether any environment value is still the API key placeholder
func (c *ServerConfig) HasPlaceholder() bool {
	if c == nil || c.Servers == nil {
		return false
	}
	for pair := c.Servers.Oldest(); pair != nil; pair = pair.Next() {
		if lo.ContainsBy(pair.Value.EnvVars(), func(v EnvVar) bool {
			return v.Value == APIKeyPlaceholder
		}) {
			return true
		}
	}
	return false
}

// Overrides replace parts of the default Breathe HR entry.
// Nil Args or Env keep the defaults; an empty non-nil slice clears them.
type Overrides struct {
	Name    string
	Command string
	Args    []string
	Env     []EnvVar
}

// Apply builds a new configuration from the defaults and the overrides
func (o Overrides) Apply() *ServerConfig {
	name := lo.Ternary(o.Name != "", o.Name, DefaultServerName)
	command := lo.Ternary(o.Command != "", o.Command, DefaultCommand)

	args := defaultArgs
	if o.Args != nil {
		args = o.Args
	}
	env := []EnvVar{{Key: APIKeyEnv, Value: APIKeyPlaceholder}}
	if o.Env != nil {
		env = o.Env
	}

	return NewConfig(name, NewEntry(command, args, env))
}

// ParseEnvVar parses a KEY=VALUE assignment. The value may be empty or contain '='.
func ParseEnvVar(s string) (EnvVar, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return EnvVar{}, failure.New(ErrInvalidEnvVar,
			failure.Messagef("Environment variable must be KEY=VALUE, got %q", s))
	}
	return EnvVar{Key: key, Value: value}, nil
}
