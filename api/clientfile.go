package api

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
)

// serverSections are the top-level keys MCP clients keep their servers under,
// in lookup order
var serverSections = lo.Map(ClientLayouts, func(l ClientLayout, _ int) string {
	return l.Section
})

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ClientServer is a server entry found in an MCP client configuration file
type ClientServer struct {
	// Section is the top-level key the server was found under
	Section string
	Name    string
	Entry   ServerEntry
}

// ValidateClientFile checks that an MCP client configuration file declares the named
// server with a command and arguments.
func ValidateClientFile(data []byte, name string) (*ClientServer, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, failure.Wrap(err, failure.WithCode(ErrInvalidConfig),
			failure.Message("Configuration is not valid JSON"))
	}

	section, ok := lo.Find(serverSections, func(key string) bool {
		_, found := doc[key]
		return found
	})
	if !ok {
		return nil, failure.New(ErrMissingServers,
			failure.Message("Missing 'mcpServers' or 'mcp.servers' in configuration"))
	}

	var servers map[string]json.RawMessage
	if err := json.Unmarshal(doc[section], &servers); err != nil {
		return nil, failure.Wrap(err, failure.WithCode(ErrInvalidConfig),
			failure.Messagef("'%s' must be an object", section))
	}

	raw, ok := servers[name]
	if !ok {
		return nil, failure.New(ErrServerNotFound,
			failure.Messagef("Missing '%s' server in configuration", name),
			failure.Context{"section": section, "server": name})
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, failure.Wrap(err, failure.WithCode(ErrInvalidServer),
			failure.Messagef("Invalid '%s' server entry", name))
	}
	var entry ServerEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, failure.Wrap(err, failure.WithCode(ErrInvalidServer),
			failure.Messagef("Invalid '%s' server entry", name))
	}
	// only the presence of "args" is required, null included
	if _, ok := fields["args"]; ok && entry.Args == nil {
		entry.Args = []string{}
	}
	if err := ValidateEntry(entry); err != nil {
		return nil, failure.Wrap(err, failure.Context{"section": section, "server": name})
	}

	return &ClientServer{Section: section, Name: name, Entry: entry}, nil
}

// ValidateEntry reports the first missing required field of a server entry
func ValidateEntry(entry ServerEntry) error {
	err := validate.Struct(entry)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return failure.Wrap(err, failure.WithCode(ErrInvalidServer))
	}
	fields := lo.Map(verrs, func(fe validator.FieldError, _ int) string {
		return fe.Field()
	})
	return failure.New(ErrInvalidServer,
		failure.Messagef("Missing '%s' in server entry", fields[0]),
		failure.Context{"fields": strings.Join(fields, ",")})
}
