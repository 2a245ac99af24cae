package api

import (
	"github.com/breathe-hr/cursorlink/api/deeplink"
	"github.com/breathe-hr/cursorlink/log"
	"github.com/morikuni/failure/v2"
)

// Result is a rendered configuration together with its deep-link
type Result struct {
	Config *ServerConfig
	// JSON is the indented configuration text shown to users
	JSON string
	Link string
}

// Generate renders the configuration and builds the Cursor deep-link for it
func Generate(cfg *ServerConfig) (*Result, error) {
	text, err := MarshalConfig(cfg)
	if err != nil {
		return nil, failure.Wrap(err)
	}
	link, err := deeplink.Build(text)
	if err != nil {
		return nil, failure.Wrap(err)
	}

	log.Debug("generated cursor link",
		"servers", cfg.Names(),
		"json_bytes", len(text),
		"link_bytes", len(link),
	)

	return &Result{Config: cfg, JSON: text, Link: link}, nil
}

// Decode reads the configuration carried by a Cursor deep-link
func Decode(link string) (*Result, error) {
	text, err := deeplink.Parse(link)
	if err != nil {
		return nil, failure.Wrap(err)
	}
	cfg, err := ParseConfig([]byte(text))
	if err != nil {
		return nil, failure.Wrap(err)
	}
	pretty, err := MarshalConfig(cfg)
	if err != nil {
		return nil, failure.Wrap(err)
	}
	return &Result{Config: cfg, JSON: pretty, Link: link}, nil
}
