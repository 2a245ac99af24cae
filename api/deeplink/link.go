package deeplink

import (
	"net/url"
	"strings"

	"github.com/morikuni/failure/v2"
)

// Parts of the Cursor MCP settings deep-link
const (
	Scheme      = "cursor"
	Host        = "settings"
	Path        = "/mcp"
	ConfigParam = "config"
)

// Prefix is everything in a settings link that precedes the encoded configuration
const Prefix = Scheme + "://" + Host + Path + "?" + ConfigParam + "="

// Build returns the link that makes Cursor import the given configuration text
func Build(config string) (string, error) {
	encoded, err := EncodeComponent(config)
	if err != nil {
		return "", failure.Wrap(err)
	}
	return Prefix + encoded, nil
}

// Parse extracts the decoded configuration text from a Cursor MCP settings link
func Parse(link string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return "", failure.Wrap(err, failure.WithCode(ErrInvalidLink),
			failure.Message("Link is not a valid URL"))
	}
	if u.Scheme != Scheme || u.Host != Host || u.Path != Path {
		return "", failure.New(ErrInvalidLink,
			failure.Messagef("Not a Cursor MCP settings link, expected %s://%s%s", Scheme, Host, Path),
			failure.Context{"scheme": u.Scheme, "host": u.Host, "path": u.Path})
	}

	// url.ParseQuery would turn '+' into a space, which encodeURIComponent never produces
	for _, param := range strings.Split(u.RawQuery, "&") {
		key, value, _ := strings.Cut(param, "=")
		if key != ConfigParam {
			continue
		}
		return DecodeComponent(value)
	}

	return "", failure.New(ErrInvalidLink,
		failure.Messagef("Link has no '%s' parameter", ConfigParam))
}
