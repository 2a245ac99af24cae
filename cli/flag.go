package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// envFlag collects repeated KEY=VALUE assignments in the order given.
// Values are parsed when the command runs so errors keep their code.
type envFlag struct {
	IsSet  bool
	Values []string
}

// String implements pflag.Value.
func (f *envFlag) String() string {
	return strings.Join(f.Values, ",")
}

func (f *envFlag) Set(value string) error {
	f.Values = append(f.Values, value)
	f.IsSet = true
	return nil
}

func (f *envFlag) Type() string {
	return "KEY=VALUE"
}

var _ pflag.Value = &envFlag{}
