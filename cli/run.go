package cli

import (
	"fmt"

	"github.com/breathe-hr/cursorlink/api"
	"github.com/breathe-hr/cursorlink/log"
	"github.com/breathe-hr/cursorlink/mcp"
	"github.com/morikuni/failure/v2"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var (
	defaultOpenURL = browser.OpenURL

	// openURL hands a link to the OS URL handler
	openURL = defaultOpenURL
)

// rootOptions holds the flags of the root command
type rootOptions struct {
	name    string
	command string
	args    []string
	env     envFlag
	open    bool
	noColor bool
	debug   bool
}

// overrides converts the flags into overrides of the default server entry.
// --arg replaces the default args only when given.
func (o *rootOptions) overrides(cmd *cobra.Command) (api.Overrides, error) {
	ov := api.Overrides{
		Name:    o.name,
		Command: o.command,
	}
	if cmd.Flags().Changed("arg") {
		ov.Args = append([]string{}, o.args...)
	}
	if o.env.IsSet {
		ov.Env = make([]api.EnvVar, 0, len(o.env.Values))
		for _, value := range o.env.Values {
			v, err := api.ParseEnvVar(value)
			if err != nil {
				return api.Overrides{}, failure.Wrap(err)
			}
			ov.Env = append(ov.Env, v)
		}
	}
	return ov, nil
}

// NewRootCommand builds the cursorlink command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "cursorlink",
		Short:         "Generate the Cursor configuration for the Breathe HR MCP server",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `cursorlink prints the Cursor MCP configuration for the Breathe HR MCP server
together with a cursor:// link that imports it into Cursor.

Run without flags for the standard configuration. The server entry can be
adjusted with --name, --command, --arg and --env.`,
		Example: `  cursorlink                                   # Standard Breathe HR configuration
  cursorlink --command uvx --arg breathe-hr-mcp  # Launch through uvx
  cursorlink --env BREATHE_HR_API_KEY=xxxx --open
  cursorlink decode 'cursor://settings/mcp?config=...'`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetDebug(opts.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.name, "name", api.DefaultServerName, "Server name in the configuration")
	flags.StringVar(&opts.command, "command", api.DefaultCommand, "Executable that launches the MCP server")
	flags.StringArrayVar(&opts.args, "arg", nil, "Argument passed to the command (repeatable, replaces the defaults)")
	flags.Var(&opts.env, "env", "Environment variable for the server (repeatable, replaces the defaults)")
	flags.BoolVarP(&opts.open, "open", "o", false, "Open the generated link with the system URL handler")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable styled headings")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newDecodeCmd(),
		newValidateCmd(),
		newClientsCmd(),
		newVersionCmd(),
		mcp.Command(),
	)
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	return rootCmd
}

// Run executes the main CLI functionality
func Run() error {
	return NewRootCommand().Execute()
}

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	ov, err := opts.overrides(cmd)
	if err != nil {
		return failure.Wrap(err)
	}

	result, err := api.Generate(ov.Apply())
	if err != nil {
		return failure.Wrap(err)
	}

	out := cmd.OutOrStdout()
	p := newPrinter(out, !opts.noColor && isTerminal(out))
	if err := p.instructions(result); err != nil {
		return failure.Wrap(err)
	}

	if opts.open {
		log.Debug("opening link", "bytes", len(result.Link))
		browser.Stdout = cmd.ErrOrStderr()
		if err := openURL(result.Link); err != nil {
			return failure.Wrap(err, failure.WithCode(OpenFailed),
				failure.Message("Failed to open the link, copy it from the output above instead"))
		}
	}

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print detailed version information about cursorlink",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cursorlink version %s\n", api.Version)
			fmt.Fprintf(out, "  commit: %s\n", api.VersionCommit)
			fmt.Fprintf(out, "  built:  %s\n", api.BuildDate)
		},
	}
}
