package cli

import (
	"fmt"
	"os"

	"github.com/breathe-hr/cursorlink/api"
	"github.com/breathe-hr/cursorlink/log"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check MCP client configuration files for the server entry",
		Long: `Check that MCP client configuration files declare the server with a command
and arguments. Both the Claude Desktop ("mcpServers") and the Cursor
("mcp.servers") layouts are accepted.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return failure.New(InvalidArguments,
					failure.Message("validate requires at least one configuration file"))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, server)
		},
	}
	cmd.Flags().StringVarP(&server, "server", "s", api.DefaultServerName, "Server name to look for")

	return cmd
}

func runValidate(cmd *cobra.Command, files []string, server string) error {
	out := cmd.OutOrStdout()
	invalid := 0

	for _, file := range files {
		if err := validateFile(file, server); err != nil {
			invalid++
			log.Debug("validation failed", "file", file, "error", err)
			fmt.Fprintf(out, "❌ %s: %s\n", file, userMessage(err))
			continue
		}
		fmt.Fprintf(out, "✅ %s is valid\n", file)
	}

	if invalid > 0 {
		return failure.New(InvalidClientFiles,
			failure.Messagef("%d of %d configuration files are invalid", invalid, len(files)))
	}
	return nil
}

func validateFile(file, server string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return failure.Wrap(err, failure.WithCode(ReadFailed),
			failure.Message("File not found or unreadable"),
			failure.Context{"file": file})
	}
	if _, err := api.ValidateClientFile(data, server); err != nil {
		return failure.Wrap(err, failure.Context{"file": file})
	}
	return nil
}

// userMessage returns the failure message of err, falling back to its error text
func userMessage(err error) string {
	if fmsg := failure.MessageOf(err); fmsg != "" {
		return fmsg.String()
	}
	return err.Error()
}
