package cli

import (
	"fmt"

	"github.com/breathe-hr/cursorlink/api"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <link>",
		Short: "Print the configuration carried by a Cursor MCP link",
		Long:  "Decode a cursor://settings/mcp link and print its configuration as indented JSON",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return failure.New(InvalidArguments,
					failure.Messagef("decode accepts exactly one link, but received %d", len(args)))
			}
			return nil
		},
		RunE: runDecode,
	}
}

func runDecode(cmd *cobra.Command, args []string) error {
	result, err := api.Decode(args[0])
	if err != nil {
		return failure.Wrap(err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), result.JSON)
	return err
}
