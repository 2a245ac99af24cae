package cli

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/breathe-hr/cursorlink/api"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newClientsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clients",
		Short: "List MCP client configuration layouts and file locations",
		Long:  "Display the MCP client configuration layouts accepted by validate and where each client keeps its file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runClients(cmd, all)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show file locations for every platform")

	return cmd
}

func runClients(cmd *cobra.Command, all bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "MCP Clients:")

	for _, layout := range api.ClientLayouts {
		fmt.Fprintf(out, "  %-15s (%s)\n", layout.Name, layout.Section)

		if !all {
			if path, ok := layout.Paths[runtime.GOOS]; ok {
				fmt.Fprintf(out, "    %s\n", path)
			}
			continue
		}

		// Sort platforms for consistent output
		platforms := lo.Keys(layout.Paths)
		sort.Strings(platforms)
		for _, goos := range platforms {
			fmt.Fprintf(out, "    %-8s %s\n", goos+":", layout.Paths[goos])
		}
	}
}
