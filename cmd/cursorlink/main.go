// Command cursorlink prints the Cursor configuration and deep-link for the Breathe HR MCP server.
package main

import (
	"fmt"
	"os"

	"github.com/breathe-hr/cursorlink/cli"
	"github.com/breathe-hr/cursorlink/log"
	"github.com/morikuni/failure/v2"
)

func main() {
	if err := cli.Run(); err != nil {
		var userMessage string
		if fmsg := failure.MessageOf(err); fmsg != "" {
			userMessage = fmsg.String()
		} else {
			userMessage = err.Error()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", userMessage)
		log.Debug("command failed", "detail", fmt.Sprintf("%+v", err))
		os.Exit(1)
	}
}
