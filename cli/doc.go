// Package cli implements the command-line interface for cursorlink.
//
// The cli package provides:
// - The root command printing the Cursor configuration and deep-link
// - Flags overriding the generated server entry
// - decode and validate commands for existing links and client files
// - Terminal styling of the instructions when attached to a TTY
package cli
