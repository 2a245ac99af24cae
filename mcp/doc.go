// Package mcp implements the Model Context Protocol server for cursorlink.
//
// The mcp package provides:
// - A stdio MCP server started by the "mcp" subcommand
// - A tool generating the Cursor configuration and deep-link
// - A tool decoding an existing Cursor deep-link
package mcp
