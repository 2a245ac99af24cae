package api

// ClientLayout describes where an MCP client keeps its server configuration
type ClientLayout struct {
	Name string
	// Section is the top-level key holding the servers
	Section string
	// Paths maps GOOS to the configuration file location
	Paths map[string]string
}

// ClientLayouts lists the client configuration layouts ValidateClientFile understands
var ClientLayouts = []ClientLayout{
	{
		Name:    "Cursor",
		Section: "mcp.servers",
		Paths: map[string]string{
			"darwin":  "~/.cursor/mcp.json",
			"linux":   "~/.cursor/mcp.json",
			"windows": "%USERPROFILE%\\.cursor\\mcp.json",
		},
	},
	{
		Name:    "Claude Desktop",
		Section: "mcpServers",
		Paths: map[string]string{
			"darwin":  "~/Library/Application Support/Claude/claude_desktop_config.json",
			"linux":   "~/.config/Claude/claude_desktop_config.json",
			"windows": "%APPDATA%\\Claude\\claude_desktop_config.json",
		},
	},
}
