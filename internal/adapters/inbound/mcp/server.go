package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewConfLintMCPServer creates a new MCP server with all ConfLint tools
// and resources registered. The projectPath is the root directory whose
// config files the server validates.
func NewConfLintMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"conflint",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
