package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewSanityMCPServer creates an MCP server exposing the sanity tools and
// resources. The scanRoot is the directory whose dataset subdirectories are
// checked.
func NewSanityMCPServer(scanRoot string) *server.MCPServer {
	s := server.NewMCPServer(
		"t4sanity",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, scanRoot)
	registerResources(s, scanRoot)

	return s
}
