// Package mcp exposes the bookmark query surface as Model Context Protocol
// tools so AI agents can browse and search the collection.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/hamster-nav/hamsternav/internal/nav"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes bookmark navigation tools.
type Server struct {
	mgr *nav.Manager
	mcp *server.MCPServer
}

// NewServer creates a new MCP server around the given manager.
func NewServer(mgr *nav.Manager) *Server {
	s := &Server{mgr: mgr}

	s.mcp = server.NewMCPServer(
		"hamsternav",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchBookmarksTool, s.handleSearchBookmarks)
	s.mcp.AddTool(getNodeTool, s.handleGetNode)
	s.mcp.AddTool(listChildrenTool, s.handleListChildren)
	s.mcp.AddTool(getPathTool, s.handleGetPath)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
