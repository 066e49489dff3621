// Package mcp exposes the journal's read-only analytics as Model Context
// Protocol tools over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/sadopc/moodr/internal/store"
)

// NewServer builds an MCP server with every moodr tool registered.
func NewServer(st *store.Store, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"moodr",
		version,
		server.WithLogging(),
		server.WithRecovery(),
	)

	RegisterMoodSummaryTool(s, st)
	RegisterGentleStreakTool(s, st)
	RegisterSearchNotesTool(s, st)
	return s
}

// Serve runs the stdio event loop until stdin closes.
func Serve(st *store.Store, version string) error {
	return server.ServeStdio(NewServer(st, version))
}

// ToolNames lists the registered tools in registration order.
var ToolNames = []string{"mood_summary", "gentle_streak", "search_notes"}
