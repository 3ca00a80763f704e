package mcp

import (
	"log/slog"

	"github.com/ylchen07/jira-api/internal/jira"

	"github.com/mark3labs/mcp-go/server"
)

// Dependencies bundles the services required for MCP server construction.
type Dependencies struct {
	JiraService *jira.Service
	JiraBaseURL string
	Logger      *slog.Logger
}

// NewServer builds an MCP server with registered Jira tools.
func NewServer(deps Dependencies) *server.MCPServer {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	srv := server.NewMCPServer(
		"Jira API",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithInstructions("Tools for Jira issue, project and user operations."),
		server.WithRecovery(),
	)

	if deps.JiraService != nil {
		NewJiraTools(srv, deps.JiraService, deps.JiraBaseURL)
	}

	return srv
}
