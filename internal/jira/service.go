package jira

import (
	"strings"

	"github.com/ylchen07/jira-api/internal/atlassian"
)

const apiPrefix = "/rest/api/3"

// Service exposes the Jira operations used by the CLI, HTTP and MCP
// boundaries. Every read fetches current remote truth; nothing is cached
// across calls.
type Service struct {
	client *atlassian.Client
}

// NewService creates a Jira service using the provided HTTP client.
func NewService(client *atlassian.Client) *Service {
	return &Service{client: client}
}

// apiPath constructs Jira API paths by joining parts with the API prefix.
func apiPath(parts ...string) string {
	builder := strings.Builder{}
	builder.WriteString(strings.TrimRight(apiPrefix, "/"))

	for _, part := range parts {
		if trimmed := strings.Trim(part, "/"); trimmed != "" {
			builder.WriteByte('/')
			builder.WriteString(trimmed)
		}
	}

	return builder.String()
}
