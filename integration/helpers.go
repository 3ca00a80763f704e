//go:build integration
// +build integration

package integration

import (
	"os"
	"strings"
	"testing"

	"github.com/ylchen07/jira-api/internal/atlassian"
	"github.com/ylchen07/jira-api/internal/config"
	"github.com/ylchen07/jira-api/internal/jira"
)

// requireIntegration skips the test if JIRA_API_INTEGRATION is not set.
func requireIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("JIRA_API_INTEGRATION") == "" {
		t.Skip("JIRA_API_INTEGRATION not set; skipping integration tests")
	}
}

// ensureHTTPS adds https:// prefix to URLs if not already present.
func ensureHTTPS(site string) string {
	trimmed := strings.TrimSpace(site)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return strings.TrimRight(trimmed, "/")
	}
	return "https://" + strings.TrimRight(trimmed, "/")
}

// setupJiraService creates a Jira service from environment variables.
// Skips the test if the site or credentials are not available.
func setupJiraService(t *testing.T) (*jira.Service, string) {
	t.Helper()

	site := ensureHTTPS(os.Getenv("JIRA_API_JIRA_SITE"))
	if site == "" {
		t.Skip("JIRA_API_JIRA_SITE not set")
	}

	creds := config.ServiceCredentials{
		Email:    os.Getenv("JIRA_API_JIRA_EMAIL"),
		APIToken: os.Getenv("JIRA_API_JIRA_API_TOKEN"),
	}
	if creds.Email == "" || creds.APIToken == "" {
		t.Skip("Jira credentials not provided")
	}

	client, err := atlassian.NewClient(site, creds, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	return jira.NewService(client), site
}

// skipIfEmpty skips the test if the provided slice is empty with a helpful message.
func skipIfEmpty[T any](t *testing.T, items []T, itemType string) {
	t.Helper()
	if len(items) == 0 {
		t.Skipf("no %s found; cannot proceed with test", itemType)
	}
}
