package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ylchen07/jira-api/internal/jira"
)

func TestNewServerRegistersExpectedTools(t *testing.T) {
	t.Parallel()

	deps := Dependencies{
		JiraService: &jira.Service{},
		JiraBaseURL: "https://example.atlassian.net/",
	}

	srv := NewServer(deps)

	tools := srv.ListTools()
	expected := []string{
		"jira.get_issue",
		"jira.create_issue",
		"jira.update_issue",
		"jira.assign_issue",
		"jira.list_transitions",
		"jira.transition_issue",
		"jira.add_comment",
		"jira.list_versions",
	}

	if len(tools) != len(expected) {
		t.Fatalf("unexpected tool count: got %d want %d", len(tools), len(expected))
	}

	for _, name := range expected {
		if _, ok := tools[name]; !ok {
			t.Fatalf("tool %q not registered", name)
		}
	}
}

func TestNewServerWithoutServiceRegistersNothing(t *testing.T) {
	t.Parallel()

	srv := NewServer(Dependencies{})
	if got := len(srv.ListTools()); got != 0 {
		t.Fatalf("expected no tools, got %d", got)
	}
}

func TestNewJiraToolsTrimsSiteURL(t *testing.T) {
	t.Parallel()

	srv := server.NewMCPServer("test", "0.0.1")

	jt := NewJiraTools(srv, &jira.Service{}, "https://example.atlassian.net/")

	if jt.siteURL != "https://example.atlassian.net" {
		t.Fatalf("expected trimmed site URL, got %s", jt.siteURL)
	}

	if len(srv.ListTools()) != 8 {
		t.Fatalf("expected 8 jira tools, got %d", len(srv.ListTools()))
	}
}

func TestHandleUpdateIssueRejectsEmptyDelta(t *testing.T) {
	t.Parallel()

	jt := &JiraTools{siteURL: "https://example"}

	res, err := jt.handleUpdateIssue(context.Background(), mcp.CallToolRequest{}, JiraUpdateIssueArgs{Key: "PROJ-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result")
	}
	if got := firstText(res); got != "no updates provided" {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestHandleAssignIssueRequiresInstruction(t *testing.T) {
	t.Parallel()

	jt := &JiraTools{siteURL: "https://example"}

	res, err := jt.handleAssignIssue(context.Background(), mcp.CallToolRequest{}, JiraAssignIssueArgs{Key: "PROJ-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result")
	}
	if got := firstText(res); got != "either email or unassign must be provided" {
		t.Fatalf("unexpected message: %s", got)
	}
}

func firstText(res *mcp.CallToolResult) string {
	if len(res.Content) == 0 {
		return ""
	}
	if text, ok := res.Content[0].(mcp.TextContent); ok {
		return text.Text
	}
	return ""
}
