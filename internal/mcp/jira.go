package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/ylchen07/jira-api/internal/jira"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// JiraTools wires the Jira service into MCP tools.
type JiraTools struct {
	service *jira.Service
	siteURL string
}

// NewJiraTools registers Jira tools on the server.
func NewJiraTools(s *server.MCPServer, service *jira.Service, siteURL string) *JiraTools {
	jt := &JiraTools{
		service: service,
		siteURL: strings.TrimRight(siteURL, "/"),
	}

	s.AddTool(
		mcp.NewTool(
			"jira.get_issue",
			mcp.WithDescription("Fetch a Jira issue by key"),
			mcp.WithInputSchema[JiraGetIssueArgs](),
			mcp.WithOutputSchema[JiraIssueResult](),
		),
		mcp.NewTypedToolHandler(jt.handleGetIssue),
	)

	s.AddTool(
		mcp.NewTool(
			"jira.create_issue",
			mcp.WithDescription("Create a new Jira issue using an issue type name"),
			mcp.WithInputSchema[JiraCreateIssueArgs](),
			mcp.WithOutputSchema[JiraIssueResult](),
		),
		mcp.NewTypedToolHandler(jt.handleCreateIssue),
	)

	s.AddTool(
		mcp.NewTool(
			"jira.update_issue",
			mcp.WithDescription("Apply a partial update to an existing Jira issue"),
			mcp.WithInputSchema[JiraUpdateIssueArgs](),
			mcp.WithOutputSchema[OperationStatus](),
		),
		mcp.NewTypedToolHandler(jt.handleUpdateIssue),
	)

	s.AddTool(
		mcp.NewTool(
			"jira.assign_issue",
			mcp.WithDescription("Assign a Jira issue to a user by email, or unassign it"),
			mcp.WithInputSchema[JiraAssignIssueArgs](),
			mcp.WithOutputSchema[OperationStatus](),
		),
		mcp.NewTypedToolHandler(jt.handleAssignIssue),
	)

	s.AddTool(
		mcp.NewTool(
			"jira.list_transitions",
			mcp.WithDescription("List workflow transitions currently available for an issue"),
			mcp.WithInputSchema[JiraListTransitionsArgs](),
			mcp.WithOutputSchema[JiraTransitionsResult](),
		),
		mcp.NewTypedToolHandler(jt.handleListTransitions),
	)

	s.AddTool(
		mcp.NewTool(
			"jira.transition_issue",
			mcp.WithDescription("Move an issue through a workflow transition by name"),
			mcp.WithInputSchema[JiraTransitionIssueArgs](),
			mcp.WithOutputSchema[OperationStatus](),
		),
		mcp.NewTypedToolHandler(jt.handleTransitionIssue),
	)

	s.AddTool(
		mcp.NewTool(
			"jira.add_comment",
			mcp.WithDescription("Add a comment to an existing Jira issue"),
			mcp.WithInputSchema[JiraAddCommentArgs](),
			mcp.WithOutputSchema[OperationStatus](),
		),
		mcp.NewTypedToolHandler(jt.handleAddComment),
	)

	s.AddTool(
		mcp.NewTool(
			"jira.list_versions",
			mcp.WithDescription("List project versions filtered by release state"),
			mcp.WithInputSchema[JiraListVersionsArgs](),
			mcp.WithOutputSchema[JiraVersionsResult](),
		),
		mcp.NewTypedToolHandler(jt.handleListVersions),
	)

	return jt
}

// OperationStatus represents an acknowledgement response for state-changing operations.
type OperationStatus struct {
	Message string `json:"message"`
}

// JiraGetIssueArgs parameters for fetching an issue.
type JiraGetIssueArgs struct {
	Key string `json:"key" jsonschema:"required" jsonschema_description:"Issue key"`
}

// JiraIssueResult describes a single issue.
type JiraIssueResult struct {
	ID       string   `json:"id"`
	Key      string   `json:"key"`
	Summary  string   `json:"summary"`
	Status   string   `json:"status"`
	Type     string   `json:"type"`
	Priority string   `json:"priority,omitempty"`
	Assignee string   `json:"assignee,omitempty"`
	Labels   []string `json:"labels,omitempty"`
	URL      string   `json:"url"`
}

func (j *JiraTools) issueResult(issue *jira.Issue) JiraIssueResult {
	result := JiraIssueResult{
		ID:      issue.ID,
		Key:     issue.Key,
		Summary: issue.Fields.Summary,
		Status:  issue.Fields.Status.Name,
		Type:    issue.Fields.IssueType.Name,
		Labels:  issue.Fields.Labels,
		URL:     fmt.Sprintf("%s/browse/%s", j.siteURL, issue.Key),
	}
	if issue.Fields.Priority != nil {
		result.Priority = issue.Fields.Priority.Name
	}
	if issue.Fields.Assignee != nil {
		result.Assignee = issue.Fields.Assignee.DisplayName
	}
	return result
}

func (j *JiraTools) handleGetIssue(ctx context.Context, _ mcp.CallToolRequest, args JiraGetIssueArgs) (*mcp.CallToolResult, error) {
	issue, err := j.service.GetIssue(ctx, args.Key)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("jira get issue failed", err), nil
	}

	result := j.issueResult(issue)
	fallback := fmt.Sprintf("Issue %s: %s", result.Key, result.Summary)
	return mcp.NewToolResultStructured(result, fallback), nil
}

// JiraCreateIssueArgs define creation parameters.
type JiraCreateIssueArgs struct {
	ProjectKey    string   `json:"projectKey" jsonschema:"required" jsonschema_description:"Project key"`
	IssueType     string   `json:"issueType" jsonschema:"required" jsonschema_description:"Issue type name, e.g. Bug or Task"`
	Summary       string   `json:"summary" jsonschema:"required" jsonschema_description:"Issue summary"`
	Description   string   `json:"description,omitempty" jsonschema_description:"Plain-text description"`
	PriorityID    string   `json:"priorityId,omitempty" jsonschema_description:"Priority ID"`
	AssigneeEmail string   `json:"assigneeEmail,omitempty" jsonschema_description:"Assignee email"`
	Labels        []string `json:"labels,omitempty" jsonschema_description:"Labels to attach"`
}

func (j *JiraTools) handleCreateIssue(ctx context.Context, _ mcp.CallToolRequest, args JiraCreateIssueArgs) (*mcp.CallToolResult, error) {
	issue, err := j.service.CreateIssueByTypeName(ctx, args.ProjectKey, jira.NewIssue{
		Summary:       args.Summary,
		IssueTypeName: args.IssueType,
		Description:   args.Description,
		PriorityID:    args.PriorityID,
		AssigneeEmail: args.AssigneeEmail,
		Labels:        args.Labels,
	})
	if err != nil {
		return mcp.NewToolResultErrorFromErr("jira create issue failed", err), nil
	}

	result := j.issueResult(issue)
	fallback := fmt.Sprintf("Created Jira issue %s", result.Key)
	return mcp.NewToolResultStructured(result, fallback), nil
}

// JiraUpdateIssueArgs define the delta fields for updates.
type JiraUpdateIssueArgs struct {
	Key          string   `json:"key" jsonschema:"required" jsonschema_description:"Issue key"`
	Summary      *string  `json:"summary,omitempty" jsonschema_description:"New summary"`
	Description  *string  `json:"description,omitempty" jsonschema_description:"New plain-text description"`
	LabelsAdd    []string `json:"labelsAdd,omitempty" jsonschema_description:"Labels to add"`
	LabelsRemove []string `json:"labelsRemove,omitempty" jsonschema_description:"Labels to remove"`
	PriorityID   *string  `json:"priorityId,omitempty" jsonschema_description:"New priority ID"`
}

func (j *JiraTools) handleUpdateIssue(ctx context.Context, _ mcp.CallToolRequest, args JiraUpdateIssueArgs) (*mcp.CallToolResult, error) {
	update := jira.IssueUpdate{
		LabelsAdd:    args.LabelsAdd,
		LabelsRemove: args.LabelsRemove,
	}
	if args.Summary != nil {
		update.Summary = jira.Set(*args.Summary)
	}
	if args.Description != nil {
		update.Description = jira.Set(*args.Description)
	}
	if args.PriorityID != nil {
		update.PriorityID = jira.Set(*args.PriorityID)
	}

	if update.Empty() {
		return mcp.NewToolResultError("no updates provided"), nil
	}

	if err := j.service.UpdateIssue(ctx, args.Key, update); err != nil {
		return mcp.NewToolResultErrorFromErr("jira update issue failed", err), nil
	}

	result := OperationStatus{Message: fmt.Sprintf("Updated issue %s", args.Key)}
	return mcp.NewToolResultStructured(result, result.Message), nil
}

// JiraAssignIssueArgs parameters for assignment.
type JiraAssignIssueArgs struct {
	Key      string `json:"key" jsonschema:"required" jsonschema_description:"Issue key"`
	Email    string `json:"email,omitempty" jsonschema_description:"Assignee email"`
	Unassign bool   `json:"unassign,omitempty" jsonschema_description:"Clear the assignee instead of assigning"`
}

func (j *JiraTools) handleAssignIssue(ctx context.Context, _ mcp.CallToolRequest, args JiraAssignIssueArgs) (*mcp.CallToolResult, error) {
	switch {
	case args.Unassign:
		if err := j.service.UnassignIssue(ctx, args.Key); err != nil {
			return mcp.NewToolResultErrorFromErr("jira unassign issue failed", err), nil
		}
		result := OperationStatus{Message: fmt.Sprintf("Unassigned issue %s", args.Key)}
		return mcp.NewToolResultStructured(result, result.Message), nil
	case args.Email != "":
		if err := j.service.AssignIssueByEmail(ctx, args.Key, args.Email); err != nil {
			return mcp.NewToolResultErrorFromErr("jira assign issue failed", err), nil
		}
		result := OperationStatus{Message: fmt.Sprintf("Assigned issue %s to %s", args.Key, args.Email)}
		return mcp.NewToolResultStructured(result, result.Message), nil
	default:
		return mcp.NewToolResultError("either email or unassign must be provided"), nil
	}
}

// JiraListTransitionsArgs parameters for retrieving workflow transitions.
type JiraListTransitionsArgs struct {
	Key string `json:"key" jsonschema:"required" jsonschema_description:"Issue key"`
}

// JiraTransition represents a workflow step that can be applied to an issue.
type JiraTransition struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	To        string `json:"to"`
	HasScreen bool   `json:"hasScreen"`
}

// JiraTransitionsResult wraps transition responses.
type JiraTransitionsResult struct {
	Transitions []JiraTransition `json:"transitions"`
}

func (j *JiraTools) handleListTransitions(ctx context.Context, _ mcp.CallToolRequest, args JiraListTransitionsArgs) (*mcp.CallToolResult, error) {
	transitions, err := j.service.ListTransitions(ctx, args.Key)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("jira list transitions failed", err), nil
	}

	result := JiraTransitionsResult{Transitions: make([]JiraTransition, 0, len(transitions))}
	for _, t := range transitions {
		result.Transitions = append(result.Transitions, JiraTransition{
			ID:        t.ID,
			Name:      t.Name,
			To:        t.To.Name,
			HasScreen: t.HasScreen,
		})
	}

	fallback := fmt.Sprintf("Found %d transitions for %s", len(result.Transitions), args.Key)
	return mcp.NewToolResultStructured(result, fallback), nil
}

// JiraTransitionIssueArgs parameters for executing a transition.
type JiraTransitionIssueArgs struct {
	Key            string `json:"key" jsonschema:"required" jsonschema_description:"Issue key"`
	Transition     string `json:"transition" jsonschema:"required" jsonschema_description:"Transition name"`
	Comment        string `json:"comment,omitempty" jsonschema_description:"Optional comment"`
	ResolutionName string `json:"resolutionName,omitempty" jsonschema_description:"Optional resolution name"`
}

func (j *JiraTools) handleTransitionIssue(ctx context.Context, _ mcp.CallToolRequest, args JiraTransitionIssueArgs) (*mcp.CallToolResult, error) {
	if err := j.service.TransitionIssueByName(ctx, args.Key, args.Transition, args.Comment, args.ResolutionName); err != nil {
		return mcp.NewToolResultErrorFromErr("jira transition issue failed", err), nil
	}

	result := OperationStatus{Message: fmt.Sprintf("Transitioned issue %s via %s", args.Key, args.Transition)}
	return mcp.NewToolResultStructured(result, result.Message), nil
}

// JiraAddCommentArgs parameters for commenting.
type JiraAddCommentArgs struct {
	Key  string `json:"key" jsonschema:"required" jsonschema_description:"Issue key"`
	Body string `json:"body" jsonschema:"required" jsonschema_description:"Plain-text comment body"`
}

func (j *JiraTools) handleAddComment(ctx context.Context, _ mcp.CallToolRequest, args JiraAddCommentArgs) (*mcp.CallToolResult, error) {
	if err := j.service.AddComment(ctx, args.Key, args.Body); err != nil {
		return mcp.NewToolResultErrorFromErr("jira add comment failed", err), nil
	}

	result := OperationStatus{Message: fmt.Sprintf("Added comment to %s", args.Key)}
	return mcp.NewToolResultStructured(result, result.Message), nil
}

// JiraListVersionsArgs parameters for version listing.
type JiraListVersionsArgs struct {
	ProjectKey string `json:"projectKey" jsonschema:"required" jsonschema_description:"Project key"`
	Released   *bool  `json:"released,omitempty" jsonschema_description:"Filter: true for released only, false for unreleased only"`
}

// JiraVersion describes one project version.
type JiraVersion struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Released    bool   `json:"released"`
	Archived    bool   `json:"archived"`
	ReleaseDate string `json:"releaseDate,omitempty"`
}

// JiraVersionsResult wraps the version list response.
type JiraVersionsResult struct {
	Versions []JiraVersion `json:"versions"`
}

func (j *JiraTools) handleListVersions(ctx context.Context, _ mcp.CallToolRequest, args JiraListVersionsArgs) (*mcp.CallToolResult, error) {
	filter := jira.AllVersions
	if args.Released != nil {
		if *args.Released {
			filter = jira.ReleasedOnly
		} else {
			filter = jira.UnreleasedOnly
		}
	}

	versions, err := j.service.ProjectVersions(ctx, args.ProjectKey, filter)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("jira list versions failed", err), nil
	}

	result := JiraVersionsResult{Versions: make([]JiraVersion, 0, len(versions))}
	for _, v := range versions {
		result.Versions = append(result.Versions, JiraVersion{
			ID:          v.ID,
			Name:        v.Name,
			Released:    v.Released,
			Archived:    v.Archived,
			ReleaseDate: v.ReleaseDate,
		})
	}

	fallback := fmt.Sprintf("Found %d versions for %s", len(result.Versions), args.ProjectKey)
	return mcp.NewToolResultStructured(result, fallback), nil
}
