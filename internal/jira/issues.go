package jira

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ylchen07/jira-api/internal/atlassian"
)

// GetIssue fetches an issue by its key (e.g. PROJ-123).
func (s *Service) GetIssue(ctx context.Context, key string) (*Issue, error) {
	if key == "" {
		return nil, atlassian.InvalidInput("issue key required")
	}

	var issue Issue
	if err := s.client.Get(ctx, apiPath("issue", url.PathEscape(key)), nil, &issue); err != nil {
		return nil, err
	}

	if issue.ID == "" || issue.Key == "" {
		return nil, atlassian.DecodeError(fmt.Errorf("issue payload missing id/key"), nil)
	}

	return &issue, nil
}

// CreateIssue creates a new issue and returns its authoritative state. The
// create endpoint only returns id/key, so a follow-up fetch by key is
// always performed.
func (s *Service) CreateIssue(ctx context.Context, create IssueCreate) (*Issue, error) {
	if create.ProjectID == "" {
		return nil, atlassian.InvalidInput("project id required")
	}
	if create.Summary == "" {
		return nil, atlassian.InvalidInput("summary required")
	}
	if create.IssueTypeID == "" {
		return nil, atlassian.InvalidInput("issue type id required")
	}

	var created struct {
		ID  string `json:"id"`
		Key string `json:"key"`
	}
	if err := s.client.Post(ctx, apiPath("issue"), create.payload(), &created); err != nil {
		return nil, err
	}

	if created.Key == "" {
		return nil, atlassian.DecodeError(fmt.Errorf("issue created but key not returned"), nil)
	}

	return s.GetIssue(ctx, created.Key)
}

// NewIssue holds caller-facing parameters for the high-level create path:
// the issue type is referenced by name and the assignee by email, both
// resolved against live remote state before any write happens.
type NewIssue struct {
	Summary       string
	IssueTypeName string
	Description   string
	PriorityID    string
	AssigneeEmail string
	Labels        []string
}

// CreateIssueByTypeName resolves the project and the issue type name, then
// creates the issue. Resolution failures abort before any write occurs.
func (s *Service) CreateIssueByTypeName(ctx context.Context, projectKey string, in NewIssue) (*Issue, error) {
	project, err := s.GetProject(ctx, projectKey)
	if err != nil {
		return nil, err
	}

	typeID, err := s.IssueTypeIDByName(ctx, projectKey, in.IssueTypeName)
	if err != nil {
		return nil, err
	}

	var assigneeID string
	if in.AssigneeEmail != "" {
		assignee, err := s.UserByEmail(ctx, in.AssigneeEmail)
		if err != nil {
			return nil, err
		}
		assigneeID = assignee.AccountID
	}

	return s.CreateIssue(ctx, IssueCreate{
		ProjectID:         project.ID,
		Summary:           in.Summary,
		IssueTypeID:       typeID,
		Description:       in.Description,
		PriorityID:        in.PriorityID,
		AssigneeAccountID: assigneeID,
		Labels:            in.Labels,
	})
}

// UpdateIssue applies a delta update with a single PUT. The result is never
// read back; any caller-held copy of the issue becomes stale immediately.
func (s *Service) UpdateIssue(ctx context.Context, key string, update IssueUpdate) error {
	if key == "" {
		return atlassian.InvalidInput("issue key required")
	}

	return s.client.Put(ctx, apiPath("issue", url.PathEscape(key)), update.payload(), nil)
}

// AssignIssue sets or clears the assignee. An Assignment with an unset
// account ID is rejected: "not provided" is not a valid instruction for
// the assign endpoint, unlike explicit null (unassign).
func (s *Service) AssignIssue(ctx context.Context, key string, assignment Assignment) error {
	if key == "" {
		return atlassian.InvalidInput("issue key required")
	}

	body, ok := assignment.payload()
	if !ok {
		return atlassian.InvalidInput("assignment requires an account id or explicit unassign")
	}

	return s.client.Put(ctx, apiPath("issue", url.PathEscape(key), "assignee"), body, nil)
}

// AssignIssueByEmail resolves a user by email and assigns the issue.
func (s *Service) AssignIssueByEmail(ctx context.Context, key, email string) error {
	user, err := s.UserByEmail(ctx, email)
	if err != nil {
		return err
	}

	return s.AssignIssue(ctx, key, Assignment{AccountID: Set(user.AccountID)})
}

// UnassignIssue clears the assignee of an issue.
func (s *Service) UnassignIssue(ctx context.Context, key string) error {
	return s.AssignIssue(ctx, key, Assignment{AccountID: Null[string]()})
}

// AddComment appends a plain-text comment to the issue.
func (s *Service) AddComment(ctx context.Context, key, text string) error {
	if key == "" {
		return atlassian.InvalidInput("issue key required")
	}
	if strings.TrimSpace(text) == "" {
		return atlassian.InvalidInput("comment body required")
	}

	body := map[string]any{"body": TextDocument(text)}
	return s.client.Post(ctx, apiPath("issue", url.PathEscape(key), "comment"), body, nil)
}
