package jira

import (
	"context"
	"net/url"
	"strings"

	"github.com/ylchen07/jira-api/internal/atlassian"
)

// ListTransitions retrieves the workflow transitions currently legal for an
// issue. This is always a live call: the transition set depends on the
// issue's present state and must not be reused across operations.
func (s *Service) ListTransitions(ctx context.Context, key string) ([]Transition, error) {
	if key == "" {
		return nil, atlassian.InvalidInput("issue key required")
	}

	var out struct {
		Transitions []Transition `json:"transitions"`
	}

	if err := s.client.Get(ctx, apiPath("issue", url.PathEscape(key), "transitions"), nil, &out); err != nil {
		return nil, err
	}

	return out.Transitions, nil
}

// TransitionIssue moves an issue through a workflow transition by ID.
func (s *Service) TransitionIssue(ctx context.Context, key string, req TransitionRequest) error {
	if key == "" {
		return atlassian.InvalidInput("issue key required")
	}
	if req.TransitionID == "" {
		return atlassian.InvalidInput("transition id required")
	}

	return s.client.Post(ctx, apiPath("issue", url.PathEscape(key), "transitions"), req.payload(), nil)
}

// TransitionIssueByName resolves a transition by its human name against the
// live transition list and executes it. On a miss the error enumerates the
// transitions legal for the issue's current state.
func (s *Service) TransitionIssueByName(ctx context.Context, key, name, comment, resolutionName string) error {
	transitions, err := s.ListTransitions(ctx, key)
	if err != nil {
		return err
	}

	id, available, ok := resolveByName(transitions, name, func(t Transition) (string, string) {
		return t.ID, t.Name
	})
	if !ok {
		return atlassian.InvalidInput(
			"transition %q not found. Available transitions: %s",
			name, strings.Join(available, ", "),
		)
	}

	return s.TransitionIssue(ctx, key, TransitionRequest{
		TransitionID:   id,
		Comment:        comment,
		ResolutionName: resolutionName,
	})
}
