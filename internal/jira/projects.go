package jira

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ylchen07/jira-api/internal/atlassian"
)

// GetProject fetches a project by key or ID.
func (s *Service) GetProject(ctx context.Context, key string) (*Project, error) {
	if key == "" {
		return nil, atlassian.InvalidInput("project key required")
	}

	var project Project
	if err := s.client.Get(ctx, apiPath("project", url.PathEscape(key)), nil, &project); err != nil {
		return nil, err
	}

	if project.ID == "" || project.Key == "" {
		return nil, atlassian.DecodeError(fmt.Errorf("project payload missing id/key"), nil)
	}

	return &project, nil
}

// IssueTypes returns all issue types visible to the account.
func (s *Service) IssueTypes(ctx context.Context) ([]IssueType, error) {
	var types []IssueType
	if err := s.client.Get(ctx, apiPath("issuetype"), nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// ProjectIssueTypes returns the issue types available in a project.
func (s *Service) ProjectIssueTypes(ctx context.Context, projectKey string) ([]IssueType, error) {
	project, err := s.GetProject(ctx, projectKey)
	if err != nil {
		return nil, err
	}
	return project.IssueTypes, nil
}

// IssueTypeIDByName resolves an issue type name to its ID within a project.
// Matching is case-insensitive; on a miss the error enumerates the types
// available in the project.
func (s *Service) IssueTypeIDByName(ctx context.Context, projectKey, typeName string) (string, error) {
	types, err := s.ProjectIssueTypes(ctx, projectKey)
	if err != nil {
		return "", err
	}

	id, available, ok := resolveByName(types, typeName, func(t IssueType) (string, string) {
		return t.ID, t.Name
	})
	if !ok {
		return "", atlassian.InvalidInput(
			"issue type %q not found in project %q. Available types: %s",
			typeName, projectKey, strings.Join(available, ", "),
		)
	}

	return id, nil
}

// ReleaseFilter selects project versions by release state.
type ReleaseFilter int

const (
	AllVersions ReleaseFilter = iota
	ReleasedOnly
	UnreleasedOnly
)

// ProjectVersions returns a project's versions filtered by release state.
// The filter is applied client-side over the full list; original order is
// preserved.
func (s *Service) ProjectVersions(ctx context.Context, projectKey string, filter ReleaseFilter) ([]Version, error) {
	if projectKey == "" {
		return nil, atlassian.InvalidInput("project key required")
	}

	var versions []Version
	if err := s.client.Get(ctx, apiPath("project", url.PathEscape(projectKey), "versions"), nil, &versions); err != nil {
		return nil, err
	}

	return FilterVersions(versions, filter), nil
}

// FilterVersions applies a three-valued release-state filter.
func FilterVersions(versions []Version, filter ReleaseFilter) []Version {
	if filter == AllVersions {
		return versions
	}

	filtered := make([]Version, 0, len(versions))
	for _, v := range versions {
		if (filter == ReleasedOnly) == v.Released {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// VersionByName finds a project version by exact name. Returns nil when no
// version matches.
func (s *Service) VersionByName(ctx context.Context, projectKey, name string) (*Version, error) {
	versions, err := s.ProjectVersions(ctx, projectKey, AllVersions)
	if err != nil {
		return nil, err
	}

	for _, v := range versions {
		if v.Name == name {
			return &v, nil
		}
	}

	return nil, nil
}

// CreateVersion creates a version in the named project. The project is
// fetched first to resolve its numeric ID.
func (s *Service) CreateVersion(ctx context.Context, projectKey string, create VersionCreate) (*Version, error) {
	if create.Name == "" {
		return nil, atlassian.InvalidInput("version name required")
	}

	project, err := s.GetProject(ctx, projectKey)
	if err != nil {
		return nil, err
	}

	projectID, err := strconv.Atoi(project.ID)
	if err != nil {
		return nil, atlassian.DecodeError(fmt.Errorf("project id %q is not numeric: %w", project.ID, err), nil)
	}
	create.ProjectID = projectID

	var version Version
	if err := s.client.Post(ctx, apiPath("version"), create, &version); err != nil {
		return nil, err
	}

	return &version, nil
}
