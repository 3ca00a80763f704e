package jira

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ylchen07/jira-api/internal/atlassian"
)

// GetUser fetches a user by account ID.
func (s *Service) GetUser(ctx context.Context, accountID string) (*User, error) {
	if accountID == "" {
		return nil, atlassian.InvalidInput("account id required")
	}

	var user User
	query := map[string]string{"accountId": accountID}
	if err := s.client.Get(ctx, apiPath("user"), query, &user); err != nil {
		return nil, err
	}

	if user.AccountID == "" {
		return nil, atlassian.DecodeError(fmt.Errorf("user payload missing accountId"), nil)
	}

	return &user, nil
}

// SearchUsers searches for users matching the query string.
func (s *Service) SearchUsers(ctx context.Context, query string, maxResults int) ([]User, error) {
	if maxResults <= 0 {
		maxResults = 50
	}

	params := map[string]string{
		"query":      query,
		"maxResults": strconv.Itoa(maxResults),
	}

	var users []User
	if err := s.client.Get(ctx, apiPath("user", "search"), params, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// UserByEmail finds the user with the given email address. The search
// endpoint is a fuzzy match, so the returned candidate's email is
// re-verified case-insensitively before being accepted. A miss is an
// invalid-input failure, not an empty result.
func (s *Service) UserByEmail(ctx context.Context, email string) (*User, error) {
	if email == "" {
		return nil, atlassian.InvalidInput("email required")
	}

	users, err := s.SearchUsers(ctx, email, 1)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.EmailAddress != "" && strings.EqualFold(user.EmailAddress, email) {
			return &user, nil
		}
	}

	return nil, atlassian.InvalidInput("user with email %q not found", email)
}

// UserByIdentifier resolves a user by account ID first, falling back to an
// email lookup when the ID fetch misses.
func (s *Service) UserByIdentifier(ctx context.Context, identifier string) (*User, error) {
	user, err := s.GetUser(ctx, identifier)
	if err == nil {
		return user, nil
	}

	return s.UserByEmail(ctx, identifier)
}

// FindAssignableUsers returns users assignable to issues in the given
// projects, optionally filtered by a query string.
func (s *Service) FindAssignableUsers(ctx context.Context, projectKeys []string, query string, maxResults int) ([]User, error) {
	if len(projectKeys) == 0 {
		return nil, atlassian.InvalidInput("at least one project key required")
	}
	if maxResults <= 0 {
		maxResults = 50
	}

	params := map[string]string{
		"projectKeys": strings.Join(projectKeys, ","),
		"maxResults":  strconv.Itoa(maxResults),
	}
	if query != "" {
		params["query"] = query
	}

	var users []User
	if err := s.client.Get(ctx, apiPath("user", "assignable", "multiProjectSearch"), params, &users); err != nil {
		return nil, err
	}

	return users, nil
}
