package jira

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/ylchen07/jira-api/internal/atlassian"
)

func TestGetUser(t *testing.T) {
	t.Parallel()

	service, st := newTestService(t, step{
		method: http.MethodGet,
		path:   "/rest/api/3/user",
		query:  map[string]string{"accountId": "acc-1"},
		body:   `{"accountId":"acc-1","displayName":"Alice","active":true}`,
	})

	user, err := service.GetUser(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	st.done()

	if user.DisplayName != "Alice" || !user.Active {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestSearchUsersDefaultsMaxResults(t *testing.T) {
	t.Parallel()

	service, st := newTestService(t, step{
		method: http.MethodGet,
		path:   "/rest/api/3/user/search",
		query:  map[string]string{"query": "alice", "maxResults": "50"},
		body:   `[{"accountId":"acc-1","displayName":"Alice"}]`,
	})

	users, err := service.SearchUsers(context.Background(), "alice", 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	st.done()

	if len(users) != 1 || users[0].AccountID != "acc-1" {
		t.Fatalf("unexpected users: %+v", users)
	}
}

func TestUserByEmailVerifiesAddress(t *testing.T) {
	t.Parallel()

	service, st := newTestService(t, step{
		method: http.MethodGet,
		path:   "/rest/api/3/user/search",
		query:  map[string]string{"query": "Dev@Example.com", "maxResults": "1"},
		body:   `[{"accountId":"acc-9","emailAddress":"dev@example.com","displayName":"Dev"}]`,
	})

	user, err := service.UserByEmail(context.Background(), "Dev@Example.com")
	if err != nil {
		t.Fatalf("user by email: %v", err)
	}
	st.done()

	if user.AccountID != "acc-9" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserByEmailRejectsFuzzyMismatch(t *testing.T) {
	t.Parallel()

	// The search endpoint fuzzy-matches display names too; a candidate whose
	// email does not match must not be accepted.
	service, st := newTestService(t, step{
		method: http.MethodGet,
		path:   "/rest/api/3/user/search",
		body:   `[{"accountId":"acc-9","emailAddress":"other@example.com","displayName":"dev@example.com"}]`,
	})

	_, err := service.UserByEmail(context.Background(), "dev@example.com")
	if !atlassian.IsKind(err, atlassian.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if !strings.Contains(err.Error(), `user with email "dev@example.com" not found`) {
		t.Fatalf("unexpected message: %v", err)
	}
	st.done()
}

func TestUserByIdentifierFallsBackToEmail(t *testing.T) {
	t.Parallel()

	service, st := newTestService(t,
		step{
			method: http.MethodGet,
			path:   "/rest/api/3/user",
			status: http.StatusNotFound,
			body:   `{"errorMessages":["user not found"]}`,
		},
		step{
			method: http.MethodGet,
			path:   "/rest/api/3/user/search",
			query:  map[string]string{"query": "dev@example.com", "maxResults": "1"},
			body:   `[{"accountId":"acc-9","emailAddress":"dev@example.com","displayName":"Dev"}]`,
		},
	)

	user, err := service.UserByIdentifier(context.Background(), "dev@example.com")
	if err != nil {
		t.Fatalf("user by identifier: %v", err)
	}
	st.done()

	if user.AccountID != "acc-9" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestFindAssignableUsers(t *testing.T) {
	t.Parallel()

	service, st := newTestService(t, step{
		method: http.MethodGet,
		path:   "/rest/api/3/user/assignable/multiProjectSearch",
		query:  map[string]string{"projectKeys": "PROJ,OPS", "maxResults": "10", "query": "dev"},
		body:   `[{"accountId":"acc-9","displayName":"Dev"}]`,
	})

	users, err := service.FindAssignableUsers(context.Background(), []string{"PROJ", "OPS"}, "dev", 10)
	if err != nil {
		t.Fatalf("assignable: %v", err)
	}
	st.done()

	if len(users) != 1 {
		t.Fatalf("unexpected users: %+v", users)
	}

	if _, err := service.FindAssignableUsers(context.Background(), nil, "", 0); !atlassian.IsKind(err, atlassian.KindInvalidInput) {
		t.Fatalf("missing project keys should be rejected: %v", err)
	}
}
