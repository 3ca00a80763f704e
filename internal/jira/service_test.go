package jira

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"log/slog"

	"github.com/ylchen07/jira-api/internal/atlassian"
	"github.com/ylchen07/jira-api/internal/config"
)

// step scripts one expected round trip: the request the service must make
// and the response the fake backend returns.
type step struct {
	method   string
	path     string
	query    map[string]string
	wantBody string
	status   int
	body     string
}

type scriptedTransport struct {
	t     *testing.T
	steps []step
	next  int
}

func (st *scriptedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	st.t.Helper()

	if st.next >= len(st.steps) {
		st.t.Fatalf("unexpected request %s %s", req.Method, req.URL.Path)
	}
	s := st.steps[st.next]
	st.next++

	if req.Method != s.method || req.URL.Path != s.path {
		st.t.Fatalf("request %d: got %s %s, want %s %s", st.next, req.Method, req.URL.Path, s.method, s.path)
	}
	for k, v := range s.query {
		if got := req.URL.Query().Get(k); got != v {
			st.t.Fatalf("request %d: query %s = %q, want %q", st.next, k, got, v)
		}
	}
	if s.wantBody != "" {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			st.t.Fatalf("request %d: read body: %v", st.next, err)
		}
		if got := strings.TrimSpace(string(data)); got != s.wantBody {
			st.t.Fatalf("request %d: body\n got %s\nwant %s", st.next, got, s.wantBody)
		}
	}

	status := s.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(s.body)),
	}, nil
}

func (st *scriptedTransport) done() {
	st.t.Helper()
	if st.next != len(st.steps) {
		st.t.Fatalf("expected %d requests, saw %d", len(st.steps), st.next)
	}
}

func newTestService(t *testing.T, steps ...step) (*Service, *scriptedTransport) {
	t.Helper()

	client, err := atlassian.NewClient(
		"https://example.atlassian.net",
		config.ServiceCredentials{Email: "user@example.com", APIToken: "token"},
		slog.Default(),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	st := &scriptedTransport{t: t, steps: steps}
	client.SetTransport(st)

	return NewService(client), st
}

func TestAPIPath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		parts []string
		want  string
	}{
		{parts: nil, want: "/rest/api/3"},
		{parts: []string{"issue"}, want: "/rest/api/3/issue"},
		{parts: []string{"issue", "PROJ-1", "transitions"}, want: "/rest/api/3/issue/PROJ-1/transitions"},
		{parts: []string{"/issue/", ""}, want: "/rest/api/3/issue"},
	}

	for _, tc := range cases {
		if got := apiPath(tc.parts...); got != tc.want {
			t.Fatalf("apiPath(%v) = %s, want %s", tc.parts, got, tc.want)
		}
	}
}
