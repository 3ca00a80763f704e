package jira

import (
	"strings"
	"testing"
)

func TestResolveByNameCaseInsensitive(t *testing.T) {
	t.Parallel()

	types := []IssueType{
		{ID: "10000", Name: "Epic"},
		{ID: "10001", Name: "Bug"},
	}

	idName := func(it IssueType) (string, string) { return it.ID, it.Name }

	for _, name := range []string{"Bug", "bug", "BUG"} {
		id, _, ok := resolveByName(types, name, idName)
		if !ok || id != "10001" {
			t.Fatalf("resolve %q: id=%s ok=%t", name, id, ok)
		}
	}
}

func TestResolveByNameFirstMatchWins(t *testing.T) {
	t.Parallel()

	types := []IssueType{
		{ID: "1", Name: "Task"},
		{ID: "2", Name: "task"},
	}

	id, _, ok := resolveByName(types, "TASK", func(it IssueType) (string, string) { return it.ID, it.Name })
	if !ok || id != "1" {
		t.Fatalf("expected first candidate, got id=%s ok=%t", id, ok)
	}
}

func TestResolveByNameMissEnumeratesAlternatives(t *testing.T) {
	t.Parallel()

	types := []IssueType{
		{ID: "10000", Name: "Epic"},
		{ID: "10001", Name: "Bug"},
	}

	id, available, ok := resolveByName(types, "Story", func(it IssueType) (string, string) { return it.ID, it.Name })
	if ok || id != "" {
		t.Fatalf("expected miss, got id=%s ok=%t", id, ok)
	}
	if got := strings.Join(available, ", "); got != "Epic, Bug" {
		t.Fatalf("unexpected alternatives: %s", got)
	}
}

func TestResolveByNameEmptyCandidates(t *testing.T) {
	t.Parallel()

	_, available, ok := resolveByName(nil, "anything", func(it IssueType) (string, string) { return it.ID, it.Name })
	if ok {
		t.Fatalf("empty candidates cannot match")
	}
	if len(available) != 0 {
		t.Fatalf("unexpected alternatives: %v", available)
	}
}
