package jira

import (
	"encoding/json"
	"reflect"
	"testing"
)

func marshalPayload(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(data)
}

func TestIssueCreatePayloadMinimal(t *testing.T) {
	t.Parallel()

	create := IssueCreate{ProjectID: "10000", Summary: "Test issue", IssueTypeID: "10001"}

	got := marshalPayload(t, create.payload())
	want := `{"fields":{"issuetype":{"id":"10001"},"project":{"id":"10000"},"summary":"Test issue"}}`
	if got != want {
		t.Fatalf("unexpected payload:\n got %s\nwant %s", got, want)
	}
}

func TestIssueCreatePayloadFull(t *testing.T) {
	t.Parallel()

	create := IssueCreate{
		ProjectID:         "10000",
		Summary:           "Test issue",
		IssueTypeID:       "10001",
		Description:       "details",
		PriorityID:        "2",
		AssigneeAccountID: "acc-1",
		ReporterAccountID: "acc-2",
		Labels:            []string{"infra", "urgent"},
	}

	payload := create.payload()
	fields := payload["fields"].(map[string]any)

	if _, ok := fields["description"].(Document); !ok {
		t.Fatalf("description should be an ADF document: %T", fields["description"])
	}
	if !reflect.DeepEqual(fields["priority"], map[string]string{"id": "2"}) {
		t.Fatalf("unexpected priority: %v", fields["priority"])
	}
	if !reflect.DeepEqual(fields["assignee"], map[string]string{"accountId": "acc-1"}) {
		t.Fatalf("unexpected assignee: %v", fields["assignee"])
	}
	if !reflect.DeepEqual(fields["reporter"], map[string]string{"accountId": "acc-2"}) {
		t.Fatalf("unexpected reporter: %v", fields["reporter"])
	}
	if !reflect.DeepEqual(fields["labels"], []string{"infra", "urgent"}) {
		t.Fatalf("unexpected labels: %v", fields["labels"])
	}
}

func TestIssueUpdatePayloadEmptyDelta(t *testing.T) {
	t.Parallel()

	var update IssueUpdate
	if !update.Empty() {
		t.Fatalf("zero delta should be empty")
	}

	got := marshalPayload(t, update.payload())
	if got != `{"update":{}}` {
		t.Fatalf("unexpected payload: %s", got)
	}
}

func TestIssueUpdatePayloadSetOps(t *testing.T) {
	t.Parallel()

	update := IssueUpdate{
		Summary:    Set("New summary"),
		PriorityID: Set("3"),
	}
	if update.Empty() {
		t.Fatalf("delta with fields must not be empty")
	}

	got := marshalPayload(t, update.payload())
	want := `{"update":{"priority":[{"set":{"id":"3"}}],"summary":[{"set":"New summary"}]}}`
	if got != want {
		t.Fatalf("unexpected payload:\n got %s\nwant %s", got, want)
	}
}

func TestIssueUpdatePayloadDescriptionUsesDocument(t *testing.T) {
	t.Parallel()

	update := IssueUpdate{Description: Set("rewritten")}

	got := marshalPayload(t, update.payload())
	want := `{"update":{"description":[{"set":{"type":"doc","version":1,"content":[{"type":"paragraph","content":[{"type":"text","text":"rewritten"}]}]}}]}}`
	if got != want {
		t.Fatalf("unexpected payload:\n got %s\nwant %s", got, want)
	}
}

func TestIssueUpdatePayloadLabelOrder(t *testing.T) {
	t.Parallel()

	update := IssueUpdate{
		LabelsAdd:    []string{"a", "b"},
		LabelsRemove: []string{"c"},
	}

	got := marshalPayload(t, update.payload())
	want := `{"update":{"labels":[{"add":"a"},{"add":"b"},{"remove":"c"}]}}`
	if got != want {
		t.Fatalf("add ops must precede remove ops:\n got %s\nwant %s", got, want)
	}
}

func TestAssignmentPayloadTriState(t *testing.T) {
	t.Parallel()

	set := Assignment{AccountID: Set("acc-1")}
	payload, ok := set.payload()
	if !ok {
		t.Fatalf("set assignment must produce payload")
	}
	if got := marshalPayload(t, payload); got != `{"accountId":"acc-1"}` {
		t.Fatalf("unexpected payload: %s", got)
	}

	unassign := Assignment{AccountID: Null[string]()}
	payload, ok = unassign.payload()
	if !ok {
		t.Fatalf("null assignment must produce payload")
	}
	if got := marshalPayload(t, payload); got != `{"accountId":null}` {
		t.Fatalf("unexpected payload: %s", got)
	}

	var unset Assignment
	if _, ok := unset.payload(); ok {
		t.Fatalf("unset assignment must be rejected")
	}
}

func TestTransitionRequestPayload(t *testing.T) {
	t.Parallel()

	minimal := TransitionRequest{TransitionID: "31"}
	got := marshalPayload(t, minimal.payload())
	if got != `{"transition":{"id":"31"}}` {
		t.Fatalf("unexpected payload: %s", got)
	}

	full := TransitionRequest{TransitionID: "31", Comment: "closing", ResolutionName: "Done"}
	payload := full.payload()

	if !reflect.DeepEqual(payload["fields"], map[string]any{"resolution": map[string]string{"name": "Done"}}) {
		t.Fatalf("unexpected fields: %v", payload["fields"])
	}

	update := payload["update"].(map[string]any)
	ops := update["comment"].([]any)
	if len(ops) != 1 {
		t.Fatalf("expected one comment op: %v", ops)
	}
	add := ops[0].(map[string]any)["add"].(map[string]any)
	if _, ok := add["body"].(Document); !ok {
		t.Fatalf("comment body should be an ADF document: %T", add["body"])
	}
}
