package jira

// Write-only request records and their wire builders. Each record is
// consumed once; fields left unset never appear in the generated payload.

// IssueCreate holds the fields for creating a new issue. Project and issue
// type are referenced by ID; use CreateIssueByTypeName to resolve names.
type IssueCreate struct {
	ProjectID         string
	Summary           string
	IssueTypeID       string
	Description       string
	PriorityID        string
	AssigneeAccountID string
	ReporterAccountID string
	Labels            []string
}

func (c IssueCreate) payload() map[string]any {
	fields := map[string]any{
		"project":   map[string]string{"id": c.ProjectID},
		"summary":   c.Summary,
		"issuetype": map[string]string{"id": c.IssueTypeID},
	}

	if c.Description != "" {
		fields["description"] = TextDocument(c.Description)
	}

	if c.PriorityID != "" {
		fields["priority"] = map[string]string{"id": c.PriorityID}
	}

	if c.AssigneeAccountID != "" {
		fields["assignee"] = map[string]string{"accountId": c.AssigneeAccountID}
	}

	if c.ReporterAccountID != "" {
		fields["reporter"] = map[string]string{"accountId": c.ReporterAccountID}
	}

	if len(c.Labels) > 0 {
		fields["labels"] = c.Labels
	}

	return map[string]any{"fields": fields}
}

// IssueUpdate is a delta: only fields the caller set are written, so an
// update never overwrites unrelated fields. An empty delta produces an
// empty update object, which the remote system treats as a no-op.
type IssueUpdate struct {
	Summary      Opt[string]
	Description  Opt[string]
	LabelsAdd    []string
	LabelsRemove []string
	PriorityID   Opt[string]
}

// Empty reports whether the delta carries no changes.
func (u IssueUpdate) Empty() bool {
	return u.Summary.IsUnset() && u.Description.IsUnset() && u.PriorityID.IsUnset() &&
		len(u.LabelsAdd) == 0 && len(u.LabelsRemove) == 0
}

func (u IssueUpdate) payload() map[string]any {
	update := map[string]any{}

	if u.Summary.IsSet() {
		update["summary"] = []any{map[string]any{"set": u.Summary.Value()}}
	}

	if u.Description.IsSet() {
		update["description"] = []any{map[string]any{"set": TextDocument(u.Description.Value())}}
	}

	// Label operations keep caller order, add-ops before remove-ops.
	var labelOps []any
	for _, label := range u.LabelsAdd {
		labelOps = append(labelOps, map[string]any{"add": label})
	}
	for _, label := range u.LabelsRemove {
		labelOps = append(labelOps, map[string]any{"remove": label})
	}
	if len(labelOps) > 0 {
		update["labels"] = labelOps
	}

	if u.PriorityID.IsSet() {
		update["priority"] = []any{map[string]any{"set": map[string]string{"id": u.PriorityID.Value()}}}
	}

	return map[string]any{"update": update}
}

// Assignment sets or clears the assignee of an issue. A value maps to
// {"accountId": id}, an explicit null to {"accountId": null} (unassign);
// an unset AccountID is invalid for the assign endpoint.
type Assignment struct {
	AccountID Opt[string]
}

func (a Assignment) payload() (map[string]any, bool) {
	switch {
	case a.AccountID.IsSet():
		return map[string]any{"accountId": a.AccountID.Value()}, true
	case a.AccountID.IsNull():
		return map[string]any{"accountId": nil}, true
	default:
		return nil, false
	}
}

// TransitionRequest executes a workflow transition resolved to an ID, with
// an optional comment and resolution.
type TransitionRequest struct {
	TransitionID   string
	Comment        string
	ResolutionName string
}

func (r TransitionRequest) payload() map[string]any {
	body := map[string]any{
		"transition": map[string]string{"id": r.TransitionID},
	}

	if r.ResolutionName != "" {
		body["fields"] = map[string]any{
			"resolution": map[string]string{"name": r.ResolutionName},
		}
	}

	if r.Comment != "" {
		body["update"] = map[string]any{
			"comment": []any{
				map[string]any{
					"add": map[string]any{"body": TextDocument(r.Comment)},
				},
			},
		}
	}

	return body
}
