package jira

import "encoding/json"

// Status represents a workflow status.
type Status struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    *StatusCategory `json:"statusCategory,omitempty"`
}

// StatusCategory groups statuses (To Do / In Progress / Done).
type StatusCategory struct {
	ID   int    `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Priority represents an issue priority.
type Priority struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IconURL     string `json:"iconUrl,omitempty"`
}

// Resolution is the outcome classification applied to a closed issue.
type Resolution struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// IssueType describes an issue type. Types are scoped per project: the same
// name may map to different IDs across projects.
type IssueType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl,omitempty"`
	Subtask     bool   `json:"subtask"`
}

// User represents a Jira user account.
type User struct {
	AccountID    string            `json:"accountId"`
	EmailAddress string            `json:"emailAddress,omitempty"`
	DisplayName  string            `json:"displayName"`
	Active       bool              `json:"active"`
	TimeZone     string            `json:"timeZone,omitempty"`
	Locale       string            `json:"locale,omitempty"`
	AvatarURLs   map[string]string `json:"avatarUrls,omitempty"`
}

// Project represents a Jira project.
type Project struct {
	ID             string            `json:"id"`
	Key            string            `json:"key"`
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	Lead           *User             `json:"lead,omitempty"`
	ProjectTypeKey string            `json:"projectTypeKey,omitempty"`
	AvatarURLs     map[string]string `json:"avatarUrls,omitempty"`
	URL            string            `json:"url,omitempty"`
	IssueTypes     []IssueType       `json:"issueTypes,omitempty"`
	Versions       []Version         `json:"versions,omitempty"`
}

// Version represents a project version. Dates are kept in the wire format
// (ISO strings) since no operation needs local time arithmetic.
type Version struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Archived        bool   `json:"archived"`
	Released        bool   `json:"released"`
	StartDate       string `json:"startDate,omitempty"`
	ReleaseDate     string `json:"releaseDate,omitempty"`
	Overdue         *bool  `json:"overdue,omitempty"`
	UserStartDate   string `json:"userStartDate,omitempty"`
	UserReleaseDate string `json:"userReleaseDate,omitempty"`
	ProjectID       int    `json:"projectId,omitempty"`
}

// VersionCreate holds attributes for creating a project version.
// Dates use YYYY-MM-DD.
type VersionCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ProjectID   int    `json:"projectId"`
	Archived    bool   `json:"archived"`
	Released    bool   `json:"released"`
	StartDate   string `json:"startDate,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
}

// IssueFields is the nested field structure of an issue. Description is
// surfaced as the raw Atlassian document; rendering it back to plain text
// is not implemented (encoding is one-directional).
type IssueFields struct {
	Summary        string          `json:"summary"`
	Description    json.RawMessage `json:"description,omitempty"`
	IssueType      IssueType       `json:"issuetype"`
	Project        Project         `json:"project"`
	Status         Status          `json:"status"`
	Priority       *Priority       `json:"priority,omitempty"`
	Assignee       *User           `json:"assignee,omitempty"`
	Reporter       *User           `json:"reporter,omitempty"`
	Labels         []string        `json:"labels,omitempty"`
	Created        string          `json:"created,omitempty"`
	Updated        string          `json:"updated,omitempty"`
	Resolution     *Resolution     `json:"resolution,omitempty"`
	ResolutionDate string          `json:"resolutiondate,omitempty"`
}

// Issue represents a Jira issue. ID and Key are assigned by the remote
// system and never set by callers on create.
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Self   string      `json:"self,omitempty"`
	Fields IssueFields `json:"fields"`
}

// Transition represents a workflow transition available to an issue. The
// set of legal transitions is workflow- and state-dependent and is fetched
// fresh per operation, never cached.
type Transition struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	To        Status `json:"to"`
	HasScreen bool   `json:"hasScreen"`
}
