package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ylchen07/jira-api/internal/jira"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func renderIssue(w io.Writer, issue *jira.Issue) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Key:\t%s\n", issue.Key)
	fmt.Fprintf(tw, "Summary:\t%s\n", issue.Fields.Summary)
	fmt.Fprintf(tw, "Type:\t%s\n", issue.Fields.IssueType.Name)
	fmt.Fprintf(tw, "Status:\t%s\n", issue.Fields.Status.Name)
	fmt.Fprintf(tw, "Project:\t%s\n", issue.Fields.Project.Key)
	if issue.Fields.Priority != nil {
		fmt.Fprintf(tw, "Priority:\t%s\n", issue.Fields.Priority.Name)
	}
	if issue.Fields.Assignee != nil {
		fmt.Fprintf(tw, "Assignee:\t%s\n", issue.Fields.Assignee.DisplayName)
	}
	if issue.Fields.Reporter != nil {
		fmt.Fprintf(tw, "Reporter:\t%s\n", issue.Fields.Reporter.DisplayName)
	}
	if len(issue.Fields.Labels) > 0 {
		fmt.Fprintf(tw, "Labels:\t%s\n", strings.Join(issue.Fields.Labels, ", "))
	}
	if issue.Fields.Resolution != nil {
		fmt.Fprintf(tw, "Resolution:\t%s\n", issue.Fields.Resolution.Name)
	}
	if issue.Fields.Created != "" {
		fmt.Fprintf(tw, "Created:\t%s\n", issue.Fields.Created)
	}
	if issue.Fields.Updated != "" {
		fmt.Fprintf(tw, "Updated:\t%s\n", issue.Fields.Updated)
	}
	tw.Flush()
}

func renderIssueTypes(w io.Writer, types []jira.IssueType) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tSUBTASK\tDESCRIPTION")
	for _, t := range types {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", t.ID, t.Name, t.Subtask, t.Description)
	}
	tw.Flush()
}

func renderTransitions(w io.Writer, transitions []jira.Transition) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tTO\tSCREEN")
	for _, t := range transitions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", t.ID, t.Name, t.To.Name, t.HasScreen)
	}
	tw.Flush()
}

func renderProject(w io.Writer, project *jira.Project) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Key:\t%s\n", project.Key)
	fmt.Fprintf(tw, "Name:\t%s\n", project.Name)
	fmt.Fprintf(tw, "ID:\t%s\n", project.ID)
	if project.ProjectTypeKey != "" {
		fmt.Fprintf(tw, "Type:\t%s\n", project.ProjectTypeKey)
	}
	if project.Lead != nil {
		fmt.Fprintf(tw, "Lead:\t%s\n", project.Lead.DisplayName)
	}
	if project.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", project.Description)
	}
	tw.Flush()

	if len(project.IssueTypes) > 0 {
		fmt.Fprintln(w, "\nIssue types:")
		renderIssueTypes(w, project.IssueTypes)
	}
}

func renderVersions(w io.Writer, versions []jira.Version) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tRELEASED\tARCHIVED\tRELEASE DATE")
	for _, v := range versions {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%t\t%s\n", v.ID, v.Name, v.Released, v.Archived, v.ReleaseDate)
	}
	tw.Flush()
}

func renderUsers(w io.Writer, users []jira.User) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ACCOUNT ID\tNAME\tEMAIL\tACTIVE")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", u.AccountID, u.DisplayName, u.EmailAddress, u.Active)
	}
	tw.Flush()
}
