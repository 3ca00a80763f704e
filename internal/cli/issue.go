package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ylchen07/jira-api/internal/jira"
)

func newIssueCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue operations",
	}

	cmd.AddCommand(
		newIssueGetCommand(app),
		newIssueCreateCommand(app),
		newIssueCreateByNameCommand(app),
		newIssueTypesCommand(app),
		newIssueUpdateCommand(app),
		newIssueAssignCommand(app),
		newIssueTransitionsCommand(app),
		newIssueTransitionCommand(app),
		newIssueCommentCommand(app),
	)

	return cmd
}

func newIssueGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Fetch an issue by key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(); err != nil {
				return err
			}

			issue, err := app.service.GetIssue(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			renderIssue(cmd.OutOrStdout(), issue)
			return nil
		},
	}
}

func newIssueCreateCommand(app *App) *cobra.Command {
	var (
		description string
		priorityID  string
		assigneeID  string
		reporterID  string
		labels      []string
	)

	cmd := &cobra.Command{
		Use:   "create PROJECT_ID SUMMARY ISSUE_TYPE_ID",
		Short: "Create an issue using project and issue type IDs",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(); err != nil {
				return err
			}

			issue, err := app.service.CreateIssue(cmd.Context(), jira.IssueCreate{
				ProjectID:         args[0],
				Summary:           args[1],
				IssueTypeID:       args[2],
				Description:       description,
				PriorityID:        priorityID,
				AssigneeAccountID: assigneeID,
				ReporterAccountID: reporterID,
				Labels:            labels,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created issue %s\n", issue.Key)
			renderIssue(cmd.OutOrStdout(), issue)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Issue description")
	cmd.Flags().StringVar(&priorityID, "priority", "", "Priority ID")
	cmd.Flags().StringVar(&assigneeID, "assignee", "", "Assignee account ID")
	cmd.Flags().StringVar(&reporterID, "reporter", "", "Reporter account ID")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "Label to attach (repeatable)")

	return cmd
}

func newIssueCreateByNameCommand(app *App) *cobra.Command {
	var (
		description   string
		priorityID    string
		assigneeEmail string
		labels        []string
	)

	cmd := &cobra.Command{
		Use:   "create-by-name PROJECT_KEY SUMMARY ISSUE_TYPE_NAME",
		Short: "Create an issue using an issue type name (e.g. Bug, Task)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(); err != nil {
				return err
			}

			issue, err := app.service.CreateIssueByTypeName(cmd.Context(), args[0], jira.NewIssue{
				Summary:       args[1],
				IssueTypeName: args[2],
				Description:   description,
				PriorityID:    priorityID,
				AssigneeEmail: assigneeEmail,
				Labels:        labels,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created issue %s\n", issue.Key)
			renderIssue(cmd.OutOrStdout(), issue)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Issue description")
	cmd.Flags().StringVar(&priorityID, "priority", "", "Priority ID")
	cmd.Flags().StringVar(&assigneeEmail, "assignee", "", "Assignee email")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "Label to attach (repeatable)")

	return cmd
}

func newIssueTypesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list-types PROJECT_KEY",
		Short: "List the issue types available in a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(); err != nil {
				return err
			}

			types, err := app.service.ProjectIssueTypes(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			renderIssueTypes(cmd.OutOrStdout(), types)
			return nil
		},
	}
}

func newIssueUpdateCommand(app *App) *cobra.Command {
	var (
		addLabels    []string
		removeLabels []string
	)

	cmd := &cobra.Command{
		Use:   "update KEY",
		Short: "Apply a partial update to an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(); err != nil {
				return err
			}

			update := jira.IssueUpdate{
				LabelsAdd:    addLabels,
				LabelsRemove: removeLabels,
			}
			if cmd.Flags().Changed("summary") {
				summary, _ := cmd.Flags().GetString("summary")
				update.Summary = jira.Set(summary)
			}
			if cmd.Flags().Changed("description") {
				description, _ := cmd.Flags().GetString("description")
				update.Description = jira.Set(description)
			}
			if cmd.Flags().Changed("priority") {
				priority, _ := cmd.Flags().GetString("priority")
				update.PriorityID = jira.Set(priority)
			}

			if update.Empty() {
				return fmt.Errorf("no updates provided")
			}

			if err := app.service.UpdateIssue(cmd.Context(), args[0], update); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated issue %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().String("summary", "", "New summary")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("priority", "", "New priority ID")
	cmd.Flags().StringSliceVar(&addLabels, "add-label", nil, "Label to add (repeatable)")
	cmd.Flags().StringSliceVar(&removeLabels, "remove-label", nil, "Label to remove (repeatable)")

	return cmd
}

func newIssueAssignCommand(app *App) *cobra.Command {
	var unassign bool

	cmd := &cobra.Command{
		Use:   "assign KEY [EMAIL]",
		Short: "Assign an issue by email, or unassign it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(); err != nil {
				return err
			}

			key := args[0]

			if unassign {
				if err := app.service.UnassignIssue(cmd.Context(), key); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Unassigned issue %s\n", key)
				return nil
			}

			if len(args) < 2 {
				return fmt.Errorf("email required unless --unassign is set")
			}

			if err := app.service.AssignIssueByEmail(cmd.Context(), key, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Assigned issue %s to %s\n", key, args[1])
			return nil
		},
	}

	cmd.Flags().BoolVar(&unassign, "unassign", false, "Clear the assignee")

	return cmd
}

func newIssueTransitionsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "transitions KEY",
		Short: "List the transitions currently available for an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(); err != nil {
				return err
			}

			transitions, err := app.service.ListTransitions(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			renderTransitions(cmd.OutOrStdout(), transitions)
			return nil
		},
	}
}

func newIssueTransitionCommand(app *App) *cobra.Command {
	var (
		comment    string
		resolution string
	)

	cmd := &cobra.Command{
		Use:   "transition KEY NAME",
		Short: "Move an issue through a workflow transition by name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(); err != nil {
				return err
			}

			if err := app.service.TransitionIssueByName(cmd.Context(), args[0], args[1], comment, resolution); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Transitioned issue %s via %q\n", args[0], args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&comment, "comment", "", "Comment to add with the transition")
	cmd.Flags().StringVar(&resolution, "resolution", "", "Resolution name, e.g. Done")

	return cmd
}

func newIssueCommentCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "comment KEY BODY...",
		Short: "Add a comment to an issue",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(); err != nil {
				return err
			}

			body := strings.Join(args[1:], " ")
			if err := app.service.AddComment(cmd.Context(), args[0], body); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added comment to %s\n", args[0])
			return nil
		},
	}
}
