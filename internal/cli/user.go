package cli

import (
	"github.com/spf13/cobra"

	"github.com/ylchen07/jira-api/internal/jira"
)

func newUserCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User operations",
	}

	cmd.AddCommand(
		newUserSearchCommand(app),
		newUserGetCommand(app),
	)

	return cmd
}

func newUserSearchCommand(app *App) *cobra.Command {
	var maxResults int

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search for users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(); err != nil {
				return err
			}

			users, err := app.service.SearchUsers(cmd.Context(), args[0], maxResults)
			if err != nil {
				return err
			}

			renderUsers(cmd.OutOrStdout(), users)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxResults, "max-results", 50, "Maximum number of results")

	return cmd
}

func newUserGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get IDENTIFIER",
		Short: "Fetch a user by account ID or email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(); err != nil {
				return err
			}

			user, err := app.service.UserByIdentifier(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			renderUsers(cmd.OutOrStdout(), []jira.User{*user})
			return nil
		},
	}
}
