package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ylchen07/jira-api/internal/jira"
)

func newProjectCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project operations",
	}

	cmd.AddCommand(
		newProjectGetCommand(app),
		newProjectVersionsCommand(app),
		newProjectCreateVersionCommand(app),
	)

	return cmd
}

func newProjectGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Fetch a project by key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(); err != nil {
				return err
			}

			project, err := app.service.GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			renderProject(cmd.OutOrStdout(), project)
			return nil
		},
	}
}

func newProjectVersionsCommand(app *App) *cobra.Command {
	var (
		releasedOnly   bool
		unreleasedOnly bool
	)

	cmd := &cobra.Command{
		Use:   "versions KEY",
		Short: "List project versions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if releasedOnly && unreleasedOnly {
				return fmt.Errorf("--released and --unreleased are mutually exclusive")
			}

			if err := app.setup(); err != nil {
				return err
			}

			filter := jira.AllVersions
			if releasedOnly {
				filter = jira.ReleasedOnly
			}
			if unreleasedOnly {
				filter = jira.UnreleasedOnly
			}

			versions, err := app.service.ProjectVersions(cmd.Context(), args[0], filter)
			if err != nil {
				return err
			}

			renderVersions(cmd.OutOrStdout(), versions)
			return nil
		},
	}

	cmd.Flags().BoolVar(&releasedOnly, "released", false, "Show released versions only")
	cmd.Flags().BoolVar(&unreleasedOnly, "unreleased", false, "Show unreleased versions only")

	return cmd
}

func newProjectCreateVersionCommand(app *App) *cobra.Command {
	var (
		description string
		startDate   string
		releaseDate string
		released    bool
		archived    bool
	)

	cmd := &cobra.Command{
		Use:   "create-version PROJECT_KEY NAME",
		Short: "Create a project version",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(); err != nil {
				return err
			}

			version, err := app.service.CreateVersion(cmd.Context(), args[0], jira.VersionCreate{
				Name:        args[1],
				Description: description,
				StartDate:   startDate,
				ReleaseDate: releaseDate,
				Released:    released,
				Archived:    archived,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created version %s (%s)\n", version.Name, version.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Version description")
	cmd.Flags().StringVar(&startDate, "start-date", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&releaseDate, "release-date", "", "Release date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&released, "released", false, "Mark the version released")
	cmd.Flags().BoolVar(&archived, "archived", false, "Mark the version archived")

	return cmd
}
