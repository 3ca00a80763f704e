package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ylchen07/jira-api/internal/atlassian"
	"github.com/ylchen07/jira-api/internal/config"
	"github.com/ylchen07/jira-api/internal/jira"
	"github.com/ylchen07/jira-api/pkg/logging"
)

// App holds the shared state for the command tree.
type App struct {
	cfgPath string
	cfg     *config.Config
	logger  *slog.Logger
	service *jira.Service
}

// NewRootCommand builds the jira-api command tree.
func NewRootCommand() *cobra.Command {
	app := &App{}

	root := &cobra.Command{
		Use:           "jira-api",
		Short:         "Client and server for the Jira Cloud REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&app.cfgPath, "config", "", "Path to configuration directory or file")

	root.AddCommand(
		newIssueCommand(app),
		newProjectCommand(app),
		newUserCommand(app),
		newServeCommand(app),
		newMCPCommand(app),
	)

	return root
}

// setup loads configuration and constructs the service. Called lazily so
// that --help never requires credentials.
func (a *App) setup() error {
	if a.service != nil {
		return nil
	}

	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(cfg.Server.LogLevel)

	client, err := atlassian.NewClient(cfg.Jira.Site, cfg.Jira.ServiceCredentials, a.logger)
	if err != nil {
		return err
	}

	a.service = jira.NewService(client)
	return nil
}
