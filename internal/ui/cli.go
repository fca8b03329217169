package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rota/internal/config"
	"github.com/javiermolinar/rota/internal/dateutil"
	"github.com/javiermolinar/rota/internal/db"
	"github.com/javiermolinar/rota/internal/seed"
	"github.com/javiermolinar/rota/internal/shift"
	"github.com/javiermolinar/rota/internal/store"
	"github.com/javiermolinar/rota/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   shift.Repository
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
	now    func() time.Time
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily from the storage config.
func NewApp(repo shift.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg, now: time.Now}

	a.root = &cobra.Command{
		Use:   "rota",
		Short: "A terminal shift scheduling calendar",
		Long: `Rota is a terminal calendar for care shift scheduling.

It lays workers, services or clients out against the 24 hours of a day,
lets you drag across empty slots to create an assignment, and edit
existing shifts in place.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.RunWithDebug(a.repo, a.config, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.entitiesCmd())
	a.root.AddCommand(a.summaryCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rota %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// SetArgs overrides the command line arguments, for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Close releases the repository if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

func (a *App) today() time.Time {
	return dateutil.TruncateToDay(a.now())
}

// ensureRepo opens the configured store and loads the seed fixtures into it.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}

	data, err := seed.Load(a.config.Seed.Path, a.today())
	if err != nil {
		return fmt.Errorf("loading seed data: %w", err)
	}

	switch a.config.Storage.Backend {
	case config.BackendSQLite:
		repo, err := db.New(a.config.Storage.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		if err := repo.Seed(context.Background(), data.Entities, data.Shifts); err != nil {
			_ = repo.Close()
			return fmt.Errorf("seeding database: %w", err)
		}
		a.repo = repo
	default:
		a.repo = store.NewMemory(data.Entities, data.Shifts)
	}
	return nil
}
