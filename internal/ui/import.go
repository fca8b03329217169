package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rota/internal/config"
	"github.com/javiermolinar/rota/internal/db"
	"github.com/javiermolinar/rota/internal/shift"
)

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [database_path]",
		Short: "Import shifts from another rota database",
		Long: `Import every shift of another rota SQLite database into the current
store. Imported shifts get new ids; workers are matched by name.

Example:
  rota import /path/to/other.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			sourcePath, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			if a.config.Storage.Backend == config.BackendSQLite && a.config.Storage.DBPath != db.MemoryPath {
				destPath, err := resolvePath(a.config.Storage.DBPath)
				if err != nil {
					return err
				}
				if sourcePath == destPath {
					return fmt.Errorf("source database matches current database")
				}
			}

			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("source database does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking source database: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("source database path is a directory: %s", sourcePath)
			}

			count, err := importShifts(context.Background(), a.repo, sourcePath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d shifts from %s\n", count, sourcePath)
			return nil
		},
	}

	return cmd
}

func importShifts(ctx context.Context, dest shift.Repository, sourcePath string) (int, error) {
	sourceRepo, err := db.New(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("opening source database: %w", err)
	}
	defer func() { _ = sourceRepo.Close() }()

	shifts, err := sourceRepo.ListShifts(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing source shifts: %w", err)
	}

	entities, err := sourceRepo.Entities(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing source entities: %w", err)
	}

	imported := 0
	for _, s := range shifts {
		d := shift.EditDraft(s, entities)
		if _, err := dest.CreateShift(ctx, d); err != nil {
			return imported, fmt.Errorf("importing shift %d: %w", s.ID, err)
		}
		imported++
	}

	return imported, nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
