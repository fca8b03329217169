package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rota/internal/filter"
	"github.com/javiermolinar/rota/internal/shift"
)

func (a *App) entitiesCmd() *cobra.Command {
	var (
		by      string
		search  string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "entities",
		Short: "List workers, services or clients",
		Example: `  rota entities --by=worker
  rota entities --by=client --search=john`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			view, err := shift.ParseViewBy(by)
			if err != nil {
				return err
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			entities, err := a.repo.Entities(context.Background())
			if err != nil {
				return fmt.Errorf("listing entities: %w", err)
			}

			matches := filter.SearchNames(view, search, entities)
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entities match.")
				return nil
			}
			printEntities(cmd.OutOrStdout(), matches)
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", a.config.Schedule.DefaultView, "Group: service, client or worker")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive name filter")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}

func printEntities(w io.Writer, entities []shift.Entity) {
	for _, e := range entities {
		fmt.Fprintf(w, "  %s %-3s %-30s %-22s %s\n",
			entityStatusSymbol(e.Status),
			e.Initials,
			e.Name,
			formatMuted(string(e.Category)),
			formatMuted(e.Address),
		)
	}
}

func entityStatusSymbol(s shift.EntityStatus) string {
	switch s {
	case shift.StatusOnline, shift.StatusActive:
		return formatCovered("●")
	case shift.StatusAway:
		return formatAlert("◐")
	case shift.StatusMaintenance:
		return formatUncovered("▲")
	default:
		return formatMuted("○")
	}
}
