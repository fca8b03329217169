package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rota/internal/dateutil"
	"github.com/javiermolinar/rota/internal/summary"
)

func (a *App) summaryCmd() *cobra.Command {
	var (
		flags   selectionFlags
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show coverage figures for a day",
		Long: `Display how many shifts of a day are covered, how many still need
a worker, and which uncovered shifts are urgent.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			entities, err := a.repo.Entities(ctx)
			if err != nil {
				return fmt.Errorf("listing entities: %w", err)
			}
			sel, err := flags.selection(a, entities)
			if err != nil {
				return err
			}

			sum, err := summary.BuildDaySummary(ctx, a.repo, sel)
			if err != nil {
				return fmt.Errorf("building day summary: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "=== %s ===\n\n", formatHeader(dateutil.FormatDay(sum.Date)))
			if sum.Total == 0 {
				fmt.Fprintln(w, "No shifts scheduled.")
				return nil
			}
			PrintSummary(w, sum)

			if len(sum.Urgent) > 0 {
				fmt.Fprintf(w, "\n%s\n", formatHeader("Urgent"))
				opts := PrintOpts{By: sel.By}
				for _, s := range sum.Urgent {
					PrintShiftRow(w, s, opts, opts.CalcMaxNotesWidth(30))
				}
			}
			return nil
		},
	}

	flags.register(cmd, a.config.Schedule.DefaultView)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
