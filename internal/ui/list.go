package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rota/internal/dateutil"
	"github.com/javiermolinar/rota/internal/filter"
	"github.com/javiermolinar/rota/internal/grid"
	"github.com/javiermolinar/rota/internal/shift"
)

var (
	errUnknownType   = errors.New("unknown shift type")
	errUnknownStatus = errors.New("status must be 'all', 'covered' or 'uncovered'")
	errUnknownName   = errors.New("no entity with that name in the view")
)

// selectionFlags are the filter flags shared by list, summary and export.
type selectionFlags struct {
	by     string
	name   string
	typ    string
	status string
	date   string
}

func (f *selectionFlags) register(cmd *cobra.Command, defaultBy string) {
	cmd.Flags().StringVar(&f.by, "by", defaultBy, "Rows to group by: service, client or worker")
	cmd.Flags().StringVar(&f.name, "name", "", "Only this worker, service or client (exact name)")
	cmd.Flags().StringVar(&f.typ, "type", "", "Only shifts of this type")
	cmd.Flags().StringVar(&f.status, "status", "", "Coverage: all, covered or uncovered")
	cmd.Flags().StringVar(&f.date, "date", "", "Day to show (YYYY-MM-DD, today, tomorrow, +N, weekday)")
}

// selection resolves the flags against the entity list.
func (f *selectionFlags) selection(a *App, entities []shift.Entity) (filter.Selection, error) {
	by, err := shift.ParseViewBy(f.by)
	if err != nil {
		return filter.Selection{}, err
	}
	date, err := dateutil.ParseRelativeDate(f.date, a.now())
	if err != nil {
		return filter.Selection{}, fmt.Errorf("invalid date: %w", err)
	}
	typ, err := parseType(f.typ)
	if err != nil {
		return filter.Selection{}, err
	}
	status, err := parseStatus(f.status)
	if err != nil {
		return filter.Selection{}, err
	}

	sel := filter.NewSelection(by, date).
		WithType(typ).
		WithStatus(status).
		WithDensity(a.config.Density())

	if f.name != "" {
		name, err := resolveName(by, f.name, entities)
		if err != nil {
			return filter.Selection{}, err
		}
		sel = sel.WithName(name)
	}
	return sel, nil
}

func parseType(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, filter.All) {
		return filter.All, nil
	}
	for _, t := range shift.Types() {
		if strings.EqualFold(t, s) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errUnknownType, s)
}

func parseStatus(s string) (string, error) {
	for _, st := range filter.Statuses() {
		if strings.EqualFold(st, strings.TrimSpace(s)) {
			return st, nil
		}
	}
	if strings.TrimSpace(s) == "" {
		return filter.All, nil
	}
	return "", errUnknownStatus
}

// resolveName finds the entity of the view named s, ignoring case.
func resolveName(by shift.ViewBy, s string, entities []shift.Entity) (string, error) {
	for _, e := range filter.EntitiesFor(by, entities) {
		if strings.EqualFold(e.Name, strings.TrimSpace(s)) {
			return e.Name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errUnknownName, s)
}

func (a *App) listCmd() *cobra.Command {
	var (
		flags   selectionFlags
		verbose bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the shifts of a day",
		Long: `List the shifts scheduled on a day, grouped by the rows of a view.

If no date is specified, lists today's shifts.`,
		Example: `  rota list
  rota list --by=worker --date=tomorrow
  rota list --status=uncovered --type="Night Shift"`,
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
			shifts, err := a.repo.ListShifts(ctx)
			if err != nil {
				return fmt.Errorf("listing shifts: %w", err)
			}

			printShiftList(cmd.OutOrStdout(), sel, entities, shifts, PrintOpts{By: sel.By, Verbose: verbose})
			return nil
		},
	}

	flags.register(cmd, a.config.Schedule.DefaultView)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show full notes")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}

// printShiftList prints the visible shifts under each row of the selection.
func printShiftList(w io.Writer, sel filter.Selection, entities []shift.Entity, shifts []*shift.Shift, opts PrintOpts) {
	visible := filter.Apply(sel, shifts)
	rows := filter.Entities(sel, entities)
	idx := grid.NewIndex(visible, rows, sel.By)

	fmt.Fprintf(w, "=== %s · %s ===\n", formatHeader(dateutil.FormatDay(sel.Date)), sel.By)

	maxNotesWidth := opts.CalcMaxNotesWidth(30)
	printed := 0
	for _, e := range rows {
		row := idx.Row(e.ID)
		if len(row) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s %s\n", formatEntity(e.Name), formatMuted(string(e.Category)))
		for _, s := range row {
			PrintShiftRow(w, s, opts, maxNotesWidth)
			printed++
		}
	}

	if printed == 0 {
		fmt.Fprintln(w, "\nNo shifts match the current filters.")
	}
}
