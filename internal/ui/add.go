package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rota/internal/dateutil"
	"github.com/javiermolinar/rota/internal/filter"
	"github.com/javiermolinar/rota/internal/shift"
)

// shiftFlags are the assignment fields accepted by add and edit.
type shiftFlags struct {
	worker        string
	serviceClient string
	typ           string
	role          string
	start         string
	end           string
	date          string
	uncovered     bool
	notes         string
}

func (f *shiftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.worker, "worker", "", "Worker name")
	cmd.Flags().StringVar(&f.serviceClient, "service", "", "Service or client name")
	cmd.Flags().StringVar(&f.typ, "type", "", "Shift type")
	cmd.Flags().StringVar(&f.role, "role", "", "Required role")
	cmd.Flags().StringVar(&f.start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&f.end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&f.date, "date", "", "Date (YYYY-MM-DD, today, tomorrow, +N, weekday)")
	cmd.Flags().BoolVar(&f.uncovered, "uncovered", false, "Mark the shift as still needing cover")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Free-text notes")
}

// resolveServiceClient finds the service or client named s, ignoring case.
func resolveServiceClient(s string, entities []shift.Entity) (string, error) {
	for _, e := range filter.ServiceClientOptions(entities) {
		if strings.EqualFold(e.Name, strings.TrimSpace(s)) {
			return e.Name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errUnknownName, s)
}

func resolveRole(s string) (string, error) {
	for _, r := range shift.Roles() {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return string(r), nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (a *App) addCmd() *cobra.Command {
	var flags shiftFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new shift",
		Long: `Add a new shift assignment.

A shift needs a worker, a service/client, or both. Without --worker it
is created unassigned.`,
		Example: `  rota add --service=Chingford --start=09:00 --end=17:00 --type="Support Worker"
  rota add --worker="Johnson, Mike" --service="John Smith" --start=22:00 --end=06:00 --date=tomorrow`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			entities, err := a.repo.Entities(ctx)
			if err != nil {
				return fmt.Errorf("listing entities: %w", err)
			}

			date, err := dateutil.ParseRelativeDate(flags.date, a.now())
			if err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}

			d := shift.Draft{
				Start:    flags.start,
				End:      flags.end,
				Date:     date,
				Coverage: shift.CoverageCovered,
				Notes:    flags.notes,
			}
			if flags.uncovered {
				d.Coverage = shift.CoverageUncovered
			}
			if err := applyShiftFlags(&d, flags, cmd, entities); err != nil {
				return err
			}
			if err := d.Validate(); err != nil {
				return err
			}

			created, err := a.repo.CreateShift(ctx, d)
			if err != nil {
				return fmt.Errorf("creating shift: %w", err)
			}

			printShiftResult(cmd.OutOrStdout(), "Created", created)
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// applyShiftFlags copies the flags the user set onto the draft, resolving
// names against the entity list.
func applyShiftFlags(d *shift.Draft, f shiftFlags, cmd *cobra.Command, entities []shift.Entity) error {
	changed := cmd.Flags().Changed

	if changed("role") {
		role, err := resolveRole(f.role)
		if err != nil {
			return err
		}
		if role != d.RequiredRole {
			d.Worker = ""
		}
		d.RequiredRole = role
	}
	if changed("worker") {
		d.Worker = ""
		if f.worker != "" {
			name, err := resolveName(shift.ViewWorker, f.worker, entities)
			if err != nil {
				return err
			}
			d.Worker = name
		}
	}
	if changed("service") {
		d.ServiceClient = ""
		if f.serviceClient != "" {
			name, err := resolveServiceClient(f.serviceClient, entities)
			if err != nil {
				return err
			}
			d.ServiceClient = name
		}
	}
	if changed("type") {
		typ, err := parseType(f.typ)
		if err != nil {
			return err
		}
		if typ == filter.All {
			typ = ""
		}
		d.Type = typ
	}
	if changed("start") {
		d.Start = f.start
	}
	if changed("end") {
		d.End = f.end
	}
	if changed("notes") {
		d.Notes = f.notes
	}
	return nil
}

func printShiftResult(w io.Writer, verb string, s *shift.Shift) {
	worker := s.WorkerName
	if worker == "" {
		worker = "Unassigned"
	}
	fmt.Fprintf(w, "%s shift #%d: %s → %s [%s] %s %s-%s (%s)\n",
		verb,
		s.ID,
		worker,
		s.ServiceClient,
		s.Type,
		dateutil.FormatDate(s.Date),
		s.Start,
		s.End,
		s.Coverage,
	)
}
