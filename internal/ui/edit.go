package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rota/internal/dateutil"
	"github.com/javiermolinar/rota/internal/shift"
)

var errShiftNotFound = errors.New("shift not found")

func (a *App) editCmd() *cobra.Command {
	var (
		flags   shiftFlags
		covered bool
	)

	cmd := &cobra.Command{
		Use:   "edit <shift-id>",
		Short: "Change an existing shift",
		Long: `Change the fields of an existing shift. Only the flags you pass are
changed. Changing --role unassigns the worker unless --worker is given too.`,
		Example: `  rota edit 6 --worker="Williams, Sarah" --covered
  rota edit 10 --start=13:00 --end=21:00`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid shift ID: %w", err)
			}
			if flags.uncovered && covered {
				return errors.New("--covered and --uncovered are mutually exclusive")
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			existing, err := a.repo.GetShift(ctx, id)
			if err != nil {
				return fmt.Errorf("fetching shift: %w", err)
			}
			if existing == nil {
				return fmt.Errorf("%w: #%d", errShiftNotFound, id)
			}
			entities, err := a.repo.Entities(ctx)
			if err != nil {
				return fmt.Errorf("listing entities: %w", err)
			}

			d := shift.EditDraft(existing, entities)
			if err := applyShiftFlags(&d, flags, cmd, entities); err != nil {
				return err
			}
			if cmd.Flags().Changed("date") {
				date, err := dateutil.ParseRelativeDate(flags.date, a.now())
				if err != nil {
					return fmt.Errorf("invalid date: %w", err)
				}
				d.Date = date
			}
			switch {
			case covered:
				d.Coverage = shift.CoverageCovered
			case flags.uncovered:
				d.Coverage = shift.CoverageUncovered
			}
			if err := d.Validate(); err != nil {
				return err
			}

			updated, err := a.repo.UpdateShift(ctx, id, d)
			if err != nil {
				return fmt.Errorf("updating shift: %w", err)
			}
			if updated == nil {
				return fmt.Errorf("%w: #%d", errShiftNotFound, id)
			}

			printShiftResult(cmd.OutOrStdout(), "Updated", updated)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&covered, "covered", false, "Mark the shift as covered")

	return cmd
}
