package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rota/internal/export"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		flags  selectionFlags
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a day's rota to a spreadsheet or PDF",
		Long: `Write the shifts of a day, filtered like 'rota list', to an
xlsx workbook or a PDF table.

The format defaults to the extension of --out.`,
		Example: `  rota export --out=rota.xlsx
  rota export --format=pdf --out=today.pdf --status=uncovered`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				return export.ErrNoOutput
			}
			f, err := resolveFormat(format, out)
			if err != nil {
				return err
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

			report := export.BuildReport(sel, entities, shifts)
			if err := export.Write(out, f, report); err != nil {
				return fmt.Errorf("exporting: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d shifts to %s\n", len(report.Rows), out)
			return nil
		},
	}

	flags.register(cmd, a.config.Schedule.DefaultView)
	cmd.Flags().StringVar(&format, "format", "", "Output format: xlsx or pdf (default from --out)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (required)")

	return cmd
}

func resolveFormat(format, out string) (export.Format, error) {
	if format != "" {
		return export.ParseFormat(format)
	}
	return export.FormatFromPath(out)
}
