package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rota/internal/config"
	"github.com/javiermolinar/rota/internal/grid"
	"github.com/javiermolinar/rota/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  rota config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.OutOrStdout())
		},
	}
}

func runConfigInteractive(w io.Writer) error {
	configPath := config.DefaultConfigPath()
	fmt.Fprintf(w, "Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(w, "No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(w, "Created %s\n\n", configPath)
	}

	printConfig(w, cfg)

	reader := bufio.NewReader(os.Stdin)
	if !promptYesNo(w, reader, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Grid.Density = promptChoice(w, reader, "Grid density", cfg.Grid.Density, densityNames())
	cfg.Schedule.DefaultView = promptChoice(w, reader, "Default view", cfg.Schedule.DefaultView,
		[]string{"service", "client", "worker"})
	cfg.Storage.Backend = promptChoice(w, reader, "Storage backend", cfg.Storage.Backend,
		[]string{config.BackendMemory, config.BackendSQLite})
	if cfg.Storage.Backend == config.BackendSQLite {
		cfg.Storage.DBPath = promptValue(w, reader, "Database path (:memory: for none)", cfg.Storage.DBPath)
	}
	cfg.Seed.Path = promptValue(w, reader, "Seed fixture directory (empty for built-in)", cfg.Seed.Path)
	cfg.UI.Theme = promptChoice(w, reader, "UI theme", cfg.UI.Theme, theme.Available())
	cfg.UI.ShowGridLines = promptBool(w, reader, "Show grid lines", cfg.UI.ShowGridLines)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(w, "\nConfiguration saved!")
	return nil
}

func densityNames() []string {
	var names []string
	for _, d := range grid.Densities() {
		names = append(names, string(d))
	}
	return names
}

func printConfig(w io.Writer, cfg *config.Config) {
	l := cfg.Grid.Layout
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[grid]")
	fmt.Fprintf(w, "  density          = %s\n", cfg.Grid.Density)
	fmt.Fprintf(w, "  breakpoints      = <%d narrow, <%d medium\n", l.NarrowMax, l.MediumMax)
	fmt.Fprintf(w, "  compact          = %d/%d/%d\n", l.Compact.Narrow, l.Compact.Medium, l.Compact.Wide)
	fmt.Fprintf(w, "  standard         = %d/%d/%d\n", l.Standard.Narrow, l.Standard.Medium, l.Standard.Wide)
	fmt.Fprintf(w, "  expanded         = %d/%d/%d\n", l.Expanded.Narrow, l.Expanded.Medium, l.Expanded.Wide)
	fmt.Fprintln(w, "\n[schedule]")
	fmt.Fprintf(w, "  default_view     = %s\n", cfg.Schedule.DefaultView)
	fmt.Fprintln(w, "\n[storage]")
	fmt.Fprintf(w, "  backend          = %s\n", cfg.Storage.Backend)
	fmt.Fprintf(w, "  db_path          = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(w, "\n[seed]")
	seedPath := cfg.Seed.Path
	if seedPath == "" {
		seedPath = "(built-in)"
	}
	fmt.Fprintf(w, "  path             = %s\n", seedPath)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme            = %s\n", cfg.UI.Theme)
	fmt.Fprintf(w, "  show_grid_lines  = %t\n", cfg.UI.ShowGridLines)
}

func promptYesNo(w io.Writer, reader *bufio.Reader, question string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(w io.Writer, reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Fprintf(w, "  %s: ", label)
	} else {
		fmt.Fprintf(w, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptBool(w io.Writer, reader *bufio.Reader, label string, current bool) bool {
	for {
		value := promptValue(w, reader, label+" (true/false)", strconv.FormatBool(current))
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		fmt.Fprintf(w, "  Invalid value %q.\n", value)
	}
}

func promptChoice(w io.Writer, reader *bufio.Reader, label, current string, options []string) string {
	joined := strings.Join(options, ", ")
	prompt := fmt.Sprintf("%s (%s)", label, joined)
	for {
		value := strings.ToLower(promptValue(w, reader, prompt, current))
		if value == strings.ToLower(current) {
			return current
		}
		for _, o := range options {
			if value == o {
				return value
			}
		}
		fmt.Fprintf(w, "  Invalid value %q. Available: %s\n", value, joined)
	}
}
