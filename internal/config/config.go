// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/rota/internal/db"
	"github.com/javiermolinar/rota/internal/grid"
	"github.com/javiermolinar/rota/internal/shift"
)

// Storage backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds the application configuration.
type Config struct {
	Grid     GridConfig     `toml:"grid"`
	Schedule ScheduleConfig `toml:"schedule"`
	Storage  StorageConfig  `toml:"storage"`
	Seed     SeedConfig     `toml:"seed"`
	UI       UIConfig       `toml:"ui"`
}

// GridConfig holds the slot sizing settings.
type GridConfig struct {
	Density string      `toml:"density"` // "compact", "standard", "expanded"
	Layout  grid.Layout `toml:"layout"`
}

// ScheduleConfig holds the initial grid selection.
type ScheduleConfig struct {
	DefaultView string `toml:"default_view"` // "service", "client" or "worker"
}

// StorageConfig holds the shift store settings.
type StorageConfig struct {
	Backend string `toml:"backend"` // "memory" or "sqlite"
	DBPath  string `toml:"db_path"` // ":memory:" keeps sqlite in process memory
}

// SeedConfig points at a directory with entities.toml and shifts.toml.
// An empty path uses the built-in fixtures.
type SeedConfig struct {
	Path string `toml:"path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme         string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
	ShowGridLines bool   `toml:"show_grid_lines"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Density: string(grid.DensityStandard),
			Layout:  grid.TerminalLayout(),
		},
		Schedule: ScheduleConfig{
			DefaultView: "service",
		},
		Storage: StorageConfig{
			Backend: BackendMemory,
			DBPath:  db.MemoryPath,
		},
		UI: UIConfig{
			Theme:         "frappe",
			ShowGridLines: true,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "rota", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Seed.Path = expandPath(cfg.Seed.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies ROTA_* environment variables on top of the file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("ROTA_DENSITY"); v != "" {
		cfg.Grid.Density = v
	}
	if v := os.Getenv("ROTA_VIEW"); v != "" {
		cfg.Schedule.DefaultView = v
	}
	if v := os.Getenv("ROTA_STORAGE"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("ROTA_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("ROTA_SEED_PATH"); v != "" {
		cfg.Seed.Path = v
	}
	if v := os.Getenv("ROTA_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("ROTA_GRID_LINES"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ROTA_GRID_LINES: %w", err)
		}
		cfg.UI.ShowGridLines = on
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !isValidDensity(c.Grid.Density) {
		return fmt.Errorf("invalid density: %q", c.Grid.Density)
	}
	if err := validateLayout(c.Grid.Layout); err != nil {
		return err
	}
	if _, err := shift.ParseViewBy(c.Schedule.DefaultView); err != nil {
		return fmt.Errorf("default_view: %w", err)
	}

	switch c.Storage.Backend {
	case BackendMemory:
	case BackendSQLite:
		if c.Storage.DBPath == "" {
			return errors.New("db_path must be set for the sqlite backend")
		}
	default:
		return fmt.Errorf("invalid storage backend: %q", c.Storage.Backend)
	}
	return nil
}

func isValidDensity(s string) bool {
	for _, d := range grid.Densities() {
		if strings.EqualFold(s, string(d)) {
			return true
		}
	}
	return false
}

func validateLayout(l grid.Layout) error {
	if l.NarrowMax <= 0 || l.MediumMax <= l.NarrowMax {
		return errors.New("layout breakpoints must satisfy 0 < narrow_max < medium_max")
	}
	for _, w := range []grid.Widths{l.Compact, l.Standard, l.Expanded} {
		if w.Narrow <= 0 || w.Medium <= 0 || w.Wide <= 0 {
			return errors.New("layout widths must be positive")
		}
	}
	return nil
}

// Density returns the configured density.
func (c *Config) Density() grid.Density {
	return grid.ParseDensity(c.Grid.Density)
}

// View returns the configured initial view, falling back to services.
func (c *Config) View() shift.ViewBy {
	v, err := shift.ParseViewBy(c.Schedule.DefaultView)
	if err != nil {
		return shift.ViewServiceClient
	}
	return v
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
