// Package config handles configuration loading and validation for datepicker.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/datepicker/internal/core/calendar"
	"github.com/colonyops/datepicker/internal/core/constraints"
	"github.com/colonyops/datepicker/internal/core/cursor"
	"github.com/colonyops/datepicker/internal/core/selection"
	"github.com/colonyops/datepicker/internal/core/styles"
	"github.com/colonyops/datepicker/internal/core/textcodec"
)

// DefaultPicker is the picker used when a command does not name one.
const DefaultPicker = "default"

// Config holds the application configuration.
type Config struct {
	Theme    string                `yaml:"theme"`
	Pickers  map[string]PickerSpec `yaml:"pickers"`
	Database DatabaseConfig        `yaml:"database,omitempty"`
	DataDir  string                `yaml:"-"` // set by caller, not from config file
}

// DatabaseConfig holds SQLite settings for the host field store.
type DatabaseConfig struct {
	BusyTimeout int `yaml:"busy_timeout"` // milliseconds
}

// PickerSpec is the raw, textual configuration of one named picker. Bounds
// and the initial value use canonical text.
type PickerSpec struct {
	Mode              string   `yaml:"mode,omitempty"`
	Min               string   `yaml:"min,omitempty"`
	Max               string   `yaml:"max,omitempty"`
	DisabledWeekdays  []string `yaml:"disabled_weekdays,omitempty"`
	DisabledMonthDays []int    `yaml:"disabled_month_days,omitempty"`
	Selection         string   `yaml:"selection,omitempty"`
	InitialView       string   `yaml:"initial_view,omitempty"`
	Initial           string   `yaml:"initial,omitempty"`
	Transform         string   `yaml:"transform,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Pickers: map[string]PickerSpec{
			DefaultPicker: {Mode: "datetime"},
		},
		Database: DatabaseConfig{
			BusyTimeout: 5000,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
	if c.Pickers == nil {
		c.Pickers = map[string]PickerSpec{}
	}
	if _, ok := c.Pickers[DefaultPicker]; !ok {
		c.Pickers[DefaultPicker] = defaults.Pickers[DefaultPicker]
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", c.Theme, strings.Join(styles.ThemeNames(), ", "))
	}

	if c.Database.BusyTimeout < 0 {
		return fmt.Errorf("database.busy_timeout cannot be negative")
	}

	for _, name := range c.PickerNames() {
		if _, _, err := c.Pickers[name].Build(); err != nil {
			return fmt.Errorf("picker %q: %w", name, err)
		}
	}

	return nil
}

// PickerNames returns the configured picker names in sorted order.
func (c *Config) PickerNames() []string {
	names := make([]string, 0, len(c.Pickers))
	for name := range c.Pickers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Picker resolves a named picker into the mode and configuration a dialog
// is opened with. An empty name selects DefaultPicker.
func (c *Config) Picker(name string) (selection.Mode, selection.PickerConfig, error) {
	if name == "" {
		name = DefaultPicker
	}
	spec, ok := c.Pickers[name]
	if !ok {
		return 0, selection.PickerConfig{}, fmt.Errorf("picker %q is not configured", name)
	}
	mode, cfg, err := spec.Build()
	if err != nil {
		return 0, selection.PickerConfig{}, fmt.Errorf("picker %q: %w", name, err)
	}
	return mode, cfg, nil
}

// DBPath returns the path of the host field database.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "datepicker.db")
}

// Build parses the textual spec. The returned error names the first field
// that failed; ValidateDeep reports all of them.
func (p PickerSpec) Build() (selection.Mode, selection.PickerConfig, error) {
	var cfg selection.PickerConfig

	mode, err := p.mode()
	if err != nil {
		return 0, cfg, fmt.Errorf("mode: %w", err)
	}

	if cfg.Constraints.Min, err = parseBound(p.Min, calendar.Midnight); err != nil {
		return 0, cfg, fmt.Errorf("min: %w", err)
	}
	if cfg.Constraints.Max, err = parseBound(p.Max, endOfDay); err != nil {
		return 0, cfg, fmt.Errorf("max: %w", err)
	}
	if cfg.Constraints.DisabledWeekdays, err = parseWeekdays(p.DisabledWeekdays); err != nil {
		return 0, cfg, fmt.Errorf("disabled_weekdays: %w", err)
	}
	if cfg.Constraints.DisabledMonthDays, err = checkMonthDays(p.DisabledMonthDays); err != nil {
		return 0, cfg, fmt.Errorf("disabled_month_days: %w", err)
	}
	if cfg.Selection, err = cursor.ParseGranularity(p.Selection); err != nil {
		return 0, cfg, fmt.Errorf("selection: %w", err)
	}
	if cfg.InitialView, err = cursor.ParseGranularity(p.InitialView); err != nil {
		return 0, cfg, fmt.Errorf("initial_view: %w", err)
	}
	if cfg.Initial, err = parseInitial(mode, p.Initial); err != nil {
		return 0, cfg, fmt.Errorf("initial: %w", err)
	}
	if cfg.Transform, err = selection.TransformByName(p.Transform); err != nil {
		return 0, cfg, fmt.Errorf("transform: %w", err)
	}

	return mode, cfg, nil
}

func (p PickerSpec) mode() (selection.Mode, error) {
	if p.Mode == "" {
		return selection.DateTime, nil
	}
	return selection.ParseMode(p.Mode)
}

var endOfDay = calendar.TimeOfDay{Hour: 23, Minute: 59}

// parseBound reads a canonical date or datetime. A bare date is widened to
// the given time of day so that min covers the whole first day and max the
// whole last day.
func parseBound(text string, dayTime calendar.TimeOfDay) (*calendar.Instant, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if i, ok := textcodec.ParseISODateTime(text); ok {
		return &i, nil
	}
	if d, ok := textcodec.ParseISODate(text); ok {
		i := calendar.At(d, dayTime)
		return &i, nil
	}
	return nil, fmt.Errorf("%q is not a canonical date or datetime", text)
}

func parseInitial(mode selection.Mode, text string) (*calendar.Instant, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	switch mode {
	case selection.TimeOnly:
		if t, ok := textcodec.ParseISOTime(text); ok {
			return &calendar.Instant{TimeOfDay: t}, nil
		}
	case selection.DateOnly:
		if d, ok := textcodec.ParseISODate(text); ok {
			i := calendar.At(d, calendar.Midnight)
			return &i, nil
		}
	default:
		if i, ok := textcodec.ParseISODateTime(text); ok {
			return &i, nil
		}
	}
	return nil, fmt.Errorf("%q is not a canonical %s", text, mode)
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		w, err := constraints.WeekdayFromName(name)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func checkMonthDays(days []int) ([]int, error) {
	for _, d := range days {
		if d < 1 || d > 31 {
			return nil, fmt.Errorf("day %d is outside 1..31", d)
		}
	}
	if len(days) == 0 {
		return nil, nil
	}
	return days, nil
}
