package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/datepicker/internal/core/cursor"
	"github.com/colonyops/datepicker/internal/core/selection"
	"github.com/colonyops/datepicker/internal/core/styles"
	"github.com/colonyops/datepicker/internal/core/textcodec"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration,
// collecting every picker field error instead of stopping at the first one.
// The configPath argument specifies the config file location to validate
// (empty string skips config file check).
func (c *Config) ValidateDeep(configPath string) error {
	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		criterio.Run("theme", c.Theme, themeExists),
		c.validateDatabase(),
		c.validatePickers(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	for _, name := range c.PickerNames() {
		_, cfg, err := c.Pickers[name].Build()
		if err != nil {
			continue
		}
		cons := cfg.Constraints
		if cons.Min != nil && cons.Max != nil && cons.Min.After(*cons.Max) {
			warnings = append(warnings, ValidationWarning{
				Category: "Pickers",
				Item:     name,
				Message:  fmt.Sprintf("min %s is after max %s; no value can be selected", cons.Min, cons.Max),
			})
		}
		if len(cons.DisabledWeekdays) >= 7 {
			warnings = append(warnings, ValidationWarning{
				Category: "Pickers",
				Item:     name,
				Message:  "every weekday is disabled",
			})
		}
	}

	return warnings
}

// validateFileAccess checks config file and data directory.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return fmt.Errorf("cannot be empty")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.BusyTimeout < 0 {
		return criterio.NewFieldErrors("database.busy_timeout", fmt.Errorf("cannot be negative"))
	}
	return nil
}

// validatePickers checks every field of every picker.
func (c *Config) validatePickers() error {
	var errs criterio.FieldErrorsBuilder

	for _, name := range c.PickerNames() {
		p := c.Pickers[name]
		prefix := fmt.Sprintf("pickers.%s.", name)

		mode, err := p.mode()
		if err != nil {
			errs = errs.Append(prefix+"mode", err)
			mode = selection.DateTime
		}
		if _, err := parseBound(p.Min, endOfDay); err != nil {
			errs = errs.Append(prefix+"min", err)
		}
		if _, err := parseBound(p.Max, endOfDay); err != nil {
			errs = errs.Append(prefix+"max", err)
		}
		for i, w := range p.DisabledWeekdays {
			if _, err := parseWeekdays([]string{w}); err != nil {
				errs = errs.Append(fmt.Sprintf("%sdisabled_weekdays[%d]", prefix, i), err)
			}
		}
		for i, d := range p.DisabledMonthDays {
			if _, err := checkMonthDays([]int{d}); err != nil {
				errs = errs.Append(fmt.Sprintf("%sdisabled_month_days[%d]", prefix, i), err)
			}
		}
		if _, err := cursor.ParseGranularity(p.Selection); err != nil {
			errs = errs.Append(prefix+"selection", err)
		}
		if _, err := cursor.ParseGranularity(p.InitialView); err != nil {
			errs = errs.Append(prefix+"initial_view", err)
		}
		if _, err := parseInitial(mode, p.Initial); err != nil {
			errs = errs.Append(prefix+"initial", err)
		}
		if _, err := selection.TransformByName(p.Transform); err != nil {
			errs = errs.Append(prefix+"transform", fmt.Errorf("%w (available: %v)", err, selection.TransformNames))
		}
		if mode == selection.TimeOnly && p.Selection != "" && p.Selection != cursor.Days.String() {
			errs = errs.Append(prefix+"selection", fmt.Errorf("a %s picker has no calendar grid", textcodec.KindTime))
		}
	}

	return errs.ToError()
}
