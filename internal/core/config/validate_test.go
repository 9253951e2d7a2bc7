package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config with all required fields set for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	return &cfg
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	cfg.Pickers["shift"] = PickerSpec{
		Mode:              "time",
		Min:               "2024-01-01T08:00",
		Max:               "2024-01-01T17:00",
		DisabledWeekdays:  []string{"0", "sat"},
		DisabledMonthDays: []int{31},
		Initial:           "09:00",
	}

	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_CollectsPickerErrors(t *testing.T) {
	cfg := validConfig(t)
	cfg.Pickers["broken"] = PickerSpec{
		Mode:              "fortnight",
		Max:               "31/12/2567",
		DisabledWeekdays:  []string{"mon", "someday"},
		DisabledMonthDays: []int{0},
		InitialView:       "decades",
		Transform:         "shout",
	}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{
		"pickers.broken.mode",
		"pickers.broken.max",
		"pickers.broken.disabled_weekdays[1]",
		"pickers.broken.disabled_month_days[0]",
		"pickers.broken.initial_view",
		"pickers.broken.transform",
	}, fields)
}

func TestValidateDeep_TimePickerWithGridSelection(t *testing.T) {
	cfg := validConfig(t)
	cfg.Pickers["t"] = PickerSpec{Mode: "time", Selection: "months"}

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, cfg.ValidateDeep(""), &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "pickers.t.selection", fieldErrs[0].Field)
}

func TestValidateDeep_FileAccess(t *testing.T) {
	t.Run("config path is a directory", func(t *testing.T) {
		cfg := validConfig(t)
		dir := t.TempDir()

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, cfg.ValidateDeep(dir), &fieldErrs)
		assert.Equal(t, "config_file", fieldErrs[0].Field)
		assert.Contains(t, fieldErrs[0].Err.Error(), "is a directory")
	})

	t.Run("missing config file is fine", func(t *testing.T) {
		cfg := validConfig(t)
		assert.NoError(t, cfg.ValidateDeep(filepath.Join(t.TempDir(), "config.yaml")))
	})

	t.Run("data dir is a file", func(t *testing.T) {
		cfg := validConfig(t)
		file := filepath.Join(t.TempDir(), "data")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		cfg.DataDir = file

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, cfg.ValidateDeep(""), &fieldErrs)
		assert.Equal(t, "data_dir", fieldErrs[0].Field)
	})
}

func TestValidateDeep_ThemeAndDatabase(t *testing.T) {
	cfg := validConfig(t)
	cfg.Theme = "neon"
	cfg.Database.BusyTimeout = -1

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, cfg.ValidateDeep(""), &fieldErrs)
	assert.Len(t, fieldErrs, 2)
}

func TestWarnings(t *testing.T) {
	cfg := validConfig(t)
	assert.Empty(t, cfg.Warnings())

	cfg.Pickers["inverted"] = PickerSpec{Min: "2024-06-30", Max: "2024-06-01"}
	cfg.Pickers["closed"] = PickerSpec{DisabledWeekdays: []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}}

	warnings := cfg.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "closed", warnings[0].Item)
	assert.Equal(t, "every weekday is disabled", warnings[0].Message)
	assert.Equal(t, "inverted", warnings[1].Item)
	assert.Contains(t, warnings[1].Message, "min 2024-06-30T00:00 is after max 2024-06-01T23:59")

	// Warnings are not errors.
	assert.NoError(t, cfg.Validate())
}
