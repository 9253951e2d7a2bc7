package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/datepicker/internal/core/calendar"
	"github.com/colonyops/datepicker/internal/core/cursor"
	"github.com/colonyops/datepicker/internal/core/selection"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dataDir := t.TempDir()
	cfg, err := Load(filepath.Join(dataDir, "nope.yaml"), dataDir)
	require.NoError(t, err)

	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.Equal(t, 5000, cfg.Database.BusyTimeout)
	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, []string{DefaultPicker}, cfg.PickerNames())
	assert.Equal(t, filepath.Join(dataDir, "datepicker.db"), cfg.DBPath())
}

func TestLoad_Pickers(t *testing.T) {
	path := writeConfig(t, `
theme: gruvbox
pickers:
  appointment:
    mode: datetime
    min: "2024-01-01T08:00"
    max: "2024-12-31"
    disabled_weekdays: [sun, Saturday]
    disabled_month_days: [1, 15]
    transform: end-of-day
  month:
    mode: date
    selection: months
    initial_view: years
    initial: "2024-03-01"
`)

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, []string{"appointment", DefaultPicker, "month"}, cfg.PickerNames())

	mode, pc, err := cfg.Picker("appointment")
	require.NoError(t, err)
	assert.Equal(t, selection.DateTime, mode)
	require.NotNil(t, pc.Constraints.Min)
	require.NotNil(t, pc.Constraints.Max)
	assert.Equal(t, "2024-01-01T08:00", pc.Constraints.Min.String())
	assert.Equal(t, "2024-12-31T23:59", pc.Constraints.Max.String(), "a date-only max covers the whole day")
	assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, pc.Constraints.DisabledWeekdays)
	assert.Equal(t, []int{1, 15}, pc.Constraints.DisabledMonthDays)
	require.NotNil(t, pc.Transform)
	assert.Equal(t, "2024-06-20T23:59", pc.Transform("2024-06-20T10:00"))

	mode, pc, err = cfg.Picker("month")
	require.NoError(t, err)
	assert.Equal(t, selection.DateOnly, mode)
	assert.Equal(t, cursor.Months, pc.Selection)
	assert.Equal(t, cursor.Years, pc.InitialView)
	require.NotNil(t, pc.Initial)
	assert.Equal(t, calendar.MustDate(2024, time.March, 1), pc.Initial.Date)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "bad yaml", body: "pickers: [", wantErr: "parse config file"},
		{name: "unknown theme", body: "theme: neon", wantErr: `unknown theme "neon"`},
		{name: "bad mode", body: "pickers:\n  x:\n    mode: week", wantErr: `picker "x": mode`},
		{name: "bad min", body: "pickers:\n  x:\n    min: tomorrow", wantErr: `picker "x": min`},
		{name: "bad weekday", body: "pickers:\n  x:\n    disabled_weekdays: [funday]", wantErr: "disabled_weekdays"},
		{name: "bad month day", body: "pickers:\n  x:\n    disabled_month_days: [32]", wantErr: "outside 1..31"},
		{name: "bad initial for mode", body: "pickers:\n  x:\n    mode: time\n    initial: 2024-01-01", wantErr: "initial"},
		{name: "bad transform", body: "pickers:\n  x:\n    transform: shout", wantErr: "transform"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), t.TempDir())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_EmptyDataDir(t *testing.T) {
	_, err := Load("", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data directory cannot be empty")
}

func TestPicker(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()

	mode, pc, err := cfg.Picker("")
	require.NoError(t, err)
	assert.Equal(t, selection.DateTime, mode)
	assert.True(t, pc.Constraints.Unbounded())
	assert.Nil(t, pc.Initial)
	assert.Nil(t, pc.Transform)

	_, _, err = cfg.Picker("missing")
	assert.ErrorContains(t, err, `picker "missing" is not configured`)
}

func TestPickerSpec_Initial(t *testing.T) {
	tests := []struct {
		name string
		spec PickerSpec
		want calendar.Instant
	}{
		{
			name: "datetime",
			spec: PickerSpec{Mode: "datetime", Initial: "2024-06-20T14:55"},
			want: calendar.At(calendar.MustDate(2024, time.June, 20), calendar.TimeOfDay{Hour: 14, Minute: 55}),
		},
		{
			name: "date",
			spec: PickerSpec{Mode: "date", Initial: "2024-06-20"},
			want: calendar.At(calendar.MustDate(2024, time.June, 20), calendar.Midnight),
		},
		{
			name: "time",
			spec: PickerSpec{Mode: "time", Initial: "07:05"},
			want: calendar.Instant{TimeOfDay: calendar.TimeOfDay{Hour: 7, Minute: 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, pc, err := tt.spec.Build()
			require.NoError(t, err)
			require.NotNil(t, pc.Initial)
			assert.Equal(t, tt.want, *pc.Initial)
		})
	}
}
