package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/datepicker/internal/core/calendar"
	"github.com/colonyops/datepicker/internal/core/constraints"
	"github.com/colonyops/datepicker/internal/core/selection"
	"github.com/colonyops/datepicker/pkg/tuitest"
)

var fieldNow = calendar.FixedClock(calendar.At(calendar.MustDate(2024, 6, 15), calendar.TimeOfDay{Hour: 10, Minute: 30}))

func newField(opts DateTimeFieldOptions) *DateTimeField {
	if opts.Clock == nil {
		opts.Clock = fieldNow
	}
	if opts.Label == "" {
		opts.Label = "Due"
	}
	return NewDateTimeField(opts)
}

func TestDateTimeField(t *testing.T) {
	t.Run("creation shows pattern text", func(t *testing.T) {
		f := newField(DateTimeFieldOptions{Mode: selection.DateOnly, Value: "2024-02-01"})
		assert.Equal(t, "Due", f.Label())
		assert.Equal(t, "2024-02-01", f.Value())
		assert.Equal(t, "01/02/2567", f.input.Value())
		assert.False(t, f.Focused())
		assert.Empty(t, f.Error())
	})

	t.Run("focus returns a cmd", func(t *testing.T) {
		f := newField(DateTimeFieldOptions{Mode: selection.DateOnly})
		assert.NotNil(t, f.Focus())
		assert.True(t, f.Focused())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := newField(DateTimeFieldOptions{Mode: selection.DateOnly})
		f.Update(tuitest.Ctrl('p'))
		assert.False(t, f.PickerOpen())
	})
}

func TestDateTimeField_BlurNormalizes(t *testing.T) {
	hi := calendar.At(calendar.MustDate(2024, 1, 31), calendar.TimeOfDay{Hour: 23, Minute: 59})
	bounded := selection.PickerConfig{Constraints: constraints.DateConstraints{Max: &hi}}

	tests := []struct {
		name      string
		mode      selection.Mode
		cfg       selection.PickerConfig
		required  bool
		text      string
		wantValue string
		wantInput string
		wantErr   string
	}{
		{"date with separators", selection.DateOnly, selection.PickerConfig{}, false, "1/2/2567", "2024-02-01", "01/02/2567", ""},
		{"date digit run", selection.DateOnly, selection.PickerConfig{}, false, "01022567", "2024-02-01", "01/02/2567", ""},
		{"time shorthand", selection.TimeOnly, selection.PickerConfig{}, false, "935", "09:35", "09:35", ""},
		{"datetime", selection.DateTime, selection.PickerConfig{}, false, "1/2/2567 0930", "2024-02-01T09:30", "01/02/2567 09:30", ""},
		{"garbage", selection.DateOnly, selection.PickerConfig{}, false, "abc", "", "abc", "not a valid or allowed value"},
		{"forbidden", selection.DateOnly, bounded, false, "1/2/2567", "", "1/2/2567", "not a valid or allowed value"},
		{"empty optional", selection.DateOnly, selection.PickerConfig{}, false, "", "", "", ""},
		{"empty required", selection.DateOnly, selection.PickerConfig{}, true, "", "", "", "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newField(DateTimeFieldOptions{
				Mode:       tt.mode,
				Config:     tt.cfg,
				Validation: FieldValidation{Required: tt.required},
			})
			f.Focus()
			f.input.SetValue(tt.text)
			f.Blur()

			assert.Equal(t, tt.wantValue, f.Value())
			assert.Equal(t, tt.wantInput, f.input.Value())
			assert.Equal(t, tt.wantErr, f.Error())
		})
	}
}

func TestDateTimeField_TransformKeepsText(t *testing.T) {
	transform, err := selection.TransformByName("date-only")
	require.NoError(t, err)

	f := newField(DateTimeFieldOptions{
		Mode:   selection.DateTime,
		Config: selection.PickerConfig{Transform: transform},
	})
	f.Focus()
	f.input.SetValue("1/2/2567 09:30")
	f.Blur()
	require.Equal(t, "2024-02-01", f.Value())
	assert.Equal(t, "01/02/2567", f.input.Value())

	f.Focus()
	f.Blur()
	assert.Equal(t, "2024-02-01", f.Value(), "unchanged text is not parsed again")
	assert.Empty(t, f.Error())
}

func TestDateTimeField_PairedDate(t *testing.T) {
	lo := calendar.At(calendar.MustDate(2024, 6, 15), calendar.TimeOfDay{Hour: 12})
	cfg := selection.PickerConfig{Constraints: constraints.DateConstraints{Min: &lo}}

	date := newField(DateTimeFieldOptions{Mode: selection.DateOnly, Value: "2024-06-15"})
	tm := newField(DateTimeFieldOptions{Mode: selection.TimeOnly, Config: cfg, Paired: date})

	tm.Focus()
	tm.input.SetValue("10:00")
	tm.Blur()
	assert.Empty(t, tm.Value(), "10:00 is before the lower bound on the paired day")

	date.Set("2024-06-16")
	tm.Focus()
	tm.input.SetValue("10:00")
	tm.Blur()
	assert.Equal(t, "10:00", tm.Value())
}

func TestDateTimeField_Picker(t *testing.T) {
	t.Run("ctrl+p opens and enter commits", func(t *testing.T) {
		f := newField(DateTimeFieldOptions{Mode: selection.DateOnly})
		f.Focus()

		f.Update(tuitest.Ctrl('p'))
		require.True(t, f.PickerOpen())
		assert.True(t, f.CapturesInput())
		assert.Contains(t, f.View(), "2567")

		f.Update(tuitest.Enter())
		assert.False(t, f.PickerOpen())
		assert.Equal(t, "2024-06-15", f.Value())
		assert.Equal(t, "15/06/2567", f.input.Value())
	})

	t.Run("picker opens on typed value", func(t *testing.T) {
		f := newField(DateTimeFieldOptions{Mode: selection.DateOnly})
		f.Focus()
		f.input.SetValue("3/3/2567")

		f.Update(tuitest.Ctrl('p'))
		require.True(t, f.PickerOpen())
		assert.Equal(t, "2024-03-03", f.Value())

		f.Update(tuitest.Enter())
		assert.Equal(t, "2024-03-03", f.Value())
	})

	t.Run("ctrl+p again closes without commit", func(t *testing.T) {
		f := newField(DateTimeFieldOptions{Mode: selection.DateOnly, Value: "2024-02-01"})
		f.Focus()

		f.Update(tuitest.Ctrl('p'))
		f.Update(tuitest.Right())
		f.Update(tuitest.Ctrl('p'))

		assert.False(t, f.PickerOpen())
		assert.Equal(t, "2024-02-01", f.Value())
	})

	t.Run("blur discards the picker", func(t *testing.T) {
		registry := &selection.Registry{}
		f := newField(DateTimeFieldOptions{Mode: selection.DateOnly, Registry: registry})
		f.Focus()
		f.Update(tuitest.Ctrl('p'))
		require.NotNil(t, registry.Current())

		f.Blur()
		assert.False(t, f.PickerOpen())
		assert.Nil(t, registry.Current())
		assert.Empty(t, f.Value())
	})

	t.Run("clear empties the value", func(t *testing.T) {
		f := newField(DateTimeFieldOptions{Mode: selection.DateOnly, Value: "2024-02-01", Validation: FieldValidation{Required: true}})
		f.Focus()
		f.Update(tuitest.Ctrl('p'))
		f.Update(tea.KeyPressMsg(tea.Key{Code: 'c', Text: "c"}))

		assert.False(t, f.PickerOpen())
		assert.Empty(t, f.Value())
		assert.Empty(t, f.input.Value())
		assert.Equal(t, "required", f.Error())
	})
}
