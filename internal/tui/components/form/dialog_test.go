package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/datepicker/internal/core/selection"
	"github.com/colonyops/datepicker/pkg/tuitest"
)

func dateField(label, value string) *DateTimeField {
	return newField(DateTimeFieldOptions{Label: label, Mode: selection.DateOnly, Value: value})
}

func TestDialog(t *testing.T) {
	t.Run("creation focuses first field", func(t *testing.T) {
		f1 := dateField("Start", "")
		f2 := dateField("End", "")
		d := NewDialog("Test", []Field{f1, f2}, []string{"start", "end"})

		assert.True(t, f1.Focused())
		assert.False(t, f2.Focused())
		assert.False(t, d.Submitted())
		assert.False(t, d.Cancelled())
	})

	t.Run("empty dialog", func(t *testing.T) {
		d := NewDialog("Empty", []Field{}, []string{})
		assert.False(t, d.Submitted())
		assert.False(t, d.Cancelled())
		assert.Empty(t, d.FormValues())
	})

	t.Run("tab advances focus", func(t *testing.T) {
		f1 := dateField("A", "")
		f2 := dateField("B", "")
		f3 := dateField("C", "")
		d := NewDialog("Test", []Field{f1, f2, f3}, []string{"a", "b", "c"})

		// Tab: A -> B
		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}))
		assert.False(t, f1.Focused())
		assert.True(t, f2.Focused())
		assert.Equal(t, 1, d.Focused())

		// Tab: B -> C
		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}))
		assert.False(t, f2.Focused())
		assert.True(t, f3.Focused())
	})

	t.Run("tab past last field submits", func(t *testing.T) {
		f1 := dateField("A", "")
		d := NewDialog("Test", []Field{f1}, []string{"a"})

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}))
		assert.True(t, d.Submitted())
	})

	t.Run("submit returns to the first invalid field", func(t *testing.T) {
		f1 := dateField("A", "")
		f2 := dateField("B", "")
		d := NewDialog("Test", []Field{f1, f2}, []string{"a", "b"})

		f1.input.SetValue("not a date")
		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
		require.True(t, f2.Focused())
		assert.NotEmpty(t, f1.Error())

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
		assert.False(t, d.Submitted())
		assert.True(t, f1.Focused())
		assert.Equal(t, 0, d.Focused())
	})

	t.Run("shift+tab retreats focus", func(t *testing.T) {
		f1 := dateField("A", "")
		f2 := dateField("B", "")
		d := NewDialog("Test", []Field{f1, f2}, []string{"a", "b"})

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}))
		assert.True(t, f2.Focused())

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift}))
		assert.True(t, f1.Focused())
		assert.False(t, f2.Focused())
	})

	t.Run("shift+tab on first field stays", func(t *testing.T) {
		f1 := dateField("A", "")
		d := NewDialog("Test", []Field{f1}, []string{"a"})

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift}))
		assert.True(t, f1.Focused())
		assert.False(t, d.Submitted())
	})

	t.Run("open picker captures enter and esc", func(t *testing.T) {
		f1 := dateField("A", "")
		f2 := dateField("B", "")
		d := NewDialog("Test", []Field{f1, f2}, []string{"a", "b"})

		d.Update(tuitest.Ctrl('p'))
		require.True(t, f1.PickerOpen())

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
		assert.False(t, d.Cancelled(), "esc closes the picker, not the form")
		assert.True(t, f1.Focused())

		d.Update(tuitest.Ctrl('p'))
		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
		assert.True(t, f1.Focused(), "enter clicks the picker cell")
		assert.Equal(t, "2024-06-15", f1.Value())
	})

	t.Run("escape cancels", func(t *testing.T) {
		f1 := dateField("A", "")
		d := NewDialog("Test", []Field{f1}, []string{"a"})

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
		assert.True(t, d.Cancelled())
		assert.False(t, d.Submitted())
	})

	t.Run("FormValues extracts canonical values", func(t *testing.T) {
		f1 := dateField("Start", "2024-02-01")
		f2 := newField(DateTimeFieldOptions{Label: "At", Mode: selection.TimeOnly, Value: "09:30"})
		d := NewDialog("Test", []Field{f1, f2}, []string{"start", "at"})

		vals := d.FormValues()
		assert.Equal(t, "2024-02-01", vals["start"])
		assert.Equal(t, "09:30", vals["at"])
	})

	t.Run("view renders labels and help", func(t *testing.T) {
		f1 := dateField("Start", "2024-02-01")
		f2 := dateField("End", "")
		d := NewDialog("Test Form", []Field{f1, f2}, []string{"start", "end"})

		view := d.View()
		assert.Contains(t, view, "Test Form")
		assert.Contains(t, view, "Start")
		assert.Contains(t, view, "End")
		assert.Contains(t, view, "1 ก.พ.2567")
		assert.Contains(t, view, "tab")
	})

	t.Run("view with empty dialog", func(t *testing.T) {
		d := NewDialog("Empty", []Field{}, []string{})
		view := d.View()
		assert.Contains(t, view, "tab")
	})
}
