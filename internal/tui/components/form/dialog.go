package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/datepicker/internal/core/styles"
)

// capturer is an optional interface for fields that temporarily take every
// key, such as a field with an open picker.
type capturer interface {
	CapturesInput() bool
}

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of form fields.
type Dialog struct {
	fields       []Field
	names        []string // parallel slice: host field name for each field
	focusedField int
	submitted    bool
	cancelled    bool
	Title        string
}

// NewDialog creates a form dialog with the given fields and host field names.
// The first field is focused automatically.
func NewDialog(title string, fields []Field, names []string) *Dialog {
	d := &Dialog{
		fields: fields,
		names:  names,
		Title:  title,
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Update handles key input for the dialog, managing focus cycling and submit/cancel.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || d.isFocusedFieldCapturing() {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab", "enter":
		return d.advanceFocus()
	case "shift+tab":
		return d.retreatFocus()
	case "esc":
		d.cancelled = true
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// View renders all fields vertically with spacing and help text.
func (d *Dialog) View() string {
	var parts []string
	if d.Title != "" {
		parts = append(parts, styles.FormTitleStyle.Render(d.Title), "")
	}
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	help := styles.FormHelpStyle.Render("tab: next  shift+tab: prev  enter: submit  esc: cancel")
	parts = append(parts, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// FormValues returns a map of host field names to canonical values.
func (d *Dialog) FormValues() map[string]string {
	result := make(map[string]string, len(d.fields))
	for i, field := range d.fields {
		result[d.names[i]] = field.Value()
	}
	return result
}

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

// Focused returns the index of the focused field.
func (d *Dialog) Focused() int { return d.focusedField }

func (d *Dialog) advanceFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	d.fields[d.focusedField].Blur()

	next := d.focusedField + 1
	if next >= len(d.fields) {
		// Past the last field: submit, or return to the first invalid one.
		for i, field := range d.fields {
			if field.Error() != "" {
				d.focusedField = i
				return d, field.Focus()
			}
		}
		d.submitted = true
		return d, nil
	}

	d.focusedField = next
	cmd := d.fields[d.focusedField].Focus()
	return d, cmd
}

func (d *Dialog) retreatFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 || d.focusedField == 0 {
		return d, nil
	}

	d.fields[d.focusedField].Blur()
	d.focusedField--
	cmd := d.fields[d.focusedField].Focus()
	return d, cmd
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}

func (d *Dialog) isFocusedFieldCapturing() bool {
	if len(d.fields) == 0 {
		return false
	}
	if f, ok := d.fields[d.focusedField].(capturer); ok {
		return f.CapturesInput()
	}
	return false
}
