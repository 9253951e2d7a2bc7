package form

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/datepicker/internal/core/calendar"
	"github.com/colonyops/datepicker/internal/core/selection"
	"github.com/colonyops/datepicker/internal/core/styles"
	"github.com/colonyops/datepicker/internal/core/textcodec"
	"github.com/colonyops/datepicker/internal/tui/picker"
)

var pickerKey = key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "picker"))

// DateTimeFieldOptions configures a DateTimeField.
type DateTimeFieldOptions struct {
	Label      string
	Mode       selection.Mode
	Config     selection.PickerConfig
	Value      string // canonical text
	Validation FieldValidation

	// Paired is a sibling field whose value feeds the picker and the typed
	// text check. Another DateTimeField can be passed directly.
	Paired   selection.HostField
	Clock    calendar.Clock
	Observer selection.Observer

	// Registry is shared by the fields of one form so that at most one
	// picker is open at a time.
	Registry *selection.Registry
}

// DateTimeField is a text input holding pattern text ("24/08/2521 05:25")
// that normalizes to canonical text on blur and can open a picker dialog.
type DateTimeField struct {
	input      textinput.Model
	label      string
	mode       selection.Mode
	cfg        selection.PickerConfig
	validation FieldValidation
	paired     selection.HostField
	clock      calendar.Clock
	codec      *textcodec.Codec
	observer   selection.Observer
	registry   *selection.Registry

	value   string
	err     string
	focused bool
	picker  *picker.Model
}

// NewDateTimeField creates a field seeded with opts.Value.
func NewDateTimeField(opts DateTimeFieldOptions) *DateTimeField {
	if opts.Clock == nil {
		opts.Clock = calendar.SystemClock{}
	}
	if opts.Registry == nil {
		opts.Registry = &selection.Registry{}
	}

	ti := textinput.New()
	ti.Placeholder = placeholder(opts.Mode)
	ti.Prompt = ""
	ti.SetWidth(24)

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorAccent
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorDim)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorDim)
	ti.SetStyles(inputStyles)

	f := &DateTimeField{
		input:      ti,
		label:      opts.Label,
		mode:       opts.Mode,
		cfg:        opts.Config,
		validation: opts.Validation,
		paired:     opts.Paired,
		clock:      opts.Clock,
		codec:      textcodec.New(opts.Clock),
		observer:   opts.Observer,
		registry:   opts.Registry,
	}
	f.Set(opts.Value)
	return f
}

func placeholder(mode selection.Mode) string {
	switch mode {
	case selection.TimeOnly:
		return "HH:MM"
	case selection.DateTime:
		return "DD/MM/YYYY HH:MM"
	default:
		return "DD/MM/YYYY"
	}
}

// Get returns the canonical value. Together with Set it lets the field act
// as the host of its own picker dialog.
func (f *DateTimeField) Get() string { return f.value }

// Set replaces the canonical value and shows it as pattern text.
func (f *DateTimeField) Set(v string) {
	f.value = v
	f.err = ""
	f.input.SetValue(patternOf(v))
}

// patternOf renders canonical text of any kind. A transform may turn a
// datetime into a date, so the kind is taken from the text itself.
func patternOf(v string) string {
	for _, kind := range []textcodec.Kind{textcodec.KindDateTime, textcodec.KindDate, textcodec.KindTime} {
		if p := textcodec.ISOToPattern(kind, v); p != "" {
			return p
		}
	}
	return ""
}

// SetPaired links a sibling field after construction, for two fields that
// are paired with each other.
func (f *DateTimeField) SetPaired(h selection.HostField) { f.paired = h }

func (f *DateTimeField) pairedValue() string {
	if f.paired == nil {
		return ""
	}
	return f.paired.Get()
}

// commitText normalizes the typed text into the field value. Text that
// still shows the current value is left alone.
func (f *DateTimeField) commitText() {
	text := strings.TrimSpace(f.input.Value())
	if f.value != "" && text == patternOf(f.value) {
		f.err = ""
		return
	}

	value := ""
	if text != "" {
		value = selection.NormalizeInput(f.codec, f.mode, text, f.cfg, f.pairedValue())
	}

	f.value = value
	f.err = f.validation.Validate(text, value)
	if value != "" {
		f.input.SetValue(patternOf(value))
	}
}

// PickerOpen reports whether the field's picker dialog is showing.
func (f *DateTimeField) PickerOpen() bool { return f.picker != nil }

// CapturesInput reports whether every key should go to the field.
func (f *DateTimeField) CapturesInput() bool { return f.PickerOpen() }

func (f *DateTimeField) togglePicker() {
	f.commitText()
	state := f.registry.Toggle(func() *selection.State {
		return selection.New(selection.Options{
			Mode:     f.mode,
			Config:   f.cfg,
			Host:     f,
			Paired:   f.paired,
			Clock:    f.clock,
			Observer: f.observer,
		})
	})
	if state == nil {
		f.picker = nil
		return
	}
	f.picker = picker.New(state, picker.Options{})
}

func (f *DateTimeField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(keyMsg, pickerKey) {
		f.togglePicker()
		return f, nil
	}

	if f.picker != nil {
		f.picker.Update(msg)
		if f.picker.State().Closed() {
			f.picker = nil
			f.err = f.validation.Validate(f.value, f.value)
		}
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *DateTimeField) View() string {
	titleStyle := styles.FormTitleBlurredStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}
	title := titleStyle.Render(f.label)

	parts := []string{title, f.input.View()}
	switch {
	case f.err != "":
		parts = append(parts, styles.FormErrorStyle.Render(f.err))
	case f.value != "":
		parts = append(parts, styles.MutedStyle.Render(thaiOf(f.value)))
	}
	if f.picker != nil {
		parts = append(parts, f.picker.Render())
	} else if f.focused {
		parts = append(parts, styles.FormHelpStyle.Render(pickerKey.Help().Key+": "+pickerKey.Help().Desc))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	borderStyle := styles.FormFieldStyle
	if f.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}
	return borderStyle.Render(content)
}

func thaiOf(v string) string {
	for _, kind := range []textcodec.Kind{textcodec.KindDateTime, textcodec.KindDate, textcodec.KindTime} {
		if s := textcodec.ISOToThai(kind, v); s != "" {
			return s
		}
	}
	return ""
}

func (f *DateTimeField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

// Blur normalizes the typed text. An open picker is discarded.
func (f *DateTimeField) Blur() {
	if f.picker != nil {
		f.registry.Close()
		f.picker = nil
	}
	f.focused = false
	f.input.Blur()
	f.commitText()
}

func (f *DateTimeField) Focused() bool { return f.focused }
func (f *DateTimeField) Value() string { return f.value }
func (f *DateTimeField) Label() string { return f.label }
func (f *DateTimeField) Error() string { return f.err }

// Mode is the kind of value the field holds.
func (f *DateTimeField) Mode() selection.Mode { return f.mode }
