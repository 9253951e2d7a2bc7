package picker

import "charm.land/bubbles/v2/key"

// KeyMap holds the picker key bindings.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Click   key.Binding
	Prev    key.Binding
	Next    key.Binding
	ZoomOut key.Binding
	Switch  key.Binding
	Clear   key.Binding
	Today   key.Binding
	Now     key.Binding
	Exit    key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Click:   key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "select")),
		Prev:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev")),
		Next:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next")),
		ZoomOut: key.NewBinding(key.WithKeys("t", "backspace"), key.WithHelp("t", "zoom out")),
		Switch:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "date/time")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Today:   key.NewBinding(key.WithKeys("."), key.WithHelp(".", "today")),
		Now:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "now")),
		Exit:    key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp lists the bindings shown under the dialog.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.Prev, k.Next, k.ZoomOut, k.Switch, k.Exit}
}
