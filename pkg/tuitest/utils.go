// Package tuitest drives bubbletea models from tests: key messages, a
// message driver, and plain-text views.
package tuitest

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes and trailing whitespace so views can
// be compared as plain text.
func StripANSI(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// Key creates a key press for a rune or a special key code such as
// tea.KeyPgUp.
func Key(code rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

// Ctrl creates a key press for code with the control modifier, e.g. the
// ctrl+p picker toggle.
func Ctrl(code rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: code, Mod: tea.ModCtrl})
}

func Enter() tea.Msg { return Key(tea.KeyEnter) }
func Esc() tea.Msg   { return Key(tea.KeyEscape) }
func Tab() tea.Msg   { return Key(tea.KeyTab) }
func Up() tea.Msg    { return Key(tea.KeyUp) }
func Down() tea.Msg  { return Key(tea.KeyDown) }
func Left() tea.Msg  { return Key(tea.KeyLeft) }
func Right() tea.Msg { return Key(tea.KeyRight) }

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

// Press sends msgs to m in order, following the model each Update returns,
// and returns the command produced by the last message. Commands are not
// run.
func Press(m tea.Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return cmd
}

// Script returns a program runner that presses msgs instead of reading a
// terminal. Commands that open a program take it in place of tea.Program.
func Script(msgs ...tea.Msg) func(tea.Model) error {
	return func(m tea.Model) error {
		Press(m, msgs...)
		return nil
	}
}
