// Package picker is the terminal front end of a date/time picker dialog.
package picker

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/datepicker/internal/core/cursor"
	"github.com/colonyops/datepicker/internal/core/selection"
)

// Pane is the part of the dialog that receives movement keys.
type Pane int

const (
	PaneGrid Pane = iota
	PaneHours
	PaneMinutes
)

// ClosedMsg is emitted once when the dialog closes. Changed reports whether
// the host field was written.
type ClosedMsg struct {
	DialogID string
	Changed  bool
}

// Options configures a Model.
type Options struct {
	// QuitOnClose ends the program when the dialog closes instead of only
	// emitting a ClosedMsg. Set it when the picker is the whole program.
	QuitOnClose bool
	KeyMap      *KeyMap
}

// Model renders a selection.State and turns key presses into its actions.
type Model struct {
	state *selection.State
	keys  KeyMap
	help  help.Model
	quit  bool

	pane   Pane
	cell   int
	hour   int
	minute int

	notified bool
}

// New wraps an open dialog.
func New(state *selection.State, opts Options) *Model {
	keys := DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}

	m := &Model{
		state: state,
		keys:  keys,
		help:  help.New(),
		quit:  opts.QuitOnClose,
	}
	if !state.Mode().HasDate() {
		m.pane = PaneHours
	}
	m.syncTime()
	m.syncCell()
	return m
}

// State returns the wrapped dialog.
func (m *Model) State() *selection.State { return m.state }

// Pane returns the pane that receives movement keys.
func (m *Model) Pane() Pane { return m.pane }

// Highlighted returns the grid cell under the keyboard cursor.
func (m *Model) Highlighted() (cursor.Cell, bool) {
	grid := m.state.Cursor().Grid()
	if m.cell < 0 || m.cell >= len(grid) {
		return cursor.Cell{}, false
	}
	return grid[m.cell], true
}

// HighlightedTime returns the hour and minute under the keyboard cursor.
func (m *Model) HighlightedTime() (int, int) { return m.hour, m.minute }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state.Closed() {
		return m, m.closeCmd()
	}
	if m.state.Resync() {
		m.syncTime()
		m.syncCell()
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Exit):
		m.state.Exit()
	case key.Matches(keyMsg, m.keys.Clear):
		m.state.Clear()
	case key.Matches(keyMsg, m.keys.Today):
		m.state.Today()
		m.syncCell()
	case key.Matches(keyMsg, m.keys.Now):
		m.state.Now()
		m.syncTime()
	case key.Matches(keyMsg, m.keys.Switch):
		m.switchPane()
	case key.Matches(keyMsg, m.keys.Prev):
		m.step(-1)
	case key.Matches(keyMsg, m.keys.Next):
		m.step(1)
	case key.Matches(keyMsg, m.keys.ZoomOut):
		if m.state.Mode().HasDate() && m.state.Cursor().ZoomOut() {
			m.syncCell()
		}
	case key.Matches(keyMsg, m.keys.Click):
		m.click()
	case key.Matches(keyMsg, m.keys.Up):
		m.move(0, -1)
	case key.Matches(keyMsg, m.keys.Down):
		m.move(0, 1)
	case key.Matches(keyMsg, m.keys.Left):
		m.move(-1, 0)
	case key.Matches(keyMsg, m.keys.Right):
		m.move(1, 0)
	}

	if m.state.Closed() {
		return m, m.closeCmd()
	}
	return m, nil
}

func (m *Model) closeCmd() tea.Cmd {
	if m.notified {
		return nil
	}
	m.notified = true

	closed := ClosedMsg{DialogID: m.state.ID(), Changed: m.state.Changed()}
	emit := func() tea.Msg { return closed }
	if m.quit {
		return tea.Sequence(emit, tea.Quit)
	}
	return emit
}

func (m *Model) step(delta int) {
	c := m.state.Cursor()
	if !m.state.Mode().HasDate() {
		return
	}
	if (delta < 0 && !c.ShowPrevious()) || (delta > 0 && !c.ShowNext()) {
		return
	}
	c.Step(delta)
	m.syncCell()
}

func (m *Model) switchPane() {
	mode := m.state.Mode()
	switch {
	case m.pane == PaneGrid && mode.HasTime():
		m.pane = PaneHours
	case m.pane == PaneHours:
		m.pane = PaneMinutes
	case m.pane == PaneMinutes && mode.HasDate():
		m.pane = PaneGrid
	case m.pane == PaneMinutes:
		m.pane = PaneHours
	}
}

func (m *Model) move(dx, dy int) {
	switch m.pane {
	case PaneGrid:
		cols := m.state.Cursor().Columns()
		next := m.cell + dx + dy*cols
		if next >= 0 && next < len(m.state.Cursor().Grid()) {
			m.cell = next
		}
	case PaneHours:
		if dx > 0 {
			m.pane = PaneMinutes
			return
		}
		if dx < 0 && m.state.Mode().HasDate() {
			m.pane = PaneGrid
			return
		}
		m.hour = wrap(m.hour+dy, 24)
	case PaneMinutes:
		if dx < 0 {
			m.pane = PaneHours
			return
		}
		m.minute = wrap(m.minute+dy, 60)
	}
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}

func (m *Model) click() {
	switch m.pane {
	case PaneGrid:
		cell, ok := m.Highlighted()
		if !ok || cell.Forbidden {
			return
		}
		before := m.state.Cursor().Granularity()
		if !m.state.ClickCell(cell) {
			return
		}
		if m.state.Cursor().Granularity() != before {
			m.syncCell()
		} else if !m.state.Closed() && m.state.Mode().HasTime() {
			m.pane = PaneHours
		}
	case PaneHours:
		if m.state.ClickHour(m.hour) {
			m.pane = PaneMinutes
		}
	case PaneMinutes:
		m.state.ClickMinute(m.minute)
	}
}

// syncCell puts the keyboard cursor on the focused date in the current
// grid, or on the first selectable cell of the visible unit.
func (m *Model) syncCell() {
	c := m.state.Cursor()
	grid := c.Grid()
	focus := c.Focus().Date

	m.cell = 0
	for i, cell := range grid {
		if sameUnit(c.Granularity(), cell.Date, focus) && !cell.OtherMonth {
			m.cell = i
			if !cell.Forbidden {
				return
			}
			break
		}
	}
	for i, cell := range grid {
		if !cell.Forbidden && !cell.OtherMonth {
			m.cell = i
			return
		}
	}
}

func (m *Model) syncTime() {
	f := m.state.Cursor().Focus()
	m.hour, m.minute = f.Hour, f.Minute
	if h, ok := m.state.Hour(); ok {
		m.hour = h
	}
	if mm, ok := m.state.Minute(); ok {
		m.minute = mm
	}
}
