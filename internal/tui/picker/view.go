package picker

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/datepicker/internal/core/calendar"
	"github.com/colonyops/datepicker/internal/core/cursor"
	"github.com/colonyops/datepicker/internal/core/selection"
	"github.com/colonyops/datepicker/internal/core/styles"
	"github.com/colonyops/datepicker/internal/core/textcodec"
)

// timeWindow is how many hours or minutes are listed above and below the
// highlighted one.
const timeWindow = 3

func (m *Model) View() tea.View {
	return tea.NewView(m.Render())
}

// Render draws the dialog. A closed dialog renders as the empty string.
func (m *Model) Render() string {
	if m.state.Closed() {
		return ""
	}

	mode := m.state.Mode()
	var body []string
	if mode.HasDate() {
		body = append(body, m.renderGrid())
	}
	if mode.HasTime() {
		body = append(body, m.renderTime())
	}

	parts := []string{
		m.renderHeader(),
		lipgloss.JoinHorizontal(lipgloss.Top, spaced(body)...),
		m.renderValue(),
		m.renderFooter(),
		styles.ModalHelpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())),
	}

	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func spaced(blocks []string) []string {
	out := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			out = append(out, "   ")
		}
		out = append(out, b)
	}
	return out
}

func (m *Model) renderHeader() string {
	mode := m.state.Mode()
	if !mode.HasDate() {
		return styles.ModalTitleStyle.Render(modeTitle(mode) + "เวลา")
	}

	c := m.state.Cursor()
	prev, next := styles.IconNone, styles.IconNone
	if c.ShowPrevious() {
		prev = styles.IconPrev
	}
	if c.ShowNext() {
		next = styles.IconNext
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		styles.NavStyle.Render(prev),
		" ",
		styles.ModalTitleStyle.Render(modeTitle(mode)+c.Title()),
		" ",
		styles.NavStyle.Render(next),
	)
}

func cellWidth(g cursor.Granularity) int {
	switch g {
	case cursor.Days:
		return 3
	case cursor.Months:
		return 6
	default:
		return 5
	}
}

func (m *Model) renderGrid() string {
	c := m.state.Cursor()
	grid := c.Grid()
	cols := c.Columns()
	width := cellWidth(c.Granularity())

	var rows []string
	if c.Granularity() == cursor.Days {
		var header []string
		for d := time.Sunday; d <= time.Saturday; d++ {
			header = append(header, styles.WeekdayStyle.Width(width).Align(lipgloss.Right).Render(textcodec.WeekdayShort(d)))
		}
		rows = append(rows, strings.Join(header, ""))
	}

	today := m.state.Clock().Now().Date
	chosen, hasChosen := m.state.Date()

	for start := 0; start < len(grid); start += cols {
		var row []string
		for i := start; i < start+cols && i < len(grid); i++ {
			cell := grid[i]
			style := styles.CellStyle
			switch {
			case m.pane == PaneGrid && i == m.cell:
				style = styles.CellCursorStyle
			case hasChosen && !cell.OtherMonth && sameUnit(c.Granularity(), cell.Date, chosen):
				style = styles.CellChosenStyle
			case cell.Forbidden:
				style = styles.CellBlockedStyle
			case cell.OtherMonth:
				style = styles.CellOtherStyle
			case sameUnit(c.Granularity(), cell.Date, today):
				style = styles.CellTodayStyle
			}
			row = append(row, style.Width(width).Render(cell.Label))
		}
		rows = append(rows, strings.Join(row, ""))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// sameUnit compares a and b at the precision of the grid.
func sameUnit(g cursor.Granularity, a, b calendar.Date) bool {
	switch g {
	case cursor.Days:
		return a == b
	case cursor.Months:
		return a.Year == b.Year && a.Month == b.Month
	default:
		return a.Year == b.Year
	}
}

func (m *Model) renderTime() string {
	selHour, hasHour := m.state.Hour()
	selMinute, hasMinute := m.state.Minute()

	hours := m.renderColumn("ชม.", m.hour, 24, m.pane == PaneHours, hasHour, selHour, m.state.HourSelectable)
	minutes := m.renderColumn("นาที", m.minute, 60, m.pane == PaneMinutes, hasMinute, selMinute, m.state.MinuteSelectable)
	return lipgloss.JoinHorizontal(lipgloss.Top, hours, " ", minutes)
}

func (m *Model) renderColumn(title string, at, n int, active, hasSel bool, sel int, selectable func(int) bool) string {
	rows := []string{styles.ColumnTitleStyle.Width(4).Render(title)}
	for off := -timeWindow; off <= timeWindow; off++ {
		v := wrap(at+off, n)
		style := styles.CellStyle
		switch {
		case active && off == 0:
			style = styles.CellCursorStyle
		case hasSel && v == sel:
			style = styles.CellChosenStyle
		case !selectable(v):
			style = styles.CellBlockedStyle
		case off != 0:
			style = styles.CellOtherStyle
		}
		rows = append(rows, style.Width(4).Render(fmt.Sprintf("%02d", v)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderValue shows the working value in Thai display form.
func (m *Model) renderValue() string {
	s := m.state
	var parts []string
	if d, ok := s.Date(); ok {
		parts = append(parts, textcodec.ThaiDate(d))
	}
	if h, ok := s.Hour(); ok {
		mm, hasMinute := s.Minute()
		if hasMinute {
			parts = append(parts, textcodec.ThaiTime(calendar.TimeOfDay{Hour: h, Minute: mm}))
		} else {
			parts = append(parts, fmt.Sprintf("%02d:-- น.", h))
		}
	} else if mm, ok := s.Minute(); ok {
		parts = append(parts, fmt.Sprintf("--:%02d น.", mm))
	}

	if len(parts) == 0 {
		return styles.MutedStyle.Render("-")
	}
	return styles.FormTitleStyle.Render(strings.Join(parts, " "))
}

func (m *Model) renderFooter() string {
	buttons := []string{styles.ButtonStyle.Render("c ล้าง")}
	mode := m.state.Mode()
	if mode.HasDate() {
		buttons = append(buttons, styles.ButtonStyle.Render(". วันนี้"))
	}
	if mode.HasTime() {
		buttons = append(buttons, styles.ButtonStyle.Render("n ตอนนี้"))
	}
	if _, ok := m.state.Pending(); ok {
		buttons = append(buttons, styles.ButtonSelectedStyle.Render("esc ตกลง"))
	}
	return lipgloss.NewStyle().MarginTop(1).Render(strings.Join(buttons, " "))
}

// modeTitle prefixes the dialog title with an icon for its kind.
func modeTitle(mode selection.Mode) string {
	switch mode {
	case selection.TimeOnly:
		return styles.IconClock + " "
	default:
		return styles.IconCalendar + " "
	}
}
