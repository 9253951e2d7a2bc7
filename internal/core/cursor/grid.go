package cursor

import (
	"strconv"
	"time"

	"github.com/colonyops/datepicker/internal/core/calendar"
	"github.com/colonyops/datepicker/internal/core/textcodec"
)

// Cell is one clickable entry of a grid.
type Cell struct {
	Date       calendar.Date
	Label      string
	OtherMonth bool
	Forbidden  bool
}

// Grid returns the cells of the current zoom level.
func (c *Cursor) Grid() []Cell {
	switch c.granularity {
	case Days:
		return c.DayGrid()
	case Months:
		return c.MonthGrid()
	default:
		return c.YearGrid()
	}
}

// Columns is the grid width for the current zoom level.
func (c *Cursor) Columns() int {
	switch c.granularity {
	case Days:
		return 7
	case Months:
		return 3
	default:
		return 4
	}
}

// DayGrid returns six Sunday-first weeks covering the focused month. Days of
// the neighbouring months are flagged OtherMonth.
func (c *Cursor) DayGrid() []Cell {
	first := c.focus.FirstOfMonth()
	start := first.AddDays(-int(first.Weekday() - time.Sunday))

	cells := make([]Cell, 0, 42)
	for i := range 42 {
		d := start.AddDays(i)
		cells = append(cells, Cell{
			Date:       d,
			Label:      strconv.Itoa(d.Day),
			OtherMonth: d.Month != first.Month,
			Forbidden:  c.cons.DayForbidden(d),
		})
	}
	return cells
}

// MonthGrid returns the twelve months of the focused year.
func (c *Cursor) MonthGrid() []Cell {
	jan := c.focus.FirstOfYear()

	cells := make([]Cell, 0, 12)
	for m := range 12 {
		d := jan.AddMonths(m)
		cells = append(cells, Cell{
			Date:      d,
			Label:     textcodec.MonthShort(d.Month),
			Forbidden: c.cons.MonthForbidden(d),
		})
	}
	return cells
}

// YearGrid returns the years of the focused year-group.
func (c *Cursor) YearGrid() []Cell {
	start := YearGroupStart(c.focus.Year)

	cells := make([]Cell, 0, YearGroupSize)
	for y := start; y < start+YearGroupSize; y++ {
		d := calendar.MustDate(y, time.January, 1)
		cells = append(cells, Cell{
			Date:      d,
			Label:     strconv.Itoa(d.BuddhistYear()),
			Forbidden: c.cons.YearForbidden(d),
		})
	}
	return cells
}
