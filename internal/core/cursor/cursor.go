// Package cursor tracks which month, year or year-group a picker dialog shows
// and how it moves between them.
package cursor

import (
	"fmt"
	"strings"

	"github.com/colonyops/datepicker/internal/core/calendar"
	"github.com/colonyops/datepicker/internal/core/constraints"
	"github.com/colonyops/datepicker/internal/core/textcodec"
)

// Granularity is the zoom level of the dialog grid.
type Granularity int

const (
	Days Granularity = iota
	Months
	Years
)

func (g Granularity) String() string {
	switch g {
	case Days:
		return "days"
	case Months:
		return "months"
	case Years:
		return "years"
	default:
		return fmt.Sprintf("Granularity(%d)", int(g))
	}
}

// ParseGranularity reads "days", "months" or "years". The empty string is
// Days.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "days", "day":
		return Days, nil
	case "months", "month":
		return Months, nil
	case "years", "year":
		return Years, nil
	default:
		return Days, fmt.Errorf("unknown granularity %q", s)
	}
}

// YearGroupSize is the number of years shown in the Years grid.
const YearGroupSize = 16

// YearGroupStart returns the first year of the group containing year.
func YearGroupStart(year int) int {
	m := year % YearGroupSize
	if m < 0 {
		m += YearGroupSize
	}
	return year - m
}

// YearGroupEnd returns the last year of the group containing year.
func YearGroupEnd(year int) int { return YearGroupStart(year) + YearGroupSize - 1 }

// searchDays bounds the scan for an initial selectable day.
const searchDays = 10 * 366

// Options configures a new Cursor.
type Options struct {
	Constraints constraints.DateConstraints
	View        Granularity
	Selection   Granularity
	Value       *calendar.Instant
}

// Cursor is the navigation state of one dialog.
type Cursor struct {
	cons        constraints.DateConstraints
	granularity Granularity
	focus       calendar.Instant
}

// New places the cursor at opts.Value when it is present and selectable.
// Otherwise it picks the first selectable day at or after now, then the first
// selectable day at or after the lower bound, and finally now itself.
func New(opts Options, now calendar.Instant) *Cursor {
	focus := initialFocus(opts, now)

	switch opts.Selection {
	case Months:
		focus.Date = focus.FirstOfMonth()
	case Years:
		focus.Date = focus.FirstOfYear()
	}

	return &Cursor{
		cons:        opts.Constraints,
		granularity: opts.View,
		focus:       focus,
	}
}

func initialFocus(opts Options, now calendar.Instant) calendar.Instant {
	cons := opts.Constraints

	if v := opts.Value; v != nil && v.Valid() && !cons.DayForbidden(v.Date) {
		return *v
	}
	if d, ok := cons.FirstAllowedDay(now.Date, searchDays); ok {
		return calendar.At(d, now.TimeOfDay)
	}
	if cons.Min != nil {
		if d, ok := cons.FirstAllowedDay(cons.Min.Date, searchDays); ok {
			return calendar.At(d, now.TimeOfDay)
		}
	}
	return now
}

// Granularity returns the current zoom level.
func (c *Cursor) Granularity() Granularity { return c.granularity }

// Focus returns the instant whose month, year or year-group is on screen.
func (c *Cursor) Focus() calendar.Instant { return c.focus }

// SetFocus moves the cursor without changing the zoom level.
func (c *Cursor) SetFocus(i calendar.Instant) { c.focus = i }

// Constraints returns the constraints the cursor was created with.
func (c *Cursor) Constraints() constraints.DateConstraints { return c.cons }

// ZoomOut moves Days to Months and Months to Years. It reports false at
// Years.
func (c *Cursor) ZoomOut() bool {
	switch c.granularity {
	case Days:
		c.granularity = Months
	case Months:
		c.granularity = Years
	default:
		return false
	}
	return true
}

// ZoomIn focuses the year or month of d one level finer. It reports false
// at Days.
func (c *Cursor) ZoomIn(d calendar.Date) bool {
	f := c.focus.Date
	switch c.granularity {
	case Years:
		c.focus.Date = f.AddYears(d.Year - f.Year)
		c.granularity = Months
	case Months:
		c.focus.Date = f.AddMonths((d.Year-f.Year)*12 + int(d.Month) - int(f.Month))
		c.granularity = Days
	default:
		return false
	}
	return true
}

// Step moves by delta months, years or year-groups depending on the zoom
// level.
func (c *Cursor) Step(delta int) {
	switch c.granularity {
	case Days:
		c.focus.Date = c.focus.AddMonths(delta)
	case Months:
		c.focus.Date = c.focus.AddYears(delta)
	case Years:
		c.focus.Date = c.focus.AddYears(delta * YearGroupSize)
	}
}

// ShowPrevious reports whether the unit before the current one has any day
// on or after the lower bound.
func (c *Cursor) ShowPrevious() bool {
	f := c.focus.Date
	var last calendar.Date
	switch c.granularity {
	case Days:
		last = f.FirstOfMonth().AddDays(-1)
	case Months:
		last = calendar.MustDate(f.Year-1, 12, 31)
	default:
		last = calendar.MustDate(YearGroupStart(f.Year)-1, 12, 31)
	}
	return !c.cons.BeforeMin(last)
}

// ShowNext reports whether the unit after the current one has any day on or
// before the upper bound.
func (c *Cursor) ShowNext() bool {
	f := c.focus.Date
	var first calendar.Date
	switch c.granularity {
	case Days:
		first = f.LastOfMonth().AddDays(1)
	case Months:
		first = calendar.MustDate(f.Year+1, 1, 1)
	default:
		first = calendar.MustDate(YearGroupEnd(f.Year)+1, 1, 1)
	}
	return !c.cons.AfterMax(first)
}

// Title is the dialog heading: "มกราคม 2567", "2567" or "2560 - 2575".
func (c *Cursor) Title() string {
	f := c.focus.Date
	switch c.granularity {
	case Days:
		return fmt.Sprintf("%s %d", textcodec.MonthFull(f.Month), f.BuddhistYear())
	case Months:
		return fmt.Sprint(f.BuddhistYear())
	default:
		start := YearGroupStart(f.Year)
		return fmt.Sprintf("%d - %d", start+calendar.BuddhistOffset, start+YearGroupSize-1+calendar.BuddhistOffset)
	}
}
