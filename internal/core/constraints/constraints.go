// Package constraints decides which calendar cells a picker may select.
//
// All predicates are pure. Month and year predicates are derived from the day
// predicate: a month is forbidden only when every one of its days is, so a
// month with a single selectable day stays clickable.
package constraints

import (
	"slices"
	"time"

	"github.com/colonyops/datepicker/internal/core/calendar"
)

// DateConstraints bounds the values a picker accepts. The zero value permits
// everything. When both bounds are set, Min must not be after Max; this is not
// checked here.
type DateConstraints struct {
	Min               *calendar.Instant
	Max               *calendar.Instant
	DisabledWeekdays  []time.Weekday
	DisabledMonthDays []int
}

// Unbounded reports whether no constraint is configured.
func (c DateConstraints) Unbounded() bool {
	return c.Min == nil && c.Max == nil && len(c.DisabledWeekdays) == 0 && len(c.DisabledMonthDays) == 0
}

// BeforeMin reports whether the whole day d lies before the lower bound.
func (c DateConstraints) BeforeMin(d calendar.Date) bool {
	return c.Min != nil && d.Before(c.Min.Date)
}

// AfterMax reports whether the whole day d lies after the upper bound.
func (c DateConstraints) AfterMax(d calendar.Date) bool {
	return c.Max != nil && d.After(c.Max.Date)
}

// DayForbidden reports whether d falls outside [Min, Max] at day resolution,
// lands on a disabled weekday, or has a disabled day-of-month number.
func (c DateConstraints) DayForbidden(d calendar.Date) bool {
	if c.BeforeMin(d) || c.AfterMax(d) {
		return true
	}
	if slices.Contains(c.DisabledWeekdays, d.Weekday()) {
		return true
	}
	return slices.Contains(c.DisabledMonthDays, d.Day)
}

// MonthForbidden reports whether every day in d's month is forbidden.
func (c DateConstraints) MonthForbidden(d calendar.Date) bool {
	first := d.FirstOfMonth()
	last := d.LastOfMonth()
	if c.AfterMax(first) || c.BeforeMin(last) {
		return true
	}

	for day := first; !day.After(last); day = day.AddDays(1) {
		if !c.DayForbidden(day) {
			return false
		}
	}
	return true
}

// YearForbidden reports whether every month in d's year is forbidden.
func (c DateConstraints) YearForbidden(d calendar.Date) bool {
	first := d.FirstOfYear()
	for m := range 12 {
		if !c.MonthForbidden(first.AddMonths(m)) {
			return false
		}
	}
	return true
}

// InstantForbidden compares i exactly against [Min, Max].
func (c DateConstraints) InstantForbidden(i calendar.Instant) bool {
	return (c.Min != nil && i.Before(*c.Min)) || (c.Max != nil && i.After(*c.Max))
}

// HourForbidden reports whether every second of the given hour on d lies
// outside [Min, Max].
func (c DateConstraints) HourForbidden(d calendar.Date, hour int) bool {
	first := calendar.At(d, calendar.TimeOfDay{Hour: hour})
	last := calendar.At(d, calendar.TimeOfDay{Hour: hour, Minute: 59})
	return (c.Min != nil && last.Before(*c.Min)) || (c.Max != nil && first.After(*c.Max))
}

// MinuteForbidden reports whether every second of the given minute on d lies
// outside [Min, Max]. Bounds carry no seconds, so this is the instant check
// on the start of the minute.
func (c DateConstraints) MinuteForbidden(d calendar.Date, hour, minute int) bool {
	return c.InstantForbidden(calendar.At(d, calendar.TimeOfDay{Hour: hour, Minute: minute}))
}

// FirstAllowedDay returns the earliest non-forbidden day at or after from,
// looking at most limit days ahead.
func (c DateConstraints) FirstAllowedDay(from calendar.Date, limit int) (calendar.Date, bool) {
	if c.Min != nil && from.Before(c.Min.Date) {
		from = c.Min.Date
	}
	for i, day := 0, from; i < limit; i, day = i+1, day.AddDays(1) {
		if c.AfterMax(day) {
			break
		}
		if !c.DayForbidden(day) {
			return day, true
		}
	}
	return calendar.Date{}, false
}
