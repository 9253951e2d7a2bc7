// Package calendar defines the plain calendar values exchanged by the picker:
// dates, minute-resolution times of day, and their combination.
package calendar

import (
	"fmt"
	"time"
)

// BuddhistOffset is added to a Gregorian year to get the Buddhist-era year.
const BuddhistOffset = 543

// Zone is the fixed UTC+7 offset used to compute "now".
var Zone = time.FixedZone("UTC+7", 7*60*60)

// Date is a real calendar day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for the given fields and whether they denote a
// real calendar day.
func NewDate(year int, month time.Month, day int) (Date, bool) {
	d := Date{Year: year, Month: month, Day: day}
	return d, d.Valid()
}

// MustDate is NewDate for fields known to be valid. It panics otherwise.
func MustDate(year int, month time.Month, day int) Date {
	d, ok := NewDate(year, month, day)
	if !ok {
		panic(fmt.Sprintf("calendar: invalid date %04d-%02d-%02d", year, int(month), day))
	}
	return d
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Valid reports whether d denotes a real calendar day.
func (d Date) Valid() bool {
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysIn(d.Year, d.Month)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func dateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// AddDays returns the date n days later (earlier when n is negative).
func (d Date) AddDays(n int) Date { return dateOf(d.Time().AddDate(0, 0, n)) }

// AddMonths shifts the date by n months, clamping the day to the length of
// the target month.
func (d Date) AddMonths(n int) Date {
	first := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	day := min(d.Day, DaysIn(first.Year(), first.Month()))
	return Date{Year: first.Year(), Month: first.Month(), Day: day}
}

// AddYears shifts the date by n years, clamping 29 February.
func (d Date) AddYears(n int) Date { return d.AddMonths(12 * n) }

// FirstOfMonth returns the first day of the date's month.
func (d Date) FirstOfMonth() Date { return Date{Year: d.Year, Month: d.Month, Day: 1} }

// LastOfMonth returns the last day of the date's month.
func (d Date) LastOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: DaysIn(d.Year, d.Month)}
}

// FirstOfYear returns 1 January of the date's year.
func (d Date) FirstOfYear() Date { return Date{Year: d.Year, Month: time.January, Day: 1} }

// BuddhistYear returns the Buddhist-era year.
func (d Date) BuddhistYear() int { return d.Year + BuddhistOffset }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// String returns the canonical YYYY-MM-DD form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// TimeOfDay is a minute-resolution wall clock time. Seconds are always zero.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay returns the time and whether hour and minute are in range.
// Out-of-range values are never clamped.
func NewTimeOfDay(hour, minute int) (TimeOfDay, bool) {
	t := TimeOfDay{Hour: hour, Minute: minute}
	return t, t.Valid()
}

// Midnight is 00:00.
var Midnight = TimeOfDay{}

// Valid reports whether the hour is 0..23 and the minute 0..59.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

func (t TimeOfDay) Compare(o TimeOfDay) int {
	if t.Hour != o.Hour {
		return cmpInt(t.Hour, o.Hour)
	}
	return cmpInt(t.Minute, o.Minute)
}

// String returns the canonical HH:MM form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Instant is a date combined with a time of day.
type Instant struct {
	Date
	TimeOfDay
}

// At combines a date and a time of day.
func At(d Date, t TimeOfDay) Instant { return Instant{Date: d, TimeOfDay: t} }

// FromTime converts t to UTC+7 and truncates it to the minute.
func FromTime(t time.Time) Instant {
	local := t.In(Zone)
	return Instant{
		Date:      dateOf(local),
		TimeOfDay: TimeOfDay{Hour: local.Hour(), Minute: local.Minute()},
	}
}

// Time returns the instant as a time.Time in the UTC+7 zone.
func (i Instant) Time() time.Time {
	return time.Date(i.Year, i.Month, i.Day, i.Hour, i.Minute, 0, 0, Zone)
}

func (i Instant) Compare(o Instant) int {
	if c := i.Date.Compare(o.Date); c != 0 {
		return c
	}
	return i.TimeOfDay.Compare(o.TimeOfDay)
}

// Valid reports whether both the date and the time of day are valid.
func (i Instant) Valid() bool { return i.Date.Valid() && i.TimeOfDay.Valid() }

func (i Instant) Before(o Instant) bool { return i.Compare(o) < 0 }
func (i Instant) After(o Instant) bool  { return i.Compare(o) > 0 }

// String returns the canonical YYYY-MM-DDTHH:MM form.
func (i Instant) String() string {
	return i.Date.String() + "T" + i.TimeOfDay.String()
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
