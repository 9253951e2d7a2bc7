package textcodec

import (
	"fmt"

	"github.com/colonyops/datepicker/internal/core/calendar"
)

// FormatPatternDate returns DD/MM/YYYY with a Buddhist-era year.
// ParseDate reads the result back to d for Gregorian years of 1 and later;
// earlier years give a Buddhist-era year of 543 or less, which ParseDate
// takes for a short year.
func FormatPatternDate(d calendar.Date) string {
	return fmt.Sprintf("%02d/%02d/%d", d.Day, int(d.Month), d.BuddhistYear())
}

// FormatPatternTime returns HH:MM.
func FormatPatternTime(t calendar.TimeOfDay) string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// FormatPatternDateTime returns DD/MM/YYYY HH:MM with a Buddhist-era year.
func FormatPatternDateTime(i calendar.Instant) string {
	return FormatPatternDate(i.Date) + " " + FormatPatternTime(i.TimeOfDay)
}

// Kind selects which of the three value shapes a field holds.
type Kind string

const (
	KindDate     Kind = "date"
	KindTime     Kind = "time"
	KindDateTime Kind = "datetime"
)

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindDate, KindTime, KindDateTime:
		return true
	default:
		return false
	}
}

// ISOToPattern renders canonical text of the given kind as display pattern
// text. It returns "" when the canonical text does not parse.
func ISOToPattern(kind Kind, iso string) string {
	switch kind {
	case KindDate:
		if d, ok := ParseISODate(iso); ok {
			return FormatPatternDate(d)
		}
	case KindTime:
		if t, ok := ParseISOTime(iso); ok {
			return FormatPatternTime(t)
		}
	case KindDateTime:
		if i, ok := ParseISODateTime(iso); ok {
			return FormatPatternDateTime(i)
		}
	}
	return ""
}

// PatternToISO parses pattern text of the given kind and returns its
// canonical form, or "" when it does not parse.
func (c *Codec) PatternToISO(kind Kind, text string) string {
	switch kind {
	case KindDate:
		if d, ok := c.ParseDate(text); ok {
			return FormatISODate(d)
		}
	case KindTime:
		if t, ok := c.ParseTime(text); ok {
			return FormatISOTime(t)
		}
	case KindDateTime:
		if i, ok := c.ParseDateTime(text); ok {
			return FormatISODateTime(i)
		}
	}
	return ""
}
