// Package textcodec converts between loosely formatted user text and calendar
// values, and renders calendar values as canonical or display text.
//
// Parsing never fails loudly: every Parse function returns the zero value and
// false when the text does not denote a value.
package textcodec

import (
	"strconv"
	"strings"
	"time"

	"github.com/colonyops/datepicker/internal/core/calendar"
)

// separators are interchangeable field delimiters in pattern text.
const separators = "/-.:"

// Codec parses pattern text. The clock supplies the current Buddhist-era
// century used to expand two digit years.
type Codec struct {
	clock calendar.Clock
}

// New creates a Codec reading "now" from clock.
func New(clock calendar.Clock) *Codec {
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	return &Codec{clock: clock}
}

// Default is the Codec backed by the system clock.
var Default = New(calendar.SystemClock{})

// ParseDate parses pattern text with the Default codec.
func ParseDate(text string) (calendar.Date, bool) { return Default.ParseDate(text) }

// ParseTime parses pattern text with the Default codec.
func ParseTime(text string) (calendar.TimeOfDay, bool) { return Default.ParseTime(text) }

// ParseDateTime parses pattern text with the Default codec.
func ParseDateTime(text string) (calendar.Instant, bool) { return Default.ParseDateTime(text) }

// Now returns the codec's current instant.
func (c *Codec) Now() calendar.Instant { return c.clock.Now() }

// century returns the current Buddhist-era century, e.g. 2500 for 2567.
func (c *Codec) century() int {
	return (c.clock.Now().BuddhistYear() / 100) * 100
}

// ParseDate parses a DD/MM/YYYY style date. Fields may be delimited by any of
// "/", "-", "." or ":", or given as a bare digit run (DDMMYY or DDMMYYYY).
// Years are Buddhist era; two digit years expand into the current century.
// When the month field exceeds 12 and the day field does not, the fields are
// read as month/day instead.
func (c *Codec) ParseDate(text string) (calendar.Date, bool) {
	text = strings.TrimSpace(text)

	if strings.ContainsAny(text, separators) {
		parts := splitFields(text)
		if len(parts) < 3 {
			return calendar.Date{}, false
		}
		d, okD := atoi(parts[0])
		m, okM := atoi(parts[1])
		y, okY := atoi(parts[2])
		if !okD || !okM || !okY {
			return calendar.Date{}, false
		}
		if y <= calendar.BuddhistOffset {
			y += c.century()
		}
		return resolveDate(d, m, y-calendar.BuddhistOffset)
	}

	digits := digitsOf(text)
	switch {
	case len(digits) >= 8:
		d, _ := atoi(digits[0:2])
		m, _ := atoi(digits[2:4])
		y, _ := atoi(digits[4:8])
		if y > calendar.BuddhistOffset {
			y -= calendar.BuddhistOffset
		}
		return resolveDate(d, m, y)
	case len(digits) >= 6:
		d, _ := atoi(digits[0:2])
		m, _ := atoi(digits[2:4])
		y, _ := atoi(digits[4:6])
		return resolveDate(d, m, y+c.century()-calendar.BuddhistOffset)
	default:
		return calendar.Date{}, false
	}
}

// resolveDate builds a Gregorian date from day and month slots, swapping them
// when only the month/day reading is possible.
func resolveDate(d, m, y int) (calendar.Date, bool) {
	if m > 12 && d <= 12 {
		d, m = m, d
	}
	return calendar.NewDate(y, time.Month(m), d)
}

// ParseTime parses an H:M style time, or a bare digit run of one to four
// digits:
//
//	"9"    -> 09:00
//	"10"   -> 10:00 (10..23 read as an hour)
//	"24"   -> 02:04
//	"235"  -> 02:35
//	"166"  -> 16:06 (trailing pair is not a minute)
//	"1455" -> 14:55 (further digits ignored)
//
// Out-of-range hours or minutes are rejected, never clamped.
func (c *Codec) ParseTime(text string) (calendar.TimeOfDay, bool) {
	text = strings.TrimSpace(text)

	if strings.ContainsAny(text, separators) {
		parts := splitFields(text)
		if len(parts) < 2 {
			return calendar.TimeOfDay{}, false
		}
		h, okH := atoi(parts[0])
		m, okM := atoi(parts[1])
		if !okH || !okM {
			return calendar.TimeOfDay{}, false
		}
		return calendar.NewTimeOfDay(h, m)
	}

	digits := digitsOf(text)
	switch n := len(digits); {
	case n >= 4:
		h, _ := atoi(digits[0:2])
		m, _ := atoi(digits[2:4])
		return calendar.NewTimeOfDay(h, m)
	case n == 3:
		h, _ := atoi(digits[0:1])
		m, _ := atoi(digits[1:3])
		if m > 59 {
			hh, _ := atoi(digits[0:2])
			if hh > 23 {
				return calendar.TimeOfDay{}, false
			}
			mm, _ := atoi(digits[2:3])
			return calendar.NewTimeOfDay(hh, mm)
		}
		return calendar.NewTimeOfDay(h, m)
	case n == 2:
		if isHourShorthand(digits) {
			h, _ := atoi(digits)
			return calendar.NewTimeOfDay(h, 0)
		}
		h, _ := atoi(digits[0:1])
		m, _ := atoi(digits[1:2])
		return calendar.NewTimeOfDay(h, m)
	case n == 1:
		h, _ := atoi(digits)
		return calendar.NewTimeOfDay(h, 0)
	default:
		return calendar.TimeOfDay{}, false
	}
}

// isHourShorthand reports whether a two digit run reads as an hour 10..23.
func isHourShorthand(pair string) bool {
	return pair[0] == '1' || (pair[0] == '2' && pair[1] >= '0' && pair[1] <= '3')
}

// ParseDateTime parses "DATE TIME" pattern text. The halves are split at the
// first whitespace or "T"; both must parse.
func (c *Codec) ParseDateTime(text string) (calendar.Instant, bool) {
	text = strings.TrimSpace(text)

	i := strings.IndexFunc(text, func(r rune) bool {
		return r == 'T' || r == ' ' || r == '\t'
	})
	if i < 0 {
		return calendar.Instant{}, false
	}

	d, ok := c.ParseDate(text[:i])
	if !ok {
		return calendar.Instant{}, false
	}
	t, ok := c.ParseTime(text[i+1:])
	if !ok {
		return calendar.Instant{}, false
	}
	return calendar.At(d, t), true
}

// splitFields splits on any separator, keeping empty fields so that doubled
// separators fail to parse.
func splitFields(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		if strings.IndexByte(separators, text[i]) >= 0 {
			out = append(out, strings.TrimSpace(text[start:i]))
			start = i + 1
		}
	}
	return append(out, strings.TrimSpace(text[start:]))
}

// digitsOf drops every byte that is not an ASCII digit.
func digitsOf(text string) string {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if text[i] >= '0' && text[i] <= '9' {
			b.WriteByte(text[i])
		}
	}
	return b.String()
}

// atoi parses a non-empty run of ASCII digits.
func atoi(s string) (int, bool) {
	if s == "" || len(s) > 9 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}
