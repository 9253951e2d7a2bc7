package textcodec

import (
	"strings"
	"time"

	"github.com/colonyops/datepicker/internal/core/calendar"
)

// ParseISODate parses canonical YYYY-MM-DD text.
func ParseISODate(text string) (calendar.Date, bool) {
	text = strings.TrimSpace(text)
	if len(text) != 10 || text[4] != '-' || text[7] != '-' {
		return calendar.Date{}, false
	}
	y, okY := atoi(text[0:4])
	m, okM := atoi(text[5:7])
	d, okD := atoi(text[8:10])
	if !okY || !okM || !okD {
		return calendar.Date{}, false
	}
	return calendar.NewDate(y, time.Month(m), d)
}

// ParseISOTime parses canonical HH:MM text. Seconds, fractional seconds and a
// trailing "Z" or ±HH:MM offset are accepted and discarded.
func ParseISOTime(text string) (calendar.TimeOfDay, bool) {
	text = stripOffset(strings.TrimSpace(text))
	if len(text) < 5 || text[2] != ':' {
		return calendar.TimeOfDay{}, false
	}
	h, okH := atoi(text[0:2])
	m, okM := atoi(text[3:5])
	if !okH || !okM {
		return calendar.TimeOfDay{}, false
	}

	rest := text[5:]
	if rest != "" {
		if len(rest) < 3 || rest[0] != ':' {
			return calendar.TimeOfDay{}, false
		}
		s, ok := atoi(rest[1:3])
		if !ok || s > 59 {
			return calendar.TimeOfDay{}, false
		}
		if frac := rest[3:]; frac != "" {
			if frac[0] != '.' {
				return calendar.TimeOfDay{}, false
			}
			if _, ok := atoi(frac[1:]); !ok {
				return calendar.TimeOfDay{}, false
			}
		}
	}

	return calendar.NewTimeOfDay(h, m)
}

// ParseISODateTime parses canonical YYYY-MM-DDTHH:MM text. A space may stand
// in for the "T"; the time part follows ParseISOTime.
func ParseISODateTime(text string) (calendar.Instant, bool) {
	parts := strings.Split(strings.TrimSpace(strings.Replace(text, "T", " ", 1)), " ")
	if len(parts) != 2 {
		return calendar.Instant{}, false
	}
	d, ok := ParseISODate(parts[0])
	if !ok {
		return calendar.Instant{}, false
	}
	t, ok := ParseISOTime(parts[1])
	if !ok {
		return calendar.Instant{}, false
	}
	return calendar.At(d, t), true
}

// stripOffset removes a trailing "Z" or ±HH:MM zone designator.
func stripOffset(text string) string {
	if strings.HasSuffix(text, "Z") {
		return text[:len(text)-1]
	}
	if n := len(text); n > 6 && (text[n-6] == '+' || text[n-6] == '-') && text[n-3] == ':' {
		return text[:n-6]
	}
	return text
}

// FormatISODate returns YYYY-MM-DD.
func FormatISODate(d calendar.Date) string { return d.String() }

// FormatISOTime returns HH:MM.
func FormatISOTime(t calendar.TimeOfDay) string { return t.String() }

// FormatISODateTime returns YYYY-MM-DDTHH:MM.
func FormatISODateTime(i calendar.Instant) string { return i.String() }
