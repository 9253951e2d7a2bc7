// Package selection holds the working state of an open picker dialog and the
// protocol that commits it to a host field.
package selection

import (
	"fmt"
	"strings"

	"github.com/colonyops/datepicker/internal/core/calendar"
	"github.com/colonyops/datepicker/internal/core/constraints"
	"github.com/colonyops/datepicker/internal/core/cursor"
	"github.com/colonyops/datepicker/internal/core/textcodec"
)

// Mode is the shape of value a dialog produces.
type Mode int

const (
	DateOnly Mode = iota
	TimeOnly
	DateTime
)

// ParseMode reads "date", "time" or "datetime".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "date":
		return DateOnly, nil
	case "time":
		return TimeOnly, nil
	case "datetime", "date-time":
		return DateTime, nil
	default:
		return DateOnly, fmt.Errorf("unknown picker mode %q", s)
	}
}

// Kind maps the mode to the codec's value kind.
func (m Mode) Kind() textcodec.Kind {
	switch m {
	case TimeOnly:
		return textcodec.KindTime
	case DateTime:
		return textcodec.KindDateTime
	default:
		return textcodec.KindDate
	}
}

func (m Mode) String() string { return string(m.Kind()) }

// HasDate reports whether the dialog shows a calendar grid.
func (m Mode) HasDate() bool { return m != TimeOnly }

// HasTime reports whether the dialog shows hour and minute columns.
func (m Mode) HasTime() bool { return m != DateOnly }

// Transform post-processes canonical text just before it is written to the
// host field. It is never called with the empty string.
type Transform func(string) string

// PickerConfig is fixed for the lifetime of a dialog.
type PickerConfig struct {
	Constraints constraints.DateConstraints
	Selection   cursor.Granularity
	InitialView cursor.Granularity
	Initial     *calendar.Instant
	Transform   Transform
}

// DateForbidden checks d at the selection granularity. With months or years
// selected, d stands for its whole month or year, which is forbidden only
// when every day in it is.
func (c PickerConfig) DateForbidden(d calendar.Date) bool {
	switch c.Selection {
	case cursor.Months:
		return c.Constraints.MonthForbidden(d)
	case cursor.Years:
		return c.Constraints.YearForbidden(d)
	default:
		return c.Constraints.DayForbidden(d)
	}
}

// TransformNames lists the names accepted by TransformByName.
var TransformNames = []string{"none", "date-only", "start-of-day", "end-of-day"}

// TransformByName returns a named transform. "none" and "" return nil.
func TransformByName(name string) (Transform, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "date-only":
		return func(s string) string {
			date, _, _ := strings.Cut(s, "T")
			return date
		}, nil
	case "start-of-day":
		return withTime("00:00"), nil
	case "end-of-day":
		return withTime("23:59"), nil
	default:
		return nil, fmt.Errorf("unknown transform %q", name)
	}
}

// withTime replaces the time part of canonical datetime text, or appends one
// to canonical date text. Time-only text is returned unchanged.
func withTime(hm string) Transform {
	return func(s string) string {
		date, _, _ := strings.Cut(s, "T")
		if _, ok := textcodec.ParseISODate(date); !ok {
			return s
		}
		return date + "T" + hm
	}
}
