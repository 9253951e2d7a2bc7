package selection

import (
	"github.com/colonyops/datepicker/internal/core/calendar"
	"github.com/colonyops/datepicker/internal/core/cursor"
	"github.com/colonyops/datepicker/internal/core/textcodec"
)

// Every action reports whether it was accepted. A rejected action leaves the
// state untouched.

// ClickCell clicks a cell of the cursor's current grid.
func (s *State) ClickCell(c cursor.Cell) bool {
	switch s.cursor.Granularity() {
	case cursor.Days:
		return s.ClickDay(c.Date)
	case cursor.Months:
		return s.ClickMonth(c.Date)
	default:
		return s.ClickYear(c.Date)
	}
}

// ClickDay selects d.
func (s *State) ClickDay(d calendar.Date) bool {
	if s.closed || !s.mode.HasDate() || s.cons().DayForbidden(d) {
		return false
	}
	return s.pickDate(d)
}

// ClickMonth selects the month of d when months are the selection
// granularity, otherwise zooms into it.
func (s *State) ClickMonth(d calendar.Date) bool {
	if s.closed || !s.mode.HasDate() || s.cons().MonthForbidden(d) {
		return false
	}
	if s.cfg.Selection == cursor.Months {
		return s.pickDate(d)
	}
	return s.cursor.ZoomIn(d)
}

// ClickYear selects the year of d when years are the selection granularity,
// otherwise zooms into it.
func (s *State) ClickYear(d calendar.Date) bool {
	if s.closed || !s.mode.HasDate() || s.cons().YearForbidden(d) {
		return false
	}
	if s.cfg.Selection == cursor.Years {
		return s.pickDate(d)
	}
	return s.cursor.ZoomIn(d)
}

// pickDate records a date. With a complete time already selected the
// combined instant is committed, or rejected if out of range.
func (s *State) pickDate(d calendar.Date) bool {
	d = s.normalize(d)

	if s.mode.HasTime() && s.hour != nil && s.minute != nil {
		i := calendar.At(d, calendar.TimeOfDay{Hour: *s.hour, Minute: *s.minute})
		if s.cons().InstantForbidden(i) {
			return false
		}
		s.commit(textcodec.FormatISODateTime(i))
		return true
	}

	if s.mode == DateTime {
		s.setDate(d)
		s.cursor.SetFocus(calendar.At(d, s.cursor.Focus().TimeOfDay))
		return true
	}

	s.commit(textcodec.FormatISODate(d))
	return true
}

// HourSelectable reports whether the hour cell may be clicked. Without a
// known day every hour is selectable.
func (s *State) HourSelectable(hour int) bool {
	if hour < 0 || hour > 23 {
		return false
	}
	d, ok := s.referenceDate()
	return !ok || !s.cons().HourForbidden(d, hour)
}

// MinuteSelectable reports whether the minute cell may be clicked. The
// selected hour is used, or the focused hour when none is selected.
func (s *State) MinuteSelectable(minute int) bool {
	if minute < 0 || minute > 59 {
		return false
	}
	hour := s.cursor.Focus().Hour
	if s.hour != nil {
		hour = *s.hour
	}
	d, ok := s.referenceDate()
	return !ok || !s.cons().MinuteForbidden(d, hour, minute)
}

// ClickHour selects an hour, committing when it completes the value.
func (s *State) ClickHour(hour int) bool {
	if s.closed || !s.mode.HasTime() || !s.HourSelectable(hour) {
		return false
	}
	if s.minute == nil {
		s.hour = &hour
		s.focusTime(hour, s.cursor.Focus().Minute)
		return true
	}
	return s.pickTime(calendar.TimeOfDay{Hour: hour, Minute: *s.minute})
}

// ClickMinute selects a minute, committing when it completes the value.
func (s *State) ClickMinute(minute int) bool {
	if s.closed || !s.mode.HasTime() || !s.MinuteSelectable(minute) {
		return false
	}
	if s.hour == nil {
		s.minute = &minute
		s.focusTime(s.cursor.Focus().Hour, minute)
		return true
	}
	return s.pickTime(calendar.TimeOfDay{Hour: *s.hour, Minute: minute})
}

func (s *State) focusTime(hour, minute int) {
	f := s.cursor.Focus()
	f.TimeOfDay = calendar.TimeOfDay{Hour: hour, Minute: minute}
	s.cursor.SetFocus(f)
}

// pickTime handles a complete hour and minute. A time-only dialog commits;
// a combined dialog commits when a date is known and otherwise waits.
func (s *State) pickTime(t calendar.TimeOfDay) bool {
	if s.mode == TimeOnly {
		if d, ok := s.referenceDate(); ok && s.cons().InstantForbidden(calendar.At(d, t)) {
			return false
		}
		s.commit(textcodec.FormatISOTime(t))
		return true
	}

	if s.date != nil {
		i := calendar.At(*s.date, t)
		if s.cons().InstantForbidden(i) {
			return false
		}
		s.commit(textcodec.FormatISODateTime(i))
		return true
	}

	s.setTime(t)
	s.focusTime(t.Hour, t.Minute)
	return true
}

// Clear empties the working value, writes "" to the host field and closes.
func (s *State) Clear() bool {
	if s.closed {
		return false
	}
	s.date, s.hour, s.minute = nil, nil, nil
	s.write("")
	s.close(EventClear, "")
	return true
}

// Today is the date footer button. A date dialog commits today. A combined
// dialog commits today at the selected time, or seeds today and waits for a
// time. Nothing happens when the resulting value is forbidden.
func (s *State) Today() bool {
	if s.closed || !s.mode.HasDate() {
		return false
	}
	now := s.clock.Now()

	switch {
	case s.mode == DateOnly:
		if s.cons().DayForbidden(now.Date) {
			return false
		}
		s.commit(textcodec.FormatISODate(now.Date))
	case s.hour != nil && s.minute != nil:
		i := calendar.At(now.Date, calendar.TimeOfDay{Hour: *s.hour, Minute: *s.minute})
		if s.cons().DayForbidden(i.Date) || s.cons().InstantForbidden(i) {
			return false
		}
		s.commit(textcodec.FormatISODateTime(i))
	default:
		if s.cons().DayForbidden(now.Date) || s.cons().InstantForbidden(now) {
			return false
		}
		s.setDate(now.Date)
		s.cursor.SetFocus(now)
	}
	return true
}

// Now is the time footer button. A time dialog commits the current time. A
// combined dialog commits the selected date at the current time, or seeds
// the current time and waits for a date. Nothing happens when the resulting
// value is forbidden.
func (s *State) Now() bool {
	if s.closed || !s.mode.HasTime() {
		return false
	}
	t := s.clock.Now().TimeOfDay

	switch {
	case s.mode == TimeOnly:
		if d, ok := s.referenceDate(); ok && s.cons().InstantForbidden(calendar.At(d, t)) {
			return false
		}
		s.commit(textcodec.FormatISOTime(t))
	case s.date != nil:
		i := calendar.At(*s.date, t)
		if s.cons().InstantForbidden(i) {
			return false
		}
		s.commit(textcodec.FormatISODateTime(i))
	default:
		s.setTime(t)
		s.focusTime(t.Hour, t.Minute)
	}
	return true
}

// Pending returns the canonical text Exit would commit. It reports false for
// an incomplete or forbidden selection.
func (s *State) Pending() (string, bool) {
	cons := s.cons()

	switch s.mode {
	case DateOnly:
		if s.date == nil || s.cfg.DateForbidden(*s.date) {
			return "", false
		}
		return textcodec.FormatISODate(*s.date), true
	case DateTime:
		if s.date == nil || s.hour == nil || s.minute == nil {
			return "", false
		}
		i := calendar.At(*s.date, calendar.TimeOfDay{Hour: *s.hour, Minute: *s.minute})
		if s.cfg.DateForbidden(i.Date) || cons.InstantForbidden(i) {
			return "", false
		}
		return textcodec.FormatISODateTime(i), true
	default:
		if s.hour == nil || s.minute == nil {
			return "", false
		}
		t := calendar.TimeOfDay{Hour: *s.hour, Minute: *s.minute}
		if d, ok := s.referenceDate(); ok && cons.InstantForbidden(calendar.At(d, t)) {
			return "", false
		}
		return textcodec.FormatISOTime(t), true
	}
}

// Exit closes the dialog, committing the pending value when it is complete
// and still allowed. An incomplete selection leaves the host field unchanged.
// It reports whether a value was committed.
func (s *State) Exit() bool {
	if s.closed {
		return false
	}
	text, ok := s.Pending()
	if !ok {
		s.close(EventDiscard, "")
		return false
	}
	s.commit(text)
	return true
}
