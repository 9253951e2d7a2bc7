package selection

import (
	"github.com/google/uuid"

	"github.com/colonyops/datepicker/internal/core/calendar"
	"github.com/colonyops/datepicker/internal/core/constraints"
	"github.com/colonyops/datepicker/internal/core/cursor"
	"github.com/colonyops/datepicker/internal/core/textcodec"
)

// Options configures a new State.
type Options struct {
	Mode   Mode
	Config PickerConfig
	Host   HostField
	// Paired is an optional sibling field. A date dialog reads its time to
	// seed the focus; a time dialog reads its date to decide which hours and
	// minutes are selectable.
	Paired   HostField
	Clock    calendar.Clock
	Observer Observer
}

// State is the working copy of one open dialog. It is not safe for
// concurrent use; each dialog owns its State exclusively.
type State struct {
	id       string
	mode     Mode
	cfg      PickerConfig
	host     HostField
	paired   HostField
	clock    calendar.Clock
	observer Observer
	cursor   *cursor.Cursor

	date   *calendar.Date
	hour   *int
	minute *int

	seen    string
	closed  bool
	changed bool
}

// New opens a dialog seeded from the host field, falling back to the
// configured initial value.
func New(opts Options) *State {
	if opts.Host == nil {
		opts.Host = &StringHost{}
	}
	if opts.Clock == nil {
		opts.Clock = calendar.SystemClock{}
	}

	s := &State{
		id:       uuid.NewString(),
		mode:     opts.Mode,
		cfg:      opts.Config,
		host:     opts.Host,
		paired:   opts.Paired,
		clock:    opts.Clock,
		observer: opts.Observer,
	}
	s.seed(s.host.Get())

	value, base := s.focusValue(s.clock.Now())
	s.cursor = cursor.New(cursor.Options{
		Constraints: s.cfg.Constraints,
		View:        s.cfg.InitialView,
		Selection:   s.cfg.Selection,
		Value:       value,
	}, base)

	return s
}

// seed replaces the working value with the one encoded in text.
func (s *State) seed(text string) {
	s.seen = text
	s.date, s.hour, s.minute = nil, nil, nil

	initial := s.cfg.Initial
	switch s.mode {
	case DateTime:
		i, ok := textcodec.ParseISODateTime(text)
		if !ok && initial != nil {
			i, ok = *initial, true
		}
		if ok {
			s.setDate(i.Date)
			s.setTime(i.TimeOfDay)
		}
	case DateOnly:
		d, ok := textcodec.ParseISODate(text)
		if !ok && initial != nil {
			d, ok = initial.Date, true
		}
		if ok {
			s.setDate(d)
		}
	case TimeOnly:
		t, ok := textcodec.ParseISOTime(text)
		if !ok && initial != nil {
			t, ok = initial.TimeOfDay, true
		}
		if ok {
			s.setTime(t)
		}
	}
}

func (s *State) setDate(d calendar.Date) { s.date = &d }

func (s *State) setTime(t calendar.TimeOfDay) {
	h, m := t.Hour, t.Minute
	s.hour, s.minute = &h, &m
}

// focusValue returns the selected instant the cursor should open on, or nil,
// together with the "now" the cursor falls back to. Both carry the selected
// time, or the paired time of a date dialog, when one is known.
func (s *State) focusValue(now calendar.Instant) (*calendar.Instant, calendar.Instant) {
	base := now
	if s.hour != nil && s.minute != nil {
		base.TimeOfDay = calendar.TimeOfDay{Hour: *s.hour, Minute: *s.minute}
	}

	switch s.mode {
	case DateOnly:
		if t, ok := s.pairedTime(); ok {
			base.TimeOfDay = t
		}
	case TimeOnly:
		if d, ok := s.pairedDate(); ok {
			base.Date = d
		}
	}

	if s.date == nil {
		return nil, base
	}
	v := calendar.At(*s.date, base.TimeOfDay)
	return &v, base
}

func (s *State) pairedDate() (calendar.Date, bool) {
	if s.paired == nil {
		return calendar.Date{}, false
	}
	return textcodec.ParseISODate(s.paired.Get())
}

func (s *State) pairedTime() (calendar.TimeOfDay, bool) {
	if s.paired == nil {
		return calendar.TimeOfDay{}, false
	}
	return textcodec.ParseISOTime(s.paired.Get())
}

// ID identifies the dialog in observer events.
func (s *State) ID() string { return s.id }

func (s *State) Mode() Mode { return s.mode }

func (s *State) Config() PickerConfig { return s.cfg }

// Clock is the time source the dialog resolves today and now against.
func (s *State) Clock() calendar.Clock { return s.clock }

// Cursor exposes the navigation state for rendering and paging.
func (s *State) Cursor() *cursor.Cursor { return s.cursor }

// Date returns the selected date, if any.
func (s *State) Date() (calendar.Date, bool) {
	if s.date == nil {
		return calendar.Date{}, false
	}
	return *s.date, true
}

// Hour returns the selected hour, if any.
func (s *State) Hour() (int, bool) {
	if s.hour == nil {
		return 0, false
	}
	return *s.hour, true
}

// Minute returns the selected minute, if any.
func (s *State) Minute() (int, bool) {
	if s.minute == nil {
		return 0, false
	}
	return *s.minute, true
}

// Closed reports whether the dialog has committed, cleared or been
// discarded. A closed State ignores every further event.
func (s *State) Closed() bool { return s.closed }

// Changed reports whether the dialog wrote to the host field.
func (s *State) Changed() bool { return s.changed }

func (s *State) cons() constraints.DateConstraints { return s.cfg.Constraints }

// normalize truncates d to the selection granularity.
func (s *State) normalize(d calendar.Date) calendar.Date {
	switch s.cfg.Selection {
	case cursor.Months:
		return d.FirstOfMonth()
	case cursor.Years:
		return d.FirstOfYear()
	default:
		return d
	}
}

// referenceDate is the day hour and minute cells are checked against. A
// time-only dialog uses the paired date or today; a combined dialog only
// knows a day once one is selected.
func (s *State) referenceDate() (calendar.Date, bool) {
	if s.date != nil {
		return *s.date, true
	}
	if s.mode != TimeOnly {
		return calendar.Date{}, false
	}
	if d, ok := s.pairedDate(); ok {
		return d, true
	}
	return s.clock.Now().Date, true
}

// Resync reloads the working value when the host field changed since it was
// last read or written. It reports whether anything was reloaded.
func (s *State) Resync() bool {
	if s.closed {
		return false
	}
	text := s.host.Get()
	if text == s.seen {
		return false
	}

	s.seed(text)
	if v, _ := s.focusValue(s.clock.Now()); v != nil {
		s.cursor.SetFocus(*v)
	}
	return true
}

// write stores text in the host field when it differs from the current value.
func (s *State) write(text string) {
	if s.host.Get() != text {
		s.host.Set(text)
		s.changed = true
	}
	s.seen = text
}

func (s *State) commit(text string) {
	if text != "" && s.cfg.Transform != nil {
		text = s.cfg.Transform(text)
	}
	s.write(text)
	s.close(EventCommit, text)
}

func (s *State) close(kind EventKind, value string) {
	s.closed = true
	if s.observer != nil {
		s.observer.Observe(Event{
			DialogID: s.id,
			Kind:     kind,
			Mode:     s.mode,
			Value:    value,
			Changed:  s.changed,
		})
	}
}

// Discard closes the dialog without touching the host field.
func (s *State) Discard() {
	if s.closed {
		return
	}
	s.close(EventDiscard, "")
}
