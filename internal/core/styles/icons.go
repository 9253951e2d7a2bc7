package styles

// Navigation glyphs for the picker header.
var (
	IconPrev = "‹"
	IconNext = "›"
	IconNone = " "
)

// IconCalendar and IconClock prefix the form field title.
var (
	IconCalendar = "\uf073" // nf-fa-calendar
	IconClock    = "\uf017" // nf-fa-clock_o
)
