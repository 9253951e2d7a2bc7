package selection

import (
	"github.com/colonyops/datepicker/internal/core/calendar"
	"github.com/colonyops/datepicker/internal/core/textcodec"
)

// NormalizeInput turns typed pattern text into the canonical text a host
// field should hold. It returns "" when the text does not parse or the value
// is forbidden. Dates are checked at the selection granularity. A time is checked against the paired date, or today when
// paired holds no date. The config transform is applied to a non-empty
// result.
func NormalizeInput(codec *textcodec.Codec, mode Mode, text string, cfg PickerConfig, paired string) string {
	if codec == nil {
		codec = textcodec.Default
	}
	cons := cfg.Constraints

	var iso string
	switch mode {
	case DateTime:
		if i, ok := codec.ParseDateTime(text); ok && !cfg.DateForbidden(i.Date) && !cons.InstantForbidden(i) {
			iso = textcodec.FormatISODateTime(i)
		}
	case DateOnly:
		if d, ok := codec.ParseDate(text); ok && !cfg.DateForbidden(d) {
			iso = textcodec.FormatISODate(d)
		}
	case TimeOnly:
		if t, ok := codec.ParseTime(text); ok {
			ref, ok := textcodec.ParseISODate(paired)
			if !ok {
				ref = codec.Now().Date
			}
			if !cons.InstantForbidden(calendar.At(ref, t)) {
				iso = textcodec.FormatISOTime(t)
			}
		}
	}

	if iso != "" && cfg.Transform != nil {
		iso = cfg.Transform(iso)
	}
	return iso
}
