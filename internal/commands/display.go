package commands

import "github.com/colonyops/datepicker/internal/core/textcodec"

// valueKinds is the order canonical text of unknown kind is tried in.
var valueKinds = []textcodec.Kind{textcodec.KindDateTime, textcodec.KindDate, textcodec.KindTime}

// thaiText renders canonical text of any kind as a Thai label. Stored
// values may have passed through a transform that changed their kind.
func thaiText(value string) string {
	for _, kind := range valueKinds {
		if s := textcodec.ISOToThai(kind, value); s != "" {
			return s
		}
	}
	return ""
}
