package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Keys shared by the context hook and the logger helpers.
const (
	componentKey = "cmp"
	fieldLogKey  = "field"
	dialogLogKey = "dialog_id"
)

// Component returns the global logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return log.With().Str(componentKey, name).Logger()
}

// Field returns the logger for picker dialogs editing the named host field.
// Its events carry the same field key the context hook adds.
func Field(name string) zerolog.Logger {
	return log.With().
		Str(componentKey, "picker").
		Str(fieldLogKey, name).
		Logger()
}
