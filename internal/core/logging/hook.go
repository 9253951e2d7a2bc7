package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts dialog_id and field from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if id := GetDialogID(ctx); id != "" {
		e.Str(dialogLogKey, id)
	}

	if field := GetField(ctx); field != "" {
		e.Str(fieldLogKey, field)
	}
}
