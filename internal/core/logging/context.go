package logging

import "context"

type contextKey string

const (
	dialogIDKey contextKey = "dialog_id"
	fieldKey    contextKey = "field"
)

// WithDialogID adds a picker dialog ID to the context.
func WithDialogID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, dialogIDKey, id)
}

// WithField adds a host field name to the context.
func WithField(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, fieldKey, name)
}

// GetDialogID retrieves the dialog ID from the context.
// Returns empty string if not present.
func GetDialogID(ctx context.Context) string {
	if id, ok := ctx.Value(dialogIDKey).(string); ok {
		return id
	}
	return ""
}

// GetField retrieves the host field name from the context.
// Returns empty string if not present.
func GetField(ctx context.Context) string {
	if name, ok := ctx.Value(fieldKey).(string); ok {
		return name
	}
	return ""
}
