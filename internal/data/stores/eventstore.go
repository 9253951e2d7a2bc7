package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/datepicker/internal/core/selection"
	"github.com/colonyops/datepicker/internal/data/db"
)

// FieldEvent is one recorded dialog close for a host field.
type FieldEvent struct {
	DialogID  string              `json:"dialog_id"`
	Field     string              `json:"field"`
	Kind      selection.EventKind `json:"kind"`
	Mode      string              `json:"mode"`
	Value     string              `json:"value"`
	Changed   bool                `json:"changed"`
	CreatedAt time.Time           `json:"created_at"`
}

// EventStore keeps a history of picker dialogs per host field.
type EventStore struct {
	db *db.DB
}

// NewEventStore creates a new SQLite-backed event store.
func NewEventStore(db *db.DB) *EventStore {
	return &EventStore{db: db}
}

// Record appends a dialog close event for field.
func (s *EventStore) Record(ctx context.Context, field string, e selection.Event) error {
	changed := 0
	if e.Changed {
		changed = 1
	}
	_, err := s.db.Conn().ExecContext(ctx, `
		INSERT INTO field_events (dialog_id, field, kind, mode, value, changed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.DialogID, field, string(e.Kind), e.Mode.String(), e.Value, changed, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to record event for %q: %w", field, err)
	}
	return nil
}

// History returns the latest events for field, newest first. A limit of
// zero or less returns every event.
func (s *EventStore) History(ctx context.Context, field string, limit int) ([]FieldEvent, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT dialog_id, field, kind, mode, value, changed, created_at
		FROM field_events WHERE field = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, field, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history for %q: %w", field, err)
	}
	defer func() { _ = rows.Close() }()

	var events []FieldEvent
	for rows.Next() {
		var (
			e         FieldEvent
			kind      string
			changed   int
			createdAt int64
		)
		if err := rows.Scan(&e.DialogID, &e.Field, &kind, &e.Mode, &e.Value, &changed, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Kind = selection.EventKind(kind)
		e.Changed = changed != 0
		e.CreatedAt = time.Unix(0, createdAt)
		events = append(events, e)
	}

	return events, rows.Err()
}

// Observer returns a selection.Observer that records events for field.
// Write failures are passed to onErr when it is non-nil.
func (s *EventStore) Observer(ctx context.Context, field string, onErr func(error)) selection.Observer {
	return selection.ObserverFunc(func(e selection.Event) {
		if err := s.Record(ctx, field, e); err != nil && onErr != nil {
			onErr(err)
		}
	})
}
