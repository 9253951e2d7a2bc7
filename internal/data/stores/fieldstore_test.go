package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/datepicker/internal/core/calendar"
	"github.com/colonyops/datepicker/internal/core/selection"
	"github.com/colonyops/datepicker/internal/data/db"
)

func openDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err, "Open")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestFieldStore(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		store := NewFieldStore(openDB(t))

		require.NoError(t, store.Set(ctx, "due", "2024-06-20"))
		got, err := store.Get(ctx, "due")
		require.NoError(t, err)
		assert.Equal(t, "due", got.Name)
		assert.Equal(t, "2024-06-20", got.Value)
		assert.False(t, got.UpdatedAt.IsZero())

		require.NoError(t, store.Set(ctx, "due", "2024-07-01"))
		got, err = store.Get(ctx, "due")
		require.NoError(t, err)
		assert.Equal(t, "2024-07-01", got.Value)
	})

	t.Run("get not found", func(t *testing.T) {
		store := NewFieldStore(openDB(t))

		_, err := store.Get(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)

		v, err := store.Value(ctx, "nonexistent")
		require.NoError(t, err)
		assert.Empty(t, v)
	})

	t.Run("list and delete", func(t *testing.T) {
		store := NewFieldStore(openDB(t))
		require.NoError(t, store.Import(ctx, map[string]string{"b": "09:00", "a": "2024-01-01"}))

		fields, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, fields, 2)
		assert.Equal(t, "a", fields[0].Name)
		assert.Equal(t, "b", fields[1].Name)

		require.NoError(t, store.Delete(ctx, "a"))
		assert.ErrorIs(t, store.Delete(ctx, "a"), ErrNotFound)

		fields, err = store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, fields, 1)
	})
}

func TestFieldHost_CommitsThroughDialog(t *testing.T) {
	ctx := context.Background()
	store := NewFieldStore(openDB(t))
	require.NoError(t, store.Set(ctx, "due", "2024-06-10"))

	host, err := store.Host(ctx, "due")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", host.Get())

	now := calendar.FixedClock(calendar.At(calendar.MustDate(2024, time.June, 15), calendar.TimeOfDay{Hour: 9, Minute: 30}))
	s := selection.New(selection.Options{Mode: selection.DateOnly, Host: host, Clock: now})
	require.True(t, s.ClickDay(calendar.MustDate(2024, time.June, 20)))
	require.NoError(t, host.Err())

	v, err := store.Value(ctx, "due")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-20", v)
}

func TestEventStore(t *testing.T) {
	ctx := context.Background()
	database := openDB(t)
	events := NewEventStore(database)
	fields := NewFieldStore(database)

	host, err := fields.Host(ctx, "due")
	require.NoError(t, err)

	var recordErr error
	now := calendar.FixedClock(calendar.At(calendar.MustDate(2024, time.June, 15), calendar.Midnight))
	s := selection.New(selection.Options{
		Mode:     selection.DateOnly,
		Host:     host,
		Clock:    now,
		Observer: events.Observer(ctx, "due", func(err error) { recordErr = err }),
	})
	require.True(t, s.ClickDay(calendar.MustDate(2024, time.June, 20)))
	require.NoError(t, recordErr)

	require.NoError(t, events.Record(ctx, "due", selection.Event{DialogID: "manual", Kind: selection.EventClear, Mode: selection.DateOnly}))
	require.NoError(t, events.Record(ctx, "other", selection.Event{DialogID: "x", Kind: selection.EventDiscard}))

	history, err := events.History(ctx, "due", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "manual", history[0].DialogID)
	assert.Equal(t, selection.EventClear, history[0].Kind)
	assert.Equal(t, s.ID(), history[1].DialogID)
	assert.Equal(t, selection.EventCommit, history[1].Kind)
	assert.Equal(t, "2024-06-20", history[1].Value)
	assert.Equal(t, "date", history[1].Mode)
	assert.True(t, history[1].Changed)

	limited, err := events.History(ctx, "due", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
