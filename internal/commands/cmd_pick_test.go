package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/datepicker/internal/core/config"
	"github.com/colonyops/datepicker/internal/core/selection"
	"github.com/colonyops/datepicker/pkg/tuitest"
)

func TestPickCmd(t *testing.T) {
	ctx := context.Background()
	pickers := map[string]config.PickerSpec{
		"day":  {Mode: "date"},
		"slot": {Mode: "time"},
	}

	t.Run("commits to the stored field", func(t *testing.T) {
		app := newTestApp(t, pickers)
		require.NoError(t, app.Fields.Set(ctx, "due", "2024-06-10"))

		cmd := NewPickCmd(app)
		cmd.run = tuitest.Script(tuitest.Right(), tuitest.Enter())

		out, err := runCmd(t, cmd, "pick", "--picker", "day", "--field", "due")
		require.NoError(t, err)
		assert.Equal(t, "2024-06-11\n", out)

		got, err := app.Fields.Value(ctx, "due")
		require.NoError(t, err)
		assert.Equal(t, "2024-06-11", got)

		events, err := app.Events.History(ctx, "due", 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.True(t, events[0].Changed)
	})

	t.Run("exit without a choice", func(t *testing.T) {
		app := newTestApp(t, pickers)

		cmd := NewPickCmd(app)
		cmd.run = tuitest.Script(tuitest.Down(), tuitest.Esc())

		out, err := runCmd(t, cmd, "pick", "--picker", "slot", "--field", "at")
		require.NoError(t, err)
		assert.Empty(t, out)

		got, err := app.Fields.Value(ctx, "at")
		require.NoError(t, err)
		assert.Empty(t, got)

		events, err := app.Events.History(ctx, "at", 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, selection.EventDiscard, events[0].Kind)
	})

	t.Run("ephemeral prints only", func(t *testing.T) {
		app := newTestApp(t, pickers)

		cmd := NewPickCmd(app)
		cmd.run = tuitest.Script(tuitest.Key('.'))

		out, err := runCmd(t, cmd, "pick", "--picker", "day", "--ephemeral", "--value", "2024-01-01")
		require.NoError(t, err)
		assert.Equal(t, "2024-06-15\n", out)

		fields, err := app.Fields.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, fields)
	})

	t.Run("field required", func(t *testing.T) {
		app := newTestApp(t, pickers)
		_, err := runCmd(t, NewPickCmd(app), "pick")
		assert.ErrorContains(t, err, "--field is required")
	})
}
