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

func TestParseFormArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []formSpec
		wantErr string
	}{
		{
			name: "default picker",
			args: []string{"due", "start:day"},
			want: []formSpec{{name: "due", picker: config.DefaultPicker}, {name: "start", picker: "day"}},
		},
		{name: "empty", wantErr: "at least one field"},
		{name: "duplicate", args: []string{"due", "due:day"}, wantErr: "given twice"},
		{name: "no name", args: []string{":day"}, wantErr: "invalid field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFormArgs(tt.args)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormCmd_SubmitSavesChangedFields(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, map[string]config.PickerSpec{
		"day":  {Mode: "date"},
		"slot": {Mode: "time"},
	})
	require.NoError(t, app.Fields.Set(ctx, "at", "09:30"))

	cmd := NewFormCmd(app)
	// Pick today in the first field, keep the second, submit.
	cmd.run = tuitest.Script(
		tuitest.Ctrl('p'), tuitest.Key('.'),
		tuitest.Enter(),
		tuitest.Enter(),
	)

	_, err := runCmd(t, cmd, "form", "--pair", "due=at", "due:day", "at:slot")
	require.NoError(t, err)

	due, err := app.Fields.Value(ctx, "due")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", due)

	at, err := app.Fields.Value(ctx, "at")
	require.NoError(t, err)
	assert.Equal(t, "09:30", at)

	events, err := app.Events.History(ctx, "due", 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, selection.EventCommit, events[0].Kind)
}

func TestFormCmd_CancelSavesNothing(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, map[string]config.PickerSpec{"day": {Mode: "date"}})

	cmd := NewFormCmd(app)
	cmd.run = tuitest.Script(tuitest.Ctrl('p'), tuitest.Key('.'), tuitest.Esc())

	_, err := runCmd(t, cmd, "form", "due:day")
	require.NoError(t, err)

	due, err := app.Fields.Value(ctx, "due")
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestFormCmd_InvalidPair(t *testing.T) {
	app := newTestApp(t, map[string]config.PickerSpec{"day": {Mode: "date"}})

	tests := []struct {
		name string
		pair string
		want string
	}{
		{"unknown field", "due=other", "naming two form fields"},
		{"no separator", "due", "naming two form fields"},
		{"wrong modes", "a=due", "is a date field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewFormCmd(app)
			cmd.run = tuitest.Script()
			_, err := runCmd(t, cmd, "form", "--pair", tt.pair, "due:day", "a:day")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
