package commands

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/datepicker/internal/core/calendar"
	"github.com/colonyops/datepicker/internal/core/config"
	"github.com/colonyops/datepicker/internal/data/db"
	"github.com/colonyops/datepicker/internal/data/stores"
	"github.com/colonyops/datepicker/internal/printer"
)

// testNow is a Saturday.
var testNow = calendar.At(calendar.MustDate(2024, 6, 15), calendar.TimeOfDay{Hour: 10, Minute: 30})

func newTestApp(t *testing.T, pickers map[string]config.PickerSpec) *App {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	for name, spec := range pickers {
		cfg.Pickers[name] = spec
	}

	database, err := db.Open(cfg.DataDir, db.DefaultOpenOptions())
	require.NoError(t, err, "Open")
	t.Cleanup(func() { _ = database.Close() })

	return &App{
		Config: &cfg,
		Fields: stores.NewFieldStore(database),
		Events: stores.NewEventStore(database),
		Clock:  calendar.FixedClock(testNow),
	}
}

type registrar interface {
	Register(app *cli.Command) *cli.Command
}

// runCmd runs one registered command and returns what it wrote to the
// root writer. Exit codes are returned as errors instead of exiting.
func runCmd(t *testing.T, r registrar, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := &cli.Command{
		Name:           "datepicker",
		Writer:         &out,
		ErrWriter:      io.Discard,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	root = r.Register(root)

	ctx := printer.WithPrinter(context.Background(), printer.New(io.Discard))
	err := root.Run(ctx, append([]string{"datepicker"}, args...))
	return out.String(), err
}
