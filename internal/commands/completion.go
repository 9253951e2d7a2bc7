package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// FieldNameCompleter returns a ShellCompleteFunc that suggests stored host
// field names as positional completions.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func FieldNameCompleter(app *App) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if completingFlag(cmd) {
			cli.DefaultCompleteWithFlags(ctx, cmd)
			return
		}
		if app.Fields == nil {
			return
		}

		fields, err := app.Fields.List(ctx)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, f := range fields {
			_, _ = fmt.Fprintln(w, f.Name)
		}
	}
}

// PickerNameCompleter suggests configured picker names.
func PickerNameCompleter(app *App) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if completingFlag(cmd) {
			cli.DefaultCompleteWithFlags(ctx, cmd)
			return
		}
		if app.Config == nil {
			return
		}

		w := cmd.Root().Writer
		for _, name := range app.Config.PickerNames() {
			_, _ = fmt.Fprintln(w, name)
		}
	}
}

func completingFlag(cmd *cli.Command) bool {
	args := cmd.Args()
	if !args.Present() {
		return false
	}
	last := args.Slice()[args.Len()-1]
	return len(last) > 0 && last[0] == '-'
}
