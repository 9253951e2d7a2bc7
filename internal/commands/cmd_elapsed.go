package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/datepicker/internal/core/textcodec"
)

type ElapsedCmd struct {
	app *App
}

// NewElapsedCmd creates a new elapsed command
func NewElapsedCmd(app *App) *ElapsedCmd {
	return &ElapsedCmd{app: app}
}

// Register adds the elapsed command to the application
func (cmd *ElapsedCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "elapsed",
		Usage:     "Show the hours and minutes between two datetimes",
		UsageText: "datepicker elapsed <from> [to]",
		Description: `Prints the time between two canonical datetimes in Thai, e.g. "9 ชั่วโมง 1 นาที".
The end defaults to now. The result is floored to whole minutes.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ElapsedCmd) run(_ context.Context, c *cli.Command) error {
	args := c.Args()
	if args.Len() < 1 || args.Len() > 2 {
		return fmt.Errorf("expected <from> [to]")
	}

	from, ok := textcodec.ParseISODateTime(args.Get(0))
	if !ok {
		return fmt.Errorf("%q is not canonical datetime text", args.Get(0))
	}
	to := cmd.app.clock().Now()
	if args.Len() == 2 {
		if to, ok = textcodec.ParseISODateTime(args.Get(1)); !ok {
			return fmt.Errorf("%q is not canonical datetime text", args.Get(1))
		}
	}
	if to.Before(from) {
		from, to = to, from
	}

	text := textcodec.DurationHM(to.Time().Sub(from.Time()))
	if text == "" {
		text = "0 นาที"
	}
	_, err := fmt.Fprintln(c.Root().Writer, text)
	return err
}
