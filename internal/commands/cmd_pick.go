package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/datepicker/internal/core/config"
	"github.com/colonyops/datepicker/internal/core/logging"
	"github.com/colonyops/datepicker/internal/core/selection"
	"github.com/colonyops/datepicker/internal/data/stores"
	"github.com/colonyops/datepicker/internal/printer"
	"github.com/colonyops/datepicker/internal/tui/picker"
	"github.com/colonyops/datepicker/pkg/kv"
)

type PickCmd struct {
	app *App

	// flags
	picker    string
	field     string
	paired    string
	value     string
	ephemeral bool

	// run swaps out the terminal program in tests.
	run func(m tea.Model) error
}

// NewPickCmd creates a new pick command
func NewPickCmd(app *App) *PickCmd {
	return &PickCmd{app: app, run: runProgram}
}

// Register adds the pick command to the application
func (cmd *PickCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "pick",
		Usage:     "Open a picker dialog for a stored field",
		UsageText: "datepicker pick [--picker NAME] --field FIELD [--paired FIELD] [--ephemeral]",
		Description: `Opens the picker dialog in the terminal. The dialog starts from the stored
value of --field and writes the chosen value back when it closes.

--paired names a sibling field: a date picker reads its time to position the
cursor, a time picker reads its date to decide which hours are selectable.

With --ephemeral nothing is read from or written to the database; the dialog
starts from --value and the result is only printed.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "picker",
				Aliases:     []string{"p"},
				Usage:       "configured picker name",
				Value:       config.DefaultPicker,
				Destination: &cmd.picker,
			},
			&cli.StringFlag{
				Name:        "field",
				Aliases:     []string{"f"},
				Usage:       "host field name",
				Destination: &cmd.field,
			},
			&cli.StringFlag{
				Name:        "paired",
				Usage:       "sibling field holding the paired date or time",
				Destination: &cmd.paired,
			},
			&cli.StringFlag{
				Name:        "value",
				Usage:       "starting value for --ephemeral",
				Destination: &cmd.value,
			},
			&cli.BoolFlag{
				Name:        "ephemeral",
				Usage:       "keep the value in memory only",
				Destination: &cmd.ephemeral,
			},
		},
		ShellComplete: FieldNameCompleter(cmd.app),
		Action:        cmd.runPick,
	})

	return app
}

func (cmd *PickCmd) runPick(ctx context.Context, c *cli.Command) error {
	if cmd.field == "" && !cmd.ephemeral {
		return fmt.Errorf("--field is required unless --ephemeral is set")
	}

	mode, cfg, err := cmd.app.Config.Picker(cmd.picker)
	if err != nil {
		return err
	}

	ctx = logging.WithField(ctx, cmd.field)
	host, paired, observers, err := cmd.bind(ctx)
	if err != nil {
		return err
	}

	state := selection.New(selection.Options{
		Mode:     mode,
		Config:   cfg,
		Host:     host,
		Paired:   paired,
		Clock:    cmd.app.clock(),
		Observer: observers,
	})
	ctx = logging.WithDialogID(ctx, state.ID())
	log.Debug().Ctx(ctx).Str("picker", cmd.picker).Str("mode", mode.String()).Msg("dialog opened")

	release := cmd.app.holdLogs()
	err = cmd.run(picker.New(state, picker.Options{QuitOnClose: true}))
	release()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	if fh, ok := host.(*stores.FieldHost); ok && fh.Err() != nil {
		return fmt.Errorf("save field %q: %w", cmd.field, fh.Err())
	}

	return cmd.report(ctx, c, state, host.Get())
}

// bind resolves the host and paired fields and the observers of the dialog.
func (cmd *PickCmd) bind(ctx context.Context) (selection.HostField, selection.HostField, selection.Observers, error) {
	observers := selection.Observers{selection.LogObserver{Logger: logging.Field(cmd.field)}}

	if cmd.ephemeral {
		mem := kv.New[string, string]()
		mem.Set(cmd.field, cmd.value)
		return kv.Bind(mem, cmd.field), nil, observers, nil
	}

	host, err := cmd.app.Fields.Host(ctx, cmd.field)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load field %q: %w", cmd.field, err)
	}

	var paired selection.HostField
	if cmd.paired != "" {
		if paired, err = cmd.app.Fields.Host(ctx, cmd.paired); err != nil {
			return nil, nil, nil, fmt.Errorf("load paired field %q: %w", cmd.paired, err)
		}
	}

	observers = append(observers, cmd.app.Events.Observer(ctx, cmd.field, func(err error) {
		log.Warn().Ctx(ctx).Err(err).Msg("failed to record picker event")
	}))
	return host, paired, observers, nil
}

func (cmd *PickCmd) report(ctx context.Context, c *cli.Command, state *selection.State, value string) error {
	p := printer.Ctx(ctx)
	if !state.Changed() {
		p.Infof("%s unchanged", cmd.fieldLabel())
		if cmd.ephemeral && value != "" {
			_, _ = fmt.Fprintln(c.Root().Writer, value)
		}
		return nil
	}

	if value == "" {
		p.Successf("%s cleared", cmd.fieldLabel())
		return nil
	}

	p.Success(fmt.Sprintf("%s set", cmd.fieldLabel()), thaiText(value))
	_, err := fmt.Fprintln(c.Root().Writer, value)
	return err
}

func (cmd *PickCmd) fieldLabel() string {
	if cmd.field == "" {
		return "value"
	}
	return cmd.field
}

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
