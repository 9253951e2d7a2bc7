package commands

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/datepicker/internal/core/config"
	"github.com/colonyops/datepicker/internal/core/logging"
	"github.com/colonyops/datepicker/internal/core/selection"
	"github.com/colonyops/datepicker/internal/core/textcodec"
	"github.com/colonyops/datepicker/internal/data/stores"
	"github.com/colonyops/datepicker/internal/printer"
	"github.com/colonyops/datepicker/pkg/iojson"
)

type FieldCmd struct {
	app *App

	// set flags
	picker string
	paired string

	// shared flags
	jsonOutput bool

	// history flags
	limit int

	importReader iojson.FileReader[map[string]string]
}

// NewFieldCmd creates a new field command.
func NewFieldCmd(app *App) *FieldCmd {
	return &FieldCmd{app: app}
}

// Register adds the field command to the application.
func (cmd *FieldCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "field",
		Usage: "Manage stored host fields",
		Description: `Host fields are the named values pickers read when they open and write
when they commit. They hold canonical text (2024-06-15, 09:30,
2024-06-15T09:30) or nothing.`,
		Commands: []*cli.Command{
			cmd.lsCmd(),
			cmd.getCmd(),
			cmd.setCmd(),
			cmd.clearCmd(),
			cmd.historyCmd(),
			cmd.importCmd(),
		},
	})

	return app
}

func (cmd *FieldCmd) jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:        "json",
		Usage:       "output as JSON lines",
		Destination: &cmd.jsonOutput,
	}
}

func (cmd *FieldCmd) lsCmd() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "List stored fields",
		UsageText: "datepicker field ls [--json] [pattern...]",
		Description: `Lists every stored field, or those whose names match one of the glob
patterns (trip/*, **/start).`,
		Flags:  []cli.Flag{cmd.jsonFlag()},
		Action: cmd.runLs,
	}
}

func (cmd *FieldCmd) getCmd() *cli.Command {
	return &cli.Command{
		Name:          "get",
		Usage:         "Print a field's canonical value",
		UsageText:     "datepicker field get <name>",
		ShellComplete: FieldNameCompleter(cmd.app),
		Action:        cmd.runGet,
	}
}

func (cmd *FieldCmd) setCmd() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Set a field from typed or canonical text",
		UsageText: "datepicker field set [--picker NAME] [--paired FIELD] <name> <text>",
		Description: `Normalizes text the way a picker text field does on blur and stores the
result. Text that does not parse, or that the picker's constraints forbid,
is rejected and the stored value is left unchanged.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "picker",
				Aliases:     []string{"p"},
				Usage:       "configured picker name",
				Value:       config.DefaultPicker,
				Destination: &cmd.picker,
			},
			&cli.StringFlag{
				Name:        "paired",
				Usage:       "sibling field holding the date a time is checked against",
				Destination: &cmd.paired,
			},
		},
		ShellComplete: FieldNameCompleter(cmd.app),
		Action:        cmd.runSet,
	}
}

func (cmd *FieldCmd) clearCmd() *cli.Command {
	return &cli.Command{
		Name:          "clear",
		Usage:         "Delete stored fields",
		UsageText:     "datepicker field clear <name|pattern>...",
		ShellComplete: FieldNameCompleter(cmd.app),
		Action:        cmd.runClear,
	}
}

func (cmd *FieldCmd) historyCmd() *cli.Command {
	return &cli.Command{
		Name:      "history",
		Usage:     "Show picker dialogs recorded for a field",
		UsageText: "datepicker field history [--limit N] [--json] <name>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "maximum number of events (0 for all)",
				Value:       20,
				Destination: &cmd.limit,
			},
			cmd.jsonFlag(),
		},
		ShellComplete: FieldNameCompleter(cmd.app),
		Action:        cmd.runHistory,
	}
}

func (cmd *FieldCmd) importCmd() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Import fields from a JSON object",
		UsageText: "datepicker field import [-f file.json]",
		Description: `Reads a JSON object mapping field names to canonical values, e.g.
{"start": "2024-06-15", "start_time": "09:30"}, from --file or stdin.
All values are checked before anything is written.`,
		Flags:  []cli.Flag{cmd.importReader.Flag()},
		Action: cmd.runImport,
	}
}

func (cmd *FieldCmd) runLs(ctx context.Context, c *cli.Command) error {
	fields, err := cmd.matching(ctx, c.Args().Slice())
	if err != nil {
		return err
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		for _, f := range fields {
			if err := iojson.WriteLine(out, f); err != nil {
				return fmt.Errorf("encode field: %w", err)
			}
		}
		return nil
	}

	if len(fields) == 0 {
		printer.Ctx(ctx).Infof("No fields stored")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tVALUE\tDISPLAY\tUPDATED")
	for _, f := range fields {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Name, f.Value, thaiText(f.Value), f.UpdatedAt.Format(time.DateTime))
	}
	return w.Flush()
}

func (cmd *FieldCmd) runGet(ctx context.Context, c *cli.Command) error {
	name, err := oneArg(c, "name")
	if err != nil {
		return err
	}

	f, err := cmd.app.Fields.Get(ctx, name)
	if stores.IsNotFoundError(err) {
		return fmt.Errorf("field %q is not set", name)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.Root().Writer, f.Value)
	return err
}

func (cmd *FieldCmd) runSet(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected <name> <text>")
	}
	name, text := c.Args().Get(0), c.Args().Get(1)
	ctx = logging.WithField(ctx, name)

	mode, cfg, err := cmd.app.Config.Picker(cmd.picker)
	if err != nil {
		return err
	}

	paired := ""
	if cmd.paired != "" {
		if paired, err = cmd.app.Fields.Value(ctx, cmd.paired); err != nil {
			return fmt.Errorf("load paired field %q: %w", cmd.paired, err)
		}
	}

	// Canonical input is accepted too; it is shown as pattern text first
	// so that it goes through the same checks as typed text.
	if p := textcodec.ISOToPattern(mode.Kind(), text); p != "" {
		text = p
	}

	value := selection.NormalizeInput(cmd.app.Codec(), mode, text, cfg, paired)
	if value == "" {
		return fmt.Errorf("%q is not a valid or allowed %s for picker %q", text, mode, cmd.picker)
	}

	if err := cmd.app.Fields.Set(ctx, name, value); err != nil {
		return err
	}

	printer.Ctx(ctx).Success(fmt.Sprintf("%s set", name), thaiText(value))
	_, err = fmt.Fprintln(c.Root().Writer, value)
	return err
}

func (cmd *FieldCmd) runClear(ctx context.Context, c *cli.Command) error {
	if !c.Args().Present() {
		return fmt.Errorf("expected <name|pattern>")
	}
	p := printer.Ctx(ctx)

	for _, pattern := range c.Args().Slice() {
		fields, err := cmd.matching(ctx, []string{pattern})
		if err != nil {
			return err
		}
		if len(fields) == 0 {
			p.Infof("%s was not set", pattern)
			continue
		}

		for _, f := range fields {
			err := cmd.app.Fields.Delete(ctx, f.Name)
			if err != nil && !stores.IsNotFoundError(err) {
				return err
			}
			p.Successf("%s cleared", f.Name)
		}
	}
	return nil
}

// matching lists the stored fields whose names match any of the glob
// patterns. No patterns match everything.
func (cmd *FieldCmd) matching(ctx context.Context, patterns []string) ([]stores.Field, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}
	}

	fields, err := cmd.app.Fields.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	if len(patterns) == 0 {
		return fields, nil
	}

	var out []stores.Field
	for _, f := range fields {
		for _, pattern := range patterns {
			if doublestar.MatchUnvalidated(pattern, f.Name) {
				out = append(out, f)
				break
			}
		}
	}
	return out, nil
}

func (cmd *FieldCmd) runHistory(ctx context.Context, c *cli.Command) error {
	name, err := oneArg(c, "name")
	if err != nil {
		return err
	}

	events, err := cmd.app.Events.History(ctx, name, cmd.limit)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		for _, e := range events {
			if err := iojson.WriteLine(out, e); err != nil {
				return fmt.Errorf("encode event: %w", err)
			}
		}
		return nil
	}

	if len(events) == 0 {
		printer.Ctx(ctx).Infof("No picker dialogs recorded for %s", name)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "WHEN\tEVENT\tMODE\tVALUE\tCHANGED")
	for _, e := range events {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.CreatedAt.Format(time.DateTime), e.Kind, e.Mode, e.Value, strconv.FormatBool(e.Changed))
	}
	return w.Flush()
}

func (cmd *FieldCmd) runImport(ctx context.Context, _ *cli.Command) error {
	values, err := cmd.importReader.Read()
	if err != nil {
		return err
	}

	for name, value := range values {
		if value != "" && thaiText(value) == "" {
			return fmt.Errorf("field %q: %q is not canonical date, time or datetime text", name, value)
		}
	}

	if err := cmd.app.Fields.Import(ctx, values); err != nil {
		return err
	}

	printer.Ctx(ctx).Successf("Imported %d field(s)", len(values))
	return nil
}

func oneArg(c *cli.Command, name string) (string, error) {
	if c.Args().Len() != 1 {
		return "", fmt.Errorf("expected <%s>", name)
	}
	return c.Args().First(), nil
}
