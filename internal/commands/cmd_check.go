package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/datepicker/internal/core/calendar"
	"github.com/colonyops/datepicker/internal/core/config"
	"github.com/colonyops/datepicker/internal/core/selection"
	"github.com/colonyops/datepicker/internal/core/textcodec"
	"github.com/colonyops/datepicker/internal/printer"
	"github.com/colonyops/datepicker/pkg/iojson"
)

// nextAllowedSearch bounds the scan for the next selectable day.
const nextAllowedSearch = 366

type CheckCmd struct {
	app *App

	// flags
	picker     string
	jsonOutput bool
}

// NewCheckCmd creates a new check command
func NewCheckCmd(app *App) *CheckCmd {
	return &CheckCmd{app: app}
}

// CheckResult reports how a picker's constraints treat one value.
type CheckResult struct {
	Input            string `json:"input"`
	Picker           string `json:"picker"`
	Value            string `json:"value,omitempty"`
	Allowed          bool   `json:"allowed"`
	DayForbidden     bool   `json:"day_forbidden"`
	MonthForbidden   bool   `json:"month_forbidden"`
	YearForbidden    bool   `json:"year_forbidden"`
	InstantForbidden bool   `json:"instant_forbidden"`
	NextAllowedDay   string `json:"next_allowed_day,omitempty"`
}

// Register adds the check command to the application
func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "check",
		Usage:     "Check values against a picker's constraints",
		UsageText: "datepicker check [--picker NAME] [--json] <value>...",
		Description: `Reports whether each value could be selected in the named picker, and at
which level (day, month, year, exact time) it is blocked. Values may be
canonical or typed pattern text.

Exits 1 when any value is not allowed.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "picker",
				Aliases:     []string{"p"},
				Usage:       "configured picker name",
				Value:       config.DefaultPicker,
				Destination: &cmd.picker,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		ShellComplete: PickerNameCompleter(cmd.app),
		Action:        cmd.run,
	})

	return app
}

func (cmd *CheckCmd) run(_ context.Context, c *cli.Command) error {
	if !c.Args().Present() {
		return fmt.Errorf("no value given")
	}

	mode, cfg, err := cmd.app.Config.Picker(cmd.picker)
	if err != nil {
		return err
	}

	codec := cmd.app.Codec()
	blocked := 0
	out := c.Root().Writer
	p := printer.New(out)

	for _, in := range c.Args().Slice() {
		r := cmd.check(codec, mode, cfg, in)
		if !r.Allowed {
			blocked++
		}

		if cmd.jsonOutput {
			if err := iojson.WriteLine(out, r); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			continue
		}
		printCheck(p, r)
	}

	if blocked > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// check resolves input to an instant of the picker's mode. A date is
// checked at the start of its day range; a time against today.
func (cmd *CheckCmd) check(codec *textcodec.Codec, mode selection.Mode, cfg selection.PickerConfig, input string) CheckResult {
	r := CheckResult{Input: input, Picker: cmd.picker}

	i, ok := resolve(codec, mode, input)
	if !ok {
		return r
	}

	cons := cfg.Constraints
	switch mode {
	case selection.DateOnly:
		r.Value = textcodec.FormatISODate(i.Date)
	case selection.TimeOnly:
		r.Value = textcodec.FormatISOTime(i.TimeOfDay)
	default:
		r.Value = textcodec.FormatISODateTime(i)
	}

	r.DayForbidden = cons.DayForbidden(i.Date)
	r.MonthForbidden = cons.MonthForbidden(i.Date)
	r.YearForbidden = cons.YearForbidden(i.Date)
	if mode.HasTime() {
		r.InstantForbidden = cons.InstantForbidden(i)
	}
	r.Allowed = !r.DayForbidden && !r.InstantForbidden
	if mode == selection.TimeOnly {
		r.Allowed = !r.InstantForbidden
	}

	if !r.Allowed && mode.HasDate() {
		if d, ok := cons.FirstAllowedDay(i.Date, nextAllowedSearch); ok {
			r.NextAllowedDay = textcodec.FormatISODate(d)
		}
	}
	return r
}

// resolve reads canonical text first, then pattern text.
func resolve(codec *textcodec.Codec, mode selection.Mode, input string) (calendar.Instant, bool) {
	now := codec.Now()
	switch mode {
	case selection.DateOnly:
		d, ok := textcodec.ParseISODate(input)
		if !ok {
			d, ok = codec.ParseDate(input)
		}
		return calendar.At(d, calendar.TimeOfDay{}), ok
	case selection.TimeOnly:
		t, ok := textcodec.ParseISOTime(input)
		if !ok {
			t, ok = codec.ParseTime(input)
		}
		return calendar.At(now.Date, t), ok
	default:
		i, ok := textcodec.ParseISODateTime(input)
		if !ok {
			i, ok = codec.ParseDateTime(input)
		}
		return i, ok
	}
}

func printCheck(p *printer.Printer, r CheckResult) {
	switch {
	case r.Value == "":
		p.FailItem(r.Input, "does not parse")
		return
	case r.Allowed:
		p.CheckItem(r.Value, "allowed")
		return
	}

	reasons := forbiddenLevels(r)
	detail := "blocked by " + reasons
	if r.NextAllowedDay != "" {
		detail += ", next allowed day " + r.NextAllowedDay
	}
	p.FailItem(r.Value, detail)
}

func forbiddenLevels(r CheckResult) string {
	var levels []string
	if r.YearForbidden {
		levels = append(levels, "year")
	}
	if r.MonthForbidden {
		levels = append(levels, "month")
	}
	if r.DayForbidden {
		levels = append(levels, "day")
	}
	if r.InstantForbidden {
		levels = append(levels, "time")
	}
	if len(levels) == 0 {
		return "constraints"
	}
	return strings.Join(levels, "/")
}
