package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/datepicker/internal/core/textcodec"
	"github.com/colonyops/datepicker/pkg/iojson"
	"github.com/colonyops/datepicker/pkg/tmpl"
)

type FormatCmd struct {
	app *App

	// flags
	kind       string
	relative   bool
	jsonOutput bool
	template   string
}

// NewFormatCmd creates a new format command
func NewFormatCmd(app *App) *FormatCmd {
	return &FormatCmd{app: app}
}

// FormatResult is one formatted canonical value.
type FormatResult struct {
	Value   string         `json:"value"`
	Kind    textcodec.Kind `json:"kind"`
	Pattern string         `json:"pattern"`
	Thai    string         `json:"thai"`
}

// Register adds the format command to the application
func (cmd *FormatCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "format",
		Usage:     "Render canonical values as pattern text and Thai labels",
		UsageText: "datepicker format [--kind date|time|datetime] [--relative] [--json|--template T] <value>...",
		Description: `Renders canonical text (2024-06-15, 09:30, 2024-06-15T09:30) the way a
picker field displays it. The kind is detected from the text unless --kind is given.

--relative shows today and yesterday as words instead of a date.

--template renders each value with a Go template over .Value, .Kind, .Pattern
and .Thai, for example '{{ .Pattern }} ({{ .Thai }})'. The functions shq, join,
upper and default are available.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "kind",
				Aliases:     []string{"k"},
				Usage:       "value kind (date, time, datetime); detected when empty",
				Destination: &cmd.kind,
			},
			&cli.BoolFlag{
				Name:        "relative",
				Aliases:     []string{"r"},
				Usage:       "label today and yesterday relative to now",
				Destination: &cmd.relative,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.StringFlag{
				Name:        "template",
				Aliases:     []string{"t"},
				Usage:       "render each value with a Go template",
				Destination: &cmd.template,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *FormatCmd) run(_ context.Context, c *cli.Command) error {
	if !c.Args().Present() {
		return fmt.Errorf("no value given")
	}

	results := make([]FormatResult, 0, c.Args().Len())
	for _, v := range c.Args().Slice() {
		r, err := cmd.format(v)
		if err != nil {
			return err
		}
		results = append(results, r)
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		for _, r := range results {
			if err := iojson.WriteLine(out, r); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
		}
		return nil
	}

	if cmd.template != "" {
		for _, r := range results {
			line, err := tmpl.Render(cmd.template, r)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, line)
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, r := range results {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", r.Value, r.Pattern, r.Thai)
	}
	return w.Flush()
}

func (cmd *FormatCmd) format(value string) (FormatResult, error) {
	kinds := valueKinds
	if cmd.kind != "" {
		kind := textcodec.Kind(cmd.kind)
		if !kind.IsValid() {
			return FormatResult{}, fmt.Errorf("unknown kind %q", cmd.kind)
		}
		kinds = []textcodec.Kind{kind}
	}

	for _, kind := range kinds {
		pattern := textcodec.ISOToPattern(kind, value)
		if pattern == "" {
			continue
		}
		return FormatResult{
			Value:   value,
			Kind:    kind,
			Pattern: pattern,
			Thai:    cmd.thai(kind, value),
		}, nil
	}
	return FormatResult{}, fmt.Errorf("%q is not canonical %s text", value, kindList(kinds))
}

func (cmd *FormatCmd) thai(kind textcodec.Kind, value string) string {
	if !cmd.relative {
		return textcodec.ISOToThai(kind, value)
	}

	now := cmd.app.clock().Now()
	switch kind {
	case textcodec.KindDate:
		d, _ := textcodec.ParseISODate(value)
		return textcodec.ThaiDateRelative(d, now)
	case textcodec.KindDateTime:
		i, _ := textcodec.ParseISODateTime(value)
		return textcodec.ThaiDateTimeRelative(i, now)
	default:
		return textcodec.ISOToThai(kind, value)
	}
}

func kindList(kinds []textcodec.Kind) string {
	if len(kinds) == 1 {
		return string(kinds[0])
	}
	return "date, time or datetime"
}
