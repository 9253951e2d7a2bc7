package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/datepicker/internal/core/textcodec"
	"github.com/colonyops/datepicker/pkg/iojson"
)

type ParseCmd struct {
	app *App

	// flags
	kind       string
	jsonOutput bool

	stdin io.Reader
}

// NewParseCmd creates a new parse command
func NewParseCmd(app *App) *ParseCmd {
	return &ParseCmd{app: app}
}

// ParseResult is one parsed input.
type ParseResult struct {
	Input   string         `json:"input"`
	Kind    textcodec.Kind `json:"kind"`
	Valid   bool           `json:"valid"`
	Value   string         `json:"value,omitempty"`
	Pattern string         `json:"pattern,omitempty"`
	Thai    string         `json:"thai,omitempty"`
}

// Register adds the parse command to the application
func (cmd *ParseCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "parse",
		Usage:     "Parse loosely typed dates and times into canonical text",
		UsageText: "datepicker parse [--kind date|time|datetime] [--json] [text...]",
		Description: `Parses each argument the way a picker text field does: Buddhist-era years,
any of / - . : as separators, bare digit runs and hour shorthands.

With no arguments, lines are read from stdin when it is not a terminal.
Exits 1 when any input fails to parse.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "kind",
				Aliases:     []string{"k"},
				Usage:       "value kind (date, time, datetime)",
				Value:       string(textcodec.KindDate),
				Destination: &cmd.kind,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ParseCmd) run(_ context.Context, c *cli.Command) error {
	kind := textcodec.Kind(cmd.kind)
	if !kind.IsValid() {
		return fmt.Errorf("unknown kind %q", cmd.kind)
	}

	inputs, err := cmd.inputs(c)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no input: pass text arguments or pipe lines on stdin")
	}

	codec := cmd.app.Codec()
	results := make([]ParseResult, 0, len(inputs))
	failed := 0
	for _, in := range inputs {
		r := ParseResult{Input: in, Kind: kind}
		if iso := codec.PatternToISO(kind, in); iso != "" {
			r.Valid = true
			r.Value = iso
			r.Pattern = textcodec.ISOToPattern(kind, iso)
			r.Thai = textcodec.ISOToThai(kind, iso)
		} else {
			failed++
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
	} else {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, r := range results {
			value := r.Value
			if !r.Valid {
				value = "invalid"
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", r.Input, value, r.Thai)
		}
		_ = w.Flush()
	}

	if failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ParseCmd) inputs(c *cli.Command) ([]string, error) {
	if c.Args().Present() {
		return c.Args().Slice(), nil
	}

	reader := cmd.stdin
	if reader == nil {
		if iojson.StdinIsTerminal() {
			return nil, nil
		}
		reader = os.Stdin
	}

	var lines []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}
