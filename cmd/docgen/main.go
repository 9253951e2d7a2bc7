// Command docgen generates CLI reference documentation from the datepicker
// command definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/datepicker/internal/commands"
)

func main() {
	flags := &commands.Flags{}
	app := &commands.App{}

	root := &cli.Command{
		Name:      "datepicker",
		Usage:     "Thai Buddhist-era date and time picker",
		UsageText: "datepicker [global options] command [command options]",
		Description: `datepicker parses, formats and picks dates and times written with
Buddhist-era years (15/06/2567 09:30) and stores them as canonical text
(2024-06-15T09:30) in named host fields.

Run 'datepicker pick --field NAME' to open a picker dialog in the terminal.
Run 'datepicker parse 15062567' to see how typed text is read.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("DATEPICKER_LOG_LEVEL"),
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "path to log file, or 'auto' for the default location (logs go to stderr when unset)",
				Sources: cli.EnvVars("DATEPICKER_LOG_FILE"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Sources: cli.EnvVars("DATEPICKER_CONFIG"),
				Value:   commands.DefaultConfigPath(),
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "path to data directory",
				Sources: cli.EnvVars("DATEPICKER_DATA_DIR"),
				Value:   commands.DefaultDataDir(),
			},
		},
	}

	root = commands.NewParseCmd(app).Register(root)
	root = commands.NewFormatCmd(app).Register(root)
	root = commands.NewElapsedCmd(app).Register(root)
	root = commands.NewCheckCmd(app).Register(root)
	root = commands.NewPickCmd(app).Register(root)
	root = commands.NewFormCmd(app).Register(root)
	root = commands.NewFieldCmd(app).Register(root)
	root = commands.NewConfigValidateCmd(flags, app).Register(root)
	root = commands.NewInitCmd(flags).Register(root)
	root = commands.NewDocCmd().Register(root)

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}
