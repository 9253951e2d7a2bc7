package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/datepicker/internal/core/config"
	"github.com/colonyops/datepicker/internal/printer"
	"github.com/colonyops/datepicker/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	app    *App
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags, app *App) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags, app: app}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "datepicker config validate [options]",
				Description: "Validates the configuration file, checking every picker's mode, bounds, disabled days, views, initial value and transform.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// validationError is the JSON shape of one failed config field.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationResult struct {
	Valid    bool                       `json:"valid"`
	Errors   []validationError          `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	result := validate(cmd.app.Config, cmd.flags.ConfigPath)

	if cmd.format == "json" {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, result); err != nil {
			return err
		}
	} else {
		cmd.outputText(printer.Ctx(ctx), result)
	}

	if !result.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func validate(cfg *config.Config, configPath string) validationResult {
	result := validationResult{Valid: true, Warnings: cfg.Warnings()}

	err := cfg.ValidateDeep(configPath)
	if err == nil {
		return result
	}

	result.Valid = false
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		result.Errors = []validationError{{Message: err.Error()}}
		return result
	}
	for _, fe := range fieldErrs {
		result.Errors = append(result.Errors, validationError{Field: fe.Field, Message: fe.Err.Error()})
	}
	return result
}

func (cmd *ConfigValidateCmd) outputText(p *printer.Printer, result validationResult) {
	pickers := cmd.app.Config.PickerNames()
	p.Section(fmt.Sprintf("Pickers (%d)", len(pickers)))
	for _, name := range pickers {
		p.Printf("  %s", name)
	}
	p.Printf("Database: %s", cmd.app.Config.DBPath())
	p.Printf("")

	for _, warn := range result.Warnings {
		p.Warnf("%s: %s", warn.Category, warn.Message)
		if warn.Item != "" {
			p.Printf("  Item: %s", warn.Item)
		}
	}

	for _, e := range result.Errors {
		if e.Field == "" {
			p.Errorf("%s", e.Message)
			continue
		}
		p.Errorf("%s: %s", e.Field, e.Message)
	}

	p.Printf("")
	if result.Valid {
		p.Successf("Configuration is valid")
		return
	}
	p.Errorf("%d error(s) found", len(result.Errors))
}
