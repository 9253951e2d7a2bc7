package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/datepicker/internal/core/config"
	"github.com/colonyops/datepicker/internal/core/styles"
	"github.com/colonyops/datepicker/internal/printer"
)

var weekdayOptions = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

type InitCmd struct {
	flags *Flags

	// flags
	yes      bool
	force    bool
	theme    string
	mode     string
	weekdays []string
}

// NewInitCmd creates a new init command.
func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

// Register adds the init command to the application.
func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Write a starter config file",
		UsageText: "datepicker init [--yes] [--force] [--theme NAME] [--mode MODE] [--disable-weekday DAY]...",
		Description: `Asks for a theme and the default picker's mode and disabled weekdays, then
writes the config file. An existing file is backed up to <config>.bak.

With --yes no questions are asked and the flag values are used.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip prompts and use flag values",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "overwrite an existing config without asking",
				Destination: &cmd.force,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "color theme (" + strings.Join(styles.ThemeNames(), ", ") + ")",
				Value:       styles.DefaultTheme,
				Destination: &cmd.theme,
			},
			&cli.StringFlag{
				Name:        "mode",
				Usage:       "default picker mode (date, time, datetime)",
				Value:       "datetime",
				Destination: &cmd.mode,
			},
			&cli.StringSliceFlag{
				Name:        "disable-weekday",
				Usage:       "weekday the default picker refuses (repeatable)",
				Destination: &cmd.weekdays,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *InitCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)
	path := cmd.flags.ConfigPath

	if configExists(path) && !cmd.force {
		if cmd.yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", path)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(path + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return abortedOr(err)
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	if !cmd.yes {
		if err := cmd.prompt(); err != nil {
			return abortedOr(err)
		}
	}

	cfg := starterConfig(cmd.theme, cmd.mode, cmd.weekdays)

	backupPath, err := backupConfig(path)
	if err != nil {
		return fmt.Errorf("backup config: %w", err)
	}
	if backupPath != "" {
		p.Successf("Backed up config to: %s", backupPath)
	}

	if err := writeConfig(cfg, path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", path)

	p.Printf("")
	p.Section("Checks")
	loaded, err := config.Load(path, cmd.flags.DataDir)
	if err != nil {
		p.FailItem("Config loads", err.Error())
		return cli.Exit("", 1)
	}
	p.CheckItem("Config loads", "")
	if err := loaded.ValidateDeep(path); err != nil {
		p.FailItem("Config validates", err.Error())
		return cli.Exit("", 1)
	}
	p.CheckItem("Config validates", fmt.Sprintf("%d picker(s)", len(loaded.PickerNames())))

	p.Printf("")
	p.Printf("Run 'datepicker pick --field NAME' to open the default picker.")
	return nil
}

func (cmd *InitCmd) prompt() error {
	themeOptions := huh.NewOptions(styles.ThemeNames()...)
	modeOptions := huh.NewOptions("datetime", "date", "time")
	dayOptions := huh.NewOptions(weekdayOptions...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&cmd.theme),
			huh.NewSelect[string]().
				Title("Default picker mode").
				Description("What the default picker produces").
				Options(modeOptions...).
				Value(&cmd.mode),
			huh.NewMultiSelect[string]().
				Title("Disabled weekdays").
				Description("Days the default picker refuses").
				Options(dayOptions...).
				Value(&cmd.weekdays),
		),
	).Run()
}

func abortedOr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return fmt.Errorf("form: %w", err)
}

// starterConfig builds the config init writes. Database settings are left
// to their defaults.
func starterConfig(theme, mode string, weekdays []string) config.Config {
	return config.Config{
		Theme: theme,
		Pickers: map[string]config.PickerSpec{
			config.DefaultPicker: {Mode: mode, DisabledWeekdays: weekdays},
		},
	}
}

func writeConfig(cfg config.Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func configExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// backupConfig copies an existing config to <path>.bak. It returns "" when
// there was nothing to back up.
func backupConfig(path string) (string, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read existing config: %w", err)
	}

	backupPath := path + ".bak"
	if err := os.WriteFile(backupPath, content, 0o644); err != nil {
		return "", fmt.Errorf("create backup: %w", err)
	}
	return backupPath, nil
}
