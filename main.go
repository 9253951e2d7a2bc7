package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/datepicker/internal/commands"
	"github.com/colonyops/datepicker/internal/core/calendar"
	"github.com/colonyops/datepicker/internal/core/config"
	"github.com/colonyops/datepicker/internal/core/logging"
	"github.com/colonyops/datepicker/internal/core/styles"
	"github.com/colonyops/datepicker/internal/data/db"
	"github.com/colonyops/datepicker/internal/data/stores"
	"github.com/colonyops/datepicker/internal/printer"
	"github.com/colonyops/datepicker/pkg/logutils"
	"github.com/colonyops/datepicker/pkg/utils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

// openDatabase opens the field database, moving a corrupted file aside and
// retrying once.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	opts := db.OpenOptions{BusyTimeout: cfg.Database.BusyTimeout}

	database, err := db.Open(cfg.DataDir, opts)
	if err == nil || !stores.IsCorruptionError(err) {
		return database, err
	}

	log.Warn().Err(err).Str("data_dir", cfg.DataDir).Msg("database is corrupted, starting a fresh one")
	if err := stores.RecoverFromCorruption(cfg.DataDir); err != nil {
		return nil, err
	}
	return db.Open(cfg.DataDir, opts)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		database  *db.DB
		app       = &commands.App{}
	)

	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "datepicker",
		Usage:     "Thai Buddhist-era date and time picker",
		UsageText: "datepicker [global options] command [command options]",
		Description: `datepicker parses, formats and picks dates and times written with
Buddhist-era years (15/06/2567 09:30) and stores them as canonical text
(2024-06-15T09:30) in named host fields.

Pickers are configured by name in the config file: their mode, min and max
bounds, disabled weekdays and days of the month, and the transform applied
to a chosen value.

Run 'datepicker pick --field NAME' to open a picker dialog in the terminal.
Run 'datepicker parse 15062567' to see how typed text is read.`,
		Version:               build(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("DATEPICKER_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file, or 'auto' for the default location (logs go to stderr when unset)",
				Sources:     cli.EnvVars("DATEPICKER_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("DATEPICKER_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("DATEPICKER_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logFile := flags.LogFile
			if logFile == "auto" {
				logFile = commands.DefaultLogFile()
			}

			// Console logs are held while a full-screen command runs.
			var console *utils.HeldWriter
			var logOut io.Writer = os.Stderr
			if logFile == "" {
				console = utils.NewHeldWriter(os.Stderr)
				logOut = console
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile, logOut)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			// Load validates the theme name.
			_ = styles.UseTheme(cfg.Theme)

			database, err = openDatabase(cfg)
			if err != nil {
				return ctx, fmt.Errorf("open database: %w", err)
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*app = commands.App{
				Config:    cfg,
				Fields:    stores.NewFieldStore(database),
				Events:    stores.NewEventStore(database),
				Clock:     calendar.SystemClock{},
				LogOutput: console,
			}

			return printer.WithPrinter(ctx, printer.New(os.Stderr)), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if app.LogOutput != nil {
				_ = app.LogOutput.Release()
			}

			// Close database connection
			if database != nil {
				if err := database.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close database")
					return err
				}
			}

			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
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

	exitCode := 0
	runErr := root.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
