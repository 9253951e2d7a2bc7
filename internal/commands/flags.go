package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/datepicker/internal/core/calendar"
	"github.com/colonyops/datepicker/internal/core/config"
	"github.com/colonyops/datepicker/internal/core/textcodec"
	"github.com/colonyops/datepicker/internal/data/stores"
	"github.com/colonyops/datepicker/pkg/utils"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
}

// App holds the dependencies shared by commands. main populates it in the
// Before hook; commands keep a pointer from registration time.
type App struct {
	Config *config.Config
	Fields *stores.FieldStore
	Events *stores.EventStore
	Clock  calendar.Clock

	// LogOutput is the console log writer. Full-screen commands hold it
	// while they run. Nil when logging to a file.
	LogOutput *utils.HeldWriter
}

// Codec returns a text codec resolving two-digit years and "now" against
// the app clock.
func (a *App) Codec() *textcodec.Codec {
	return textcodec.New(a.clock())
}

func (a *App) clock() calendar.Clock {
	if a.Clock == nil {
		return calendar.SystemClock{}
	}
	return a.Clock
}

// holdLogs buffers console logs until the returned func is called.
func (a *App) holdLogs() func() {
	if a.LogOutput == nil {
		return func() {}
	}
	a.LogOutput.Hold()
	return func() { _ = a.LogOutput.Release() }
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "datepicker", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "datepicker")
}

// DefaultLogFile returns the log file used when --log-file is "auto".
// On macOS: ~/Library/Logs/datepicker/datepicker.log
// On Linux: $XDG_STATE_HOME/datepicker/datepicker.log (defaults to ~/.local/state/datepicker/datepicker.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "datepicker", "datepicker.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "datepicker", "datepicker.log")
	}

	return filepath.Join(home, ".local", "state", "datepicker", "datepicker.log")
}
