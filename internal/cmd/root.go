package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"focusboss/internal/config"
	"focusboss/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	EnvFile     string           `help:"Load environment (e.g. OPENAI_API_KEY) from this file instead of $FOCUSBOSS_HOME/.env" type:"path"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`

	Serve        ServeCmd     `cmd:"serve" help:"Run the focus tracking server (default)" default:"1"`
	Consent      ConsentCmd   `cmd:"consent" help:"Allow focusboss to read your ActivityWatch data"`
	Prefs        PrefsCmd     `cmd:"prefs" help:"Show or change preferences"`
	Personas     PersonasCmd  `cmd:"personas" help:"List available personas"`
	History      HistoryCmd   `cmd:"history" help:"Show past days"`
	Day          DayCmd       `cmd:"day" help:"Start, check or end the day on a running server"`
	Watch        WatchCmd     `cmd:"watch" help:"Live dashboard for the current day"`
	SettingsMeta SettingsCmd  `cmd:"settings" help:"Show settings file location and available options"`
	PlaySound    PlaySoundCmd `cmd:"play-sound" help:"Play a notification sound" hidden:""`
	Ver          VersionCmd   `cmd:"version" help:"Show version information"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// Settings returns the loaded settings, never nil
func (c *CLI) Settings() *config.Settings {
	if c.settings == nil {
		c.settings = &config.Settings{}
	}
	return c.settings
}

// AfterApply loads the environment, initializes logging and wires the container.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) AfterApply() error {
	settings := c.Settings()

	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("FOCUSBOSS_MAX_LOG_FILES"); !hasEnv && settings.MaxLogFiles != nil {
			c.MaxLogFiles = *settings.MaxLogFiles
		}
	}
	if !c.Debug {
		if _, hasEnv := os.LookupEnv("FOCUSBOSS_DEBUG"); !hasEnv && settings.Debug != nil && *settings.Debug {
			c.Debug = true
		}
	}

	if err := loadEnvFile(c.EnvFile); err != nil {
		return err
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("FOCUSBOSS_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("FOCUSBOSS_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("FOCUSBOSS_MAX_LOG_FILES", strconv.Itoa(c.MaxLogFiles))
	}

	// Container is created after logging so GORM's logger has a target
	container, err := NewContainer(settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// loadEnvFile loads path, or $FOCUSBOSS_HOME/.env when empty. Existing
// environment variables win. A missing default file is not an error.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = config.GetEnvPath()
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	logging.Logger.Debug("Loaded env file", "path", path)
	return nil
}
