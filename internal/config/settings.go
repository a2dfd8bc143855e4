package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
)

// Defaults used when neither flags, environment nor settings.json provide a value
const (
	DefaultActivityWatchURL       = "http://localhost:5600"
	DefaultListenAddr             = "127.0.0.1:5000"
	DefaultUpstreamTimeoutSeconds = 5
)

// Settings represents the structure of $FOCUSBOSS_HOME/settings.json.
// Omitted fields fall back to defaults.
type Settings struct {
	ActivityWatchURL       string `json:"activitywatch_url,omitempty"`
	DBPath                 string `json:"db_path,omitempty"`
	Debug                  *bool  `json:"debug,omitempty"`
	ListenAddr             string `json:"listen_addr,omitempty"`
	MaxLogFiles            *int   `json:"max_log_files,omitempty"`
	OpenAIAPIKey           string `json:"openai_api_key,omitempty"`
	OpenAIBaseURL          string `json:"openai_base_url,omitempty"`
	OpenAIModel            string `json:"openai_model,omitempty"`
	PersonasFile           string `json:"personas_file,omitempty"`
	SoundEnabled           *bool  `json:"sound_enabled,omitempty"`
	UpstreamTimeoutSeconds *int   `json:"upstream_timeout_seconds,omitempty"`
}

// LoadSettings loads settings from $FOCUSBOSS_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from a specific file
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}
	if settings.PersonasFile != "" {
		settings.PersonasFile = ExpandPath(settings.PersonasFile)
	}

	return &settings, nil
}

// SaveSettings saves settings to $FOCUSBOSS_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// GetActivityWatchURL returns the configured ActivityWatch URL or the default
func (s *Settings) GetActivityWatchURL() string {
	if s.ActivityWatchURL != "" {
		return s.ActivityWatchURL
	}
	return DefaultActivityWatchURL
}

// GetDBPath returns the configured database path or the default
func (s *Settings) GetDBPath() string {
	if s.DBPath != "" {
		return s.DBPath
	}
	return GetDBPath()
}

// GetListenAddr returns the configured listen address or the default
func (s *Settings) GetListenAddr() string {
	if s.ListenAddr != "" {
		return s.ListenAddr
	}
	return DefaultListenAddr
}

// GetOpenAIAPIKey prefers settings.json, then OPENAI_API_KEY
func (s *Settings) GetOpenAIAPIKey() string {
	if s.OpenAIAPIKey != "" {
		return s.OpenAIAPIKey
	}
	return os.Getenv("OPENAI_API_KEY")
}

// GetPersonasFile returns the configured personas file or the default location
func (s *Settings) GetPersonasFile() string {
	if s.PersonasFile != "" {
		return s.PersonasFile
	}
	return GetPersonasPath()
}

// IsSoundEnabled defaults to true
func (s *Settings) IsSoundEnabled() bool {
	return s.SoundEnabled == nil || *s.SoundEnabled
}

// GetUpstreamTimeout returns the timeout for ActivityWatch and OpenAI calls
func (s *Settings) GetUpstreamTimeout() time.Duration {
	if s.UpstreamTimeoutSeconds != nil && *s.UpstreamTimeoutSeconds > 0 {
		return time.Duration(*s.UpstreamTimeoutSeconds) * time.Second
	}
	return DefaultUpstreamTimeoutSeconds * time.Second
}
