package config

import (
	"os"
	"path/filepath"
)

// GetHome returns FOCUSBOSS_HOME or ~/.focusboss default
func GetHome() string {
	home := os.Getenv("FOCUSBOSS_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".focusboss"
		}
		return filepath.Join(homeDir, ".focusboss")
	}
	return ExpandPath(home)
}

// GetDBPath returns $FOCUSBOSS_HOME/focusboss.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "focusboss.db")
}

// GetSettingsPath returns $FOCUSBOSS_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetPersonasPath returns $FOCUSBOSS_HOME/personas.yaml
func GetPersonasPath() string {
	return filepath.Join(GetHome(), "personas.yaml")
}

// GetEnvPath returns $FOCUSBOSS_HOME/.env
func GetEnvPath() string {
	return filepath.Join(GetHome(), ".env")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
