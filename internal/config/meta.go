package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "sound_enabled"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 100
			case "upstream_timeout_seconds":
				return DefaultUpstreamTimeoutSeconds
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "activitywatch_url":
			return DefaultActivityWatchURL
		case "db_path":
			return "~/.focusboss/focusboss.db"
		case "listen_addr":
			return DefaultListenAddr
		case "openai_api_key":
			return "sk-..."
		case "openai_base_url":
			return "https://api.openai.com/v1"
		case "openai_model":
			return "gpt-3.5-turbo"
		case "personas_file":
			return "~/.focusboss/personas.yaml"
		default:
			return "example"
		}
	}

	return nil
}
