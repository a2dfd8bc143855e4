package harness

import (
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

// TestEnvironment provides an isolated test environment with its own FOCUSBOSS_HOME.
type TestEnvironment struct {
	Home     string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp FOCUSBOSS_HOME.
// Sound is disabled and ActivityWatch points at a closed port, so every period
// accounts as idle.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	env := &TestEnvironment{
		Home:     tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
	env.WriteSettings(map[string]any{
		"activitywatch_url":        "http://127.0.0.1:1",
		"sound_enabled":            false,
		"upstream_timeout_seconds": 1,
	})
	return env
}

// Environ returns environment variables configured for test isolation.
// It filters out FOCUSBOSS_* variables and the OpenAI key.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	overrideKeys := map[string]bool{"OPENAI_API_KEY": true}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "FOCUSBOSS_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"FOCUSBOSS_HOME="+e.Home,
		"FOCUSBOSS_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// WriteSettings replaces settings.json in the environment's home
func (e *TestEnvironment) WriteSettings(settings map[string]any) {
	e.tb.Helper()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		e.tb.Fatalf("Failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.Home, "settings.json"), data, 0600); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.Home, "focusboss.db")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	e.extraEnv[key] = value
}

// FreeAddr returns a loopback address with a port nobody is listening on
func FreeAddr(tb testing.TB) string {
	tb.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		tb.Fatalf("Failed to find a free port: %v", err)
	}
	addr := l.Addr().String()
	l.Close()
	return addr
}
