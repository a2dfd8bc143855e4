package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusboss/internal/config"
)

func TestLoadEnvFile_MissingDefaultIsIgnored(t *testing.T) {
	t.Setenv("FOCUSBOSS_HOME", t.TempDir())

	assert.NoError(t, loadEnvFile(""))
}

func TestLoadEnvFile_MissingExplicitFails(t *testing.T) {
	err := loadEnvFile(filepath.Join(t.TempDir(), "nope.env"))

	assert.Error(t, err)
}

func TestLoadEnvFile_SetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("FOCUSBOSS_TEST_ENV_KEY=sk-test\n"), 0600))
	t.Cleanup(func() { os.Unsetenv("FOCUSBOSS_TEST_ENV_KEY") })

	require.NoError(t, loadEnvFile(path))

	assert.Equal(t, "sk-test", os.Getenv("FOCUSBOSS_TEST_ENV_KEY"))
}

func TestNewContainer(t *testing.T) {
	dir := t.TempDir()
	settings := &config.Settings{
		DBPath:       filepath.Join(dir, "focusboss.db"),
		ListenAddr:   "127.0.0.1:5999",
		PersonasFile: filepath.Join(dir, "missing.yaml"),
	}

	c, err := NewContainer(settings)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	assert.NotEmpty(t, c.Catalog.List())
	assert.NotNil(t, c.Tracker)
	assert.NotNil(t, c.PreferencesService)
	assert.NotNil(t, c.HistoryService)
	assert.NotNil(t, c.NewAPIClient(""))
	assert.FileExists(t, settings.DBPath)
}

func TestNewContainer_BadPersonasFile(t *testing.T) {
	dir := t.TempDir()
	personas := filepath.Join(dir, "personas.yaml")
	require.NoError(t, os.WriteFile(personas, []byte("{}"), 0600))

	_, err := NewContainer(&config.Settings{
		DBPath:       filepath.Join(dir, "focusboss.db"),
		PersonasFile: personas,
	})

	assert.Error(t, err)
}
