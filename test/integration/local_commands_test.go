package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"focusboss/test/integration/harness"
)

func TestPersonas(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "personas")

	harness.AssertSuccess(t, result)
	for _, id := range []string{"coach", "drill_sergeant", "friend", "zen"} {
		harness.AssertStdoutContains(t, result, id)
	}
}

func TestPrefs(t *testing.T) {
	tests := []struct {
		name     string
		setup    [][]string
		args     []string
		wantFail bool
		contains []string
	}{
		{
			name:     "defaults",
			args:     []string{"prefs"},
			contains: []string{"consent_given", "false", "15 min"},
		},
		{
			name:     "after consent",
			setup:    [][]string{{"consent"}},
			args:     []string{"prefs", "show"},
			contains: []string{"true"},
		},
		{
			name:     "interval change",
			setup:    [][]string{{"prefs", "interval", "25"}},
			args:     []string{"prefs", "show"},
			contains: []string{"25 min"},
		},
		{
			name:     "interval rejects zero",
			args:     []string{"prefs", "interval", "0"},
			wantFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			for _, args := range tt.setup {
				harness.AssertSuccess(t, harness.RunCommand(t, env, args...))
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantFail {
				harness.AssertFailure(t, result)
				return
			}
			harness.AssertSuccess(t, result)
			for _, s := range tt.contains {
				harness.AssertStdoutContains(t, result, s)
			}
		})
	}
}

func TestConsent(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "consent")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Consent recorded")
	assert.FileExists(t, env.DBPath())
}

func TestHistory_Empty(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	table := harness.RunCommand(t, env, "history")
	harness.AssertSuccess(t, table)
	harness.AssertStdoutContains(t, table, "No days recorded yet")

	jsonResult := harness.RunCommand(t, env, "history", "--format", "json")
	harness.AssertSuccess(t, jsonResult)
	var days []map[string]any
	harness.AssertValidJSON(t, jsonResult, &days)
	assert.Empty(t, days)
}

func TestSettingsMeta(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "meta", "--format", "json")

	harness.AssertSuccess(t, result)
	var out map[string]any
	harness.AssertValidJSON(t, result, &out)
	assert.Contains(t, out["settings_file"], env.Home)
	assert.Contains(t, out["format"], "activitywatch_url")
}

func TestVersion(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "focusboss")
}

func TestPlaySound_Disabled(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "play-sound", "--event", "idle")

	harness.AssertSuccess(t, result)
}
