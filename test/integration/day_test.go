package integration_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusboss/test/integration/harness"
)

func TestDay_WithoutServer(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "day", "status", "--server", harness.FreeAddr(t))

	harness.AssertFailure(t, result)
}

func TestDay_Lifecycle(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	srv := harness.StartServer(t, env)
	run := func(args ...string) harness.CommandResult {
		return harness.RunCommand(t, env, append(args, "--server", srv.Addr)...)
	}

	// Consent gates the first start
	result := run("day", "start", "--persona", "coach", "--goals", "ship the release")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "focusboss consent")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "consent"))

	result = run("day", "status")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "No active session")

	result = run("day", "start", "--persona", "nobody")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "Invalid persona")

	result = run("day", "start", "--persona", "coach", "--goals", "ship the release")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Day started with coach")

	result = run("day", "start", "--persona", "zen")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "Day already started")

	result = run("day", "status")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Work:")

	result = run("day", "end")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Great job today!")

	result = run("day", "end")
	harness.AssertFailure(t, result)

	// The ended day is in the history and the persona is remembered
	result = harness.RunCommand(t, env, "history", "--format", "json")
	harness.AssertSuccess(t, result)
	var days []map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Stdout), &days))
	require.Len(t, days, 1)
	assert.Equal(t, "coach", days[0]["persona"])
	assert.Equal(t, "ship the release", days[0]["goals"])

	result = harness.RunCommand(t, env, "prefs")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "coach")

	// Without --persona the last one is reused
	result = run("day", "start")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Day started with coach")
}
