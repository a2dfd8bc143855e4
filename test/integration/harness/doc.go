// Package harness provides utilities for integration testing the focusboss CLI.
// It handles binary compilation, environment isolation, command execution and
// running a background server.
//
// Environment variables managed:
//   - FOCUSBOSS_HOME: Isolated per test (temp directory)
//   - FOCUSBOSS_DEBUG: Disabled to reduce noise
//   - OPENAI_API_KEY: Cleared so messages come from persona fallbacks
package harness
