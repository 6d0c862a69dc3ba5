package install

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readSettings(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func hookEventsIn(settings map[string]any) []string {
	hooks, _ := settings["hooks"].(map[string]any)
	events := make([]string, 0, len(hooks))
	for event := range hooks {
		events = append(events, event)
	}
	return events
}

func TestRunCreatesSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude", "settings.json")

	err := Run(Config{SettingsPath: path, Command: "/usr/local/bin/smriti hook"})
	require.NoError(t, err)

	settings := readSettings(t, path)
	assert.ElementsMatch(t, []string{"PostToolUse", "Notification", "Stop"}, hookEventsIn(settings))
}

func TestRunIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	cfg := Config{SettingsPath: path, Command: "smriti hook"}

	require.NoError(t, Run(cfg))
	require.NoError(t, Run(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var settings claudeSettings
	require.NoError(t, json.Unmarshal(data, &settings))
	for _, event := range hookEvents {
		assert.Len(t, settings.Hooks[event], 1, event)
	}
}

func TestRunPreservesExistingSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	existing := `{
		"model": "opus",
		"hooks": {
			"PostToolUse": [
				{"matcher": "Bash", "hooks": [{"type": "command", "command": "other-tool"}]}
			]
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(existing), 0o644))

	require.NoError(t, Run(Config{SettingsPath: path, Command: "smriti hook"}))

	settings := readSettings(t, path)
	assert.Equal(t, "opus", settings["model"])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var parsed claudeSettings
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Len(t, parsed.Hooks["PostToolUse"], 2)
	assert.Equal(t, "other-tool", parsed.Hooks["PostToolUse"][0].Hooks[0].Command)
	assert.Equal(t, "smriti hook", parsed.Hooks["PostToolUse"][1].Hooks[0].Command)
}

func TestRunRejectsInvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	assert.Error(t, Run(Config{SettingsPath: path, Command: "smriti hook"}))
}

func TestUninstallRemovesOnlyOwnHooks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	cfg := Config{SettingsPath: path, Command: "smriti hook"}

	existing := `{
		"hooks": {
			"PostToolUse": [
				{"hooks": [{"type": "command", "command": "other-tool"}]}
			]
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(existing), 0o644))
	require.NoError(t, Run(cfg))
	require.NoError(t, Uninstall(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var parsed claudeSettings
	require.NoError(t, json.Unmarshal(data, &parsed))

	require.Len(t, parsed.Hooks["PostToolUse"], 1)
	assert.Equal(t, "other-tool", parsed.Hooks["PostToolUse"][0].Hooks[0].Command)
	assert.NotContains(t, parsed.Hooks, "Stop")
	assert.NotContains(t, parsed.Hooks, "Notification")
}

func TestUninstallMissingFileIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	assert.NoError(t, Uninstall(Config{SettingsPath: path, Command: "smriti hook"}))
}
