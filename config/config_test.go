package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Load()

	assert.Equal(t, DefaultURL, cfg.GraphitiURL)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, DefaultGroupID, cfg.GroupID)
	assert.Equal(t, []string{"secrets"}, cfg.Redact)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GRAPHITI_URL", "http://graph.internal:9000")
	t.Setenv("GRAPHITI_TIMEOUT", "5")
	t.Setenv("SMRITI_GROUP_ID", "team_sessions")

	cfg := Load()

	assert.Equal(t, "http://graph.internal:9000", cfg.GraphitiURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, "team_sessions", cfg.GroupID)
}

func TestInvalidTimeoutEnvIgnored(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GRAPHITI_TIMEOUT", "soon")

	cfg := Load()
	assert.Equal(t, 30, cfg.TimeoutSeconds)
}

func TestConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, `
graphiti_url = "http://file.example:8001"
timeout_seconds = 10
group_id = "from_file"
redact = ["secrets", "pii"]
`)

	cfg := Load()

	assert.Equal(t, "http://file.example:8001", cfg.GraphitiURL)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
	assert.Equal(t, "from_file", cfg.GroupID)
	assert.Equal(t, []string{"secrets", "pii"}, cfg.Redact)
}

func TestEnvBeatsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GRAPHITI_URL", "http://env.example:8001")
	writeConfig(t, home, `graphiti_url = "http://file.example:8001"`)

	cfg := Load()
	assert.Equal(t, "http://env.example:8001", cfg.GraphitiURL)
}

func TestBrokenConfigFileFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GRAPHITI_URL", "http://env.example:8001")
	writeConfig(t, home, `graphiti_url = [broken`)

	cfg := Load()

	assert.Equal(t, "http://env.example:8001", cfg.GraphitiURL)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, DefaultGroupID, cfg.GroupID)
}

func TestPartialConfigFileNotHalfApplied(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, `
group_id = "from_file"
timeout_seconds = "ten"
`)

	cfg := Load()

	// The file fails mid-parse; nothing from it may stick.
	assert.Equal(t, DefaultGroupID, cfg.GroupID)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "smriti")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))
}
