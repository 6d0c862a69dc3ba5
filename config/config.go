// Package config loads the tool configuration: built-in defaults, an
// optional TOML file, then environment overrides, in that order.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Defaults.
const (
	DefaultURL     = "http://localhost:8001"
	DefaultTimeout = 30 * time.Second
	DefaultGroupID = "claude_conversations"
)

// Config is built once at process start and passed down; nothing reads the
// environment after Load returns.
type Config struct {
	// GraphitiURL is the knowledge store base URL.
	GraphitiURL string `toml:"graphiti_url"`
	// TimeoutSeconds bounds each delivery attempt.
	TimeoutSeconds int `toml:"timeout_seconds"`
	// GroupID groups all captured conversations in the knowledge store.
	GroupID string `toml:"group_id"`
	// JournalPath is where session summaries are indexed locally.
	JournalPath string `toml:"journal_path"`
	// Redact lists rule sets applied to outbound content: "secrets", "pii".
	Redact []string `toml:"redact"`
}

// Load reads ~/.config/smriti/config.toml if present and applies
// GRAPHITI_URL, GRAPHITI_TIMEOUT, and SMRITI_GROUP_ID overrides. Load never
// fails: this runs inside an unattended hook, so a broken config file or an
// unresolvable home directory degrades to the built-in defaults with a
// logged warning rather than blocking the host process.
func Load() *Config {
	cfg := &Config{
		GraphitiURL:    DefaultURL,
		TimeoutSeconds: int(DefaultTimeout.Seconds()),
		GroupID:        DefaultGroupID,
		Redact:         []string{"secrets"},
	}

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn("home directory not resolvable, using defaults", "err", err)
		applyEnv(cfg)
		return cfg
	}
	cfg.JournalPath = filepath.Join(home, ".config", "smriti", "journal.json")

	path := filepath.Join(home, ".config", "smriti", "config.toml")
	if _, err := os.Stat(path); err == nil {
		// Decode into a copy so a file that fails mid-parse cannot leave
		// a half-applied configuration behind.
		fileCfg := *cfg
		if _, err := toml.DecodeFile(path, &fileCfg); err != nil {
			log.Warn("config file ignored", "path", path, "err", err)
		} else {
			*cfg = fileCfg
		}
	}

	applyEnv(cfg)
	return cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GRAPHITI_URL"); v != "" {
		cfg.GraphitiURL = v
	}
	if v := os.Getenv("GRAPHITI_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("SMRITI_GROUP_ID"); v != "" {
		cfg.GroupID = v
	}
}

// Timeout returns the delivery timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
