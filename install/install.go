// Package install registers the hook commands in Claude Code's user
// settings so the agent invokes this binary on tool use, notifications,
// and session stop.
package install

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Events the hook subscribes to.
var hookEvents = []string{"PostToolUse", "Notification", "Stop"}

// Config holds the settings for the install command.
type Config struct {
	SettingsPath string // path to settings.json (defaults to ~/.claude/settings.json)
	Command      string // hook command to register (defaults to "<this binary> hook")
}

// claudeSettings mirrors the hooks section of settings.json.
type claudeSettings struct {
	Hooks map[string][]matcherGroup `json:"hooks,omitempty"`
}

type matcherGroup struct {
	Matcher string        `json:"matcher,omitempty"`
	Hooks   []hookHandler `json:"hooks"`
}

type hookHandler struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

// Run registers the hook command for each subscribed event, preserving any
// fields and hooks already present in settings.json.
func Run(cfg Config) error {
	if cfg.Command == "" {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("locate binary: %w", err)
		}
		cfg.Command = exe + " hook"
	}
	if cfg.SettingsPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("locate home directory: %w", err)
		}
		cfg.SettingsPath = filepath.Join(home, ".claude", "settings.json")
	}

	data, err := os.ReadFile(cfg.SettingsPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read settings: %w", err)
	}

	var settings claudeSettings
	if len(data) > 0 {
		if err := json.Unmarshal(data, &settings); err != nil {
			return fmt.Errorf("parse settings: %w", err)
		}
	}
	if settings.Hooks == nil {
		settings.Hooks = make(map[string][]matcherGroup)
	}

	handler := hookHandler{Type: "command", Command: cfg.Command}
	for _, event := range hookEvents {
		if hasHandler(settings.Hooks[event], handler.Command) {
			continue
		}
		settings.Hooks[event] = append(settings.Hooks[event], matcherGroup{
			Hooks: []hookHandler{handler},
		})
	}

	return writeSettings(cfg.SettingsPath, data, settings.Hooks)
}

// Uninstall removes every registration of the hook command, leaving other
// hooks and settings untouched.
func Uninstall(cfg Config) error {
	if cfg.Command == "" {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("locate binary: %w", err)
		}
		cfg.Command = exe + " hook"
	}
	if cfg.SettingsPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("locate home directory: %w", err)
		}
		cfg.SettingsPath = filepath.Join(home, ".claude", "settings.json")
	}

	data, err := os.ReadFile(cfg.SettingsPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}

	var settings claudeSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("parse settings: %w", err)
	}

	for event, groups := range settings.Hooks {
		kept := groups[:0]
		for _, mg := range groups {
			handlers := mg.Hooks[:0]
			for _, h := range mg.Hooks {
				if h.Command != cfg.Command {
					handlers = append(handlers, h)
				}
			}
			mg.Hooks = handlers
			if len(mg.Hooks) > 0 {
				kept = append(kept, mg)
			}
		}
		if len(kept) == 0 {
			delete(settings.Hooks, event)
		} else {
			settings.Hooks[event] = kept
		}
	}

	return writeSettings(cfg.SettingsPath, data, settings.Hooks)
}

func hasHandler(groups []matcherGroup, command string) bool {
	for _, mg := range groups {
		for _, h := range mg.Hooks {
			if h.Command == command {
				return true
			}
		}
	}
	return false
}

// writeSettings merges the hooks map back into the original document so
// fields this tool does not know about survive the rewrite.
func writeSettings(path string, original []byte, hooks map[string][]matcherGroup) error {
	var full map[string]any
	if len(original) > 0 {
		_ = json.Unmarshal(original, &full)
	}
	if full == nil {
		full = make(map[string]any)
	}
	if len(hooks) == 0 {
		delete(full, "hooks")
	} else {
		full["hooks"] = hooks
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	out, err := json.MarshalIndent(full, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(out, '\n'), 0o644)
}
