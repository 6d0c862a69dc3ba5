// Package transcript parses line-delimited session logs into normalized
// core.Message records.
package transcript

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hemanths/smriti/core"
)

// maxLineSize is the maximum JSONL line size (1 MB). Tool results can exceed
// the default 64 KB bufio.Scanner buffer.
const maxLineSize = 1 << 20

// MaxToolOutput bounds the stored length of a tool result output.
const MaxToolOutput = 500

// rawLine mirrors the on-disk JSONL record structure. Only the fields the
// normalized model needs are decoded.
type rawLine struct {
	Type      string         `json:"type"`
	UUID      string         `json:"uuid"`
	SessionID string         `json:"sessionId"`
	Timestamp string         `json:"timestamp"`
	Content   any            `json:"content"`
	Tool      string         `json:"tool"`
	Input     map[string]any `json:"input"`
	Output    any            `json:"output"`
	Error     bool           `json:"error"`
}

// Parse reads the transcript at path and returns its normalized messages in
// file order. A missing or unreadable file yields an empty slice and a
// logged warning; it is never an error to the caller.
func Parse(path string) []core.Message {
	f, err := os.Open(ExpandHome(path))
	if err != nil {
		log.Warn("transcript not readable", "path", path, "err", err)
		return nil
	}
	defer f.Close()

	messages, err := ParseLines(f)
	if err != nil {
		log.Warn("transcript scan stopped early", "path", path, "err", err)
	}
	return messages
}

// ParseLines decodes each non-blank line independently, skipping lines that
// are not valid JSON or carry an unrecognized record type. Output order is
// input order.
func ParseLines(r io.Reader) ([]core.Message, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)

	var messages []core.Message
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var line rawLine
		if err := json.Unmarshal(scanner.Bytes(), &line); err != nil {
			continue
		}
		if m, ok := normalize(line); ok {
			messages = append(messages, m)
		}
	}
	return messages, scanner.Err()
}

// normalize classifies a decoded line by its type discriminator.
func normalize(line rawLine) (core.Message, bool) {
	meta := core.Meta{
		UUID:      line.UUID,
		SessionID: line.SessionID,
		Timestamp: line.Timestamp,
	}

	switch line.Type {
	case "user":
		return core.UserMessage{Record: meta, Content: core.NewContent(line.Content)}, true
	case "assistant":
		return core.AssistantMessage{Record: meta, Content: core.NewContent(line.Content)}, true
	case "tool_use":
		return core.ToolUse{Record: meta, Name: line.Tool, Input: line.Input}, true
	case "tool_result":
		output := core.Truncate(core.NewContent(line.Output).Flatten(), MaxToolOutput)
		return core.ToolResult{Record: meta, Name: line.Tool, Output: output, IsError: line.Error}, true
	default:
		return nil, false
	}
}

// ExpandHome resolves a leading "~/" against the user's home directory.
func ExpandHome(path string) string {
	if len(path) < 2 || path[0] != '~' || path[1] != '/' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
