// Package hook decodes Claude Code hook events and routes them: tool events
// become enriched activity messages, session stops become analyzed
// summaries, both delivered to the knowledge store.
package hook

import (
	"encoding/json"
	"fmt"
	"io"
)

// Event names this hook responds to. Anything else is a no-op.
const (
	EventPostToolUse  = "PostToolUse"
	EventNotification = "Notification"
	EventStop         = "Stop"
)

// Event is one hook invocation payload read from standard input.
type Event struct {
	Name           string         `json:"hook_event_name"`
	ToolName       string         `json:"tool_name"`
	ToolInput      map[string]any `json:"tool_input"`
	TranscriptPath string         `json:"transcript_path"`
	SessionID      string         `json:"session_id"`
	Timestamp      string         `json:"timestamp"`
	Message        string         `json:"message"`
}

// Decode reads one event object from r. A decode failure here is the only
// error the hook surfaces as a nonzero exit.
func Decode(r io.Reader) (*Event, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read event: %w", err)
	}

	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	return &ev, nil
}
