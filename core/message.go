// Package core defines the normalized session record model, the common
// representation of transcript lines that the parser produces and the
// analyzer, renderers, and hook handlers consume.
package core

// Meta carries the fields common to every transcript record.
type Meta struct {
	UUID      string `json:"uuid,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	Timestamp string `json:"timestamp,omitempty"` // ISO-like, may be empty
}

// Message is one normalized transcript record. The concrete types are
// exactly UserMessage, AssistantMessage, ToolUse, and ToolResult; consumers
// dispatch with a type switch.
type Message interface {
	Meta() Meta
	message()
}

// UserMessage is a human turn in the conversation.
type UserMessage struct {
	Record  Meta
	Content Content
}

// AssistantMessage is an agent turn in the conversation.
type AssistantMessage struct {
	Record  Meta
	Content Content
}

// ToolUse records the agent invoking a tool.
type ToolUse struct {
	Record Meta
	Name   string
	Input  map[string]any
}

// ToolResult records the outcome of a tool invocation. Output is truncated
// at parse time to bound memory on pathological tool outputs.
type ToolResult struct {
	Record  Meta
	Name    string
	Output  string
	IsError bool
}

func (m UserMessage) Meta() Meta      { return m.Record }
func (m AssistantMessage) Meta() Meta { return m.Record }
func (m ToolUse) Meta() Meta          { return m.Record }
func (m ToolResult) Meta() Meta       { return m.Record }

func (UserMessage) message()      {}
func (AssistantMessage) message() {}
func (ToolUse) message()          {}
func (ToolResult) message()       {}
