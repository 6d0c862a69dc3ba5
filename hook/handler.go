package hook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hemanths/smriti/analyze"
	"github.com/hemanths/smriti/config"
	"github.com/hemanths/smriti/core"
	"github.com/hemanths/smriti/graphiti"
	"github.com/hemanths/smriti/journal"
	"github.com/hemanths/smriti/redact"
	"github.com/hemanths/smriti/render"
	"github.com/hemanths/smriti/transcript"
)

// skippedTools are tool events never forwarded to the knowledge store.
var skippedTools = map[string]bool{
	"TodoWrite":      true,
	"exit_plan_mode": true,
}

// Handler routes decoded events. One handler processes one invocation; it
// holds no state between events.
type Handler struct {
	cfg      *config.Config
	analyzer *analyze.Analyzer
	client   *graphiti.Client
	redactor *redact.Redactor
}

// NewHandler wires a Handler from the loaded configuration.
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{
		cfg:      cfg,
		analyzer: analyze.New(),
		client:   graphiti.NewClient(cfg),
		redactor: redact.FromRuleSets(cfg.Redact),
	}
}

// Handle dispatches by event name. Errors inside handlers are logged, never
// returned: a bad event must not fail the host process.
func (h *Handler) Handle(ctx context.Context, ev *Event) {
	switch ev.Name {
	case EventPostToolUse:
		h.handleToolUse(ctx, ev)
	case EventNotification:
		h.handleNotification(ctx, ev)
	case EventStop:
		h.handleStop(ctx, ev)
	default:
		log.Debug("ignoring event", "name", ev.Name)
	}
}

func (h *Handler) handleToolUse(ctx context.Context, ev *Event) {
	if skippedTools[ev.ToolName] {
		log.Debug("skipping tool event", "tool", ev.ToolName)
		return
	}

	content := h.toolContent(ev)
	if content == "" {
		return
	}

	// Without a transcript path the context lines still appear, carrying
	// the extractor's placeholder text.
	var messages []core.Message
	if ev.TranscriptPath != "" {
		messages = transcript.Parse(ev.TranscriptPath)
	}
	tc := analyze.ExtractContext(messages)
	content += fmt.Sprintf("\nLast user request: %s\nLast assistant response: %s",
		tc.LastUserRequest, tc.LastAssistantResponse)

	h.deliver(ctx, graphiti.Message{
		Content:           h.redactor.Clean(content),
		Name:              eventName("Claude_"+ev.ToolName, ev.Timestamp),
		RoleType:          "system",
		Role:              "claude_code",
		Timestamp:         ev.Timestamp,
		SourceDescription: "Claude Code conversation",
	})
}

func (h *Handler) handleNotification(ctx context.Context, ev *Event) {
	h.deliver(ctx, graphiti.Message{
		Content:           h.redactor.Clean("Claude notification: " + ev.Message),
		Name:              eventName("Claude_Notification", ev.Timestamp),
		RoleType:          "system",
		Role:              "claude_code",
		Timestamp:         ev.Timestamp,
		SourceDescription: "Claude Code notification",
	})
}

func (h *Handler) handleStop(ctx context.Context, ev *Event) {
	messages := transcript.Parse(ev.TranscriptPath)
	rep := h.analyzer.Analyze(messages)

	sessionID := ev.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	summary := render.Summary(&render.Session{
		SessionID:    sessionID,
		MessageCount: len(messages),
		Report:       rep,
	})

	delivered := h.deliver(ctx, graphiti.Message{
		Content:           h.redactor.Clean(summary),
		Name:              "Claude_SessionSummary_" + sessionID,
		RoleType:          "system",
		Role:              "claude_code",
		SourceDescription: "Claude Code session summary",
	})

	h.record(journal.Entry{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Goal:      rep.Goal,
		Messages:  len(messages),
		Delivered: delivered,
		CreatedAt: time.Now().UTC(),
	})
}

// deliver sends fire-and-forget and reports whether the store accepted the
// message.
func (h *Handler) deliver(ctx context.Context, msg graphiti.Message) bool {
	if err := h.client.Send(ctx, msg); err != nil {
		log.Error("delivery failed", "name", msg.Name, "err", err)
		return false
	}
	return true
}

func (h *Handler) record(entry journal.Entry) {
	j, err := journal.ReadFile(h.cfg.JournalPath)
	if err != nil {
		log.Warn("journal unreadable, starting fresh", "err", err)
		j = &journal.Journal{}
	}
	j.Upsert(entry)
	if err := j.WriteFile(h.cfg.JournalPath); err != nil {
		log.Warn("journal write failed", "err", err)
	}
}

// toolContent builds the activity line for a tool event.
func (h *Handler) toolContent(ev *Event) string {
	field := func(key string) string {
		s, _ := ev.ToolInput[key].(string)
		return s
	}

	switch ev.ToolName {
	case "Read":
		return "Claude read file: " + field("file_path")
	case "Write", "Edit", "MultiEdit":
		return "Claude modified file: " + field("file_path")
	case "Bash":
		return "Claude executed command: " + field("command")
	case "WebSearch":
		return "Claude searched web for: " + field("query")
	case "WebFetch":
		return "Claude fetched URL: " + field("url")
	case "Task":
		return "Claude created task: " + field("description")
	default:
		params, err := json.Marshal(h.redactor.CleanAny(ev.ToolInput))
		if err != nil {
			params = []byte("{}")
		}
		return fmt.Sprintf("Claude used %s tool with parameters: %s", ev.ToolName, params)
	}
}

// eventName derives the knowledge-store record name; a fresh UUID stands in
// when the event carries no timestamp.
func eventName(prefix, timestamp string) string {
	if timestamp == "" {
		return prefix + "_" + uuid.NewString()
	}
	return prefix + "_" + timestamp
}
