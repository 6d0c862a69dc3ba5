package analyze

import "github.com/hemanths/smriti/core"

// contextWindow is how many trailing messages the context extractor sees.
const contextWindow = 20

// Placeholders used when a capture is absent.
const (
	NoUserRequest       = "No recent user request"
	NoAssistantResponse = "No recent assistant response"
)

// Context is a short "what just happened" summary used to enrich per-tool
// events, independent of the full-session report.
type Context struct {
	LastUserRequest       string         `json:"last_user_request"`
	LastAssistantResponse string         `json:"last_assistant_response"`
	Recent                RecentActivity `json:"recent_context"`
}

// RecentActivity counts message kinds inside the context window.
type RecentActivity struct {
	UserMessages      int    `json:"user_message_count"`
	AssistantMessages int    `json:"assistant_message_count"`
	ToolUses          int    `json:"tool_use_count"`
	SessionID         string `json:"session_id,omitempty"`
}

// ExtractContext derives the context from the last 20 messages: the most
// recent user request, the most recent assistant response (truncated to 500
// characters), and activity counts. Missing captures get placeholder text.
func ExtractContext(messages []core.Message) Context {
	window := messages
	if len(window) > contextWindow {
		window = window[len(window)-contextWindow:]
	}

	ctx := Context{
		LastUserRequest:       NoUserRequest,
		LastAssistantResponse: NoAssistantResponse,
	}

	for _, m := range window {
		switch m.(type) {
		case core.UserMessage:
			ctx.Recent.UserMessages++
		case core.AssistantMessage:
			ctx.Recent.AssistantMessages++
		case core.ToolUse:
			ctx.Recent.ToolUses++
		}
		if ctx.Recent.SessionID == "" {
			ctx.Recent.SessionID = m.Meta().SessionID
		}
	}

	// Reverse scan, short-circuiting once both captures are filled.
	haveUser, haveAssistant := false, false
	for i := len(window) - 1; i >= 0 && !(haveUser && haveAssistant); i-- {
		switch v := window[i].(type) {
		case core.UserMessage:
			if content := v.Content.Flatten(); !haveUser && content != "" {
				ctx.LastUserRequest = content
				haveUser = true
			}
		case core.AssistantMessage:
			if content := v.Content.Flatten(); !haveAssistant && content != "" {
				ctx.LastAssistantResponse = core.Truncate(content, 500)
				haveAssistant = true
			}
		}
	}

	return ctx
}
