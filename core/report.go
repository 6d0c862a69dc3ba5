package core

// Report is the session analysis result: eight independently computed
// facets plus any diagnostics captured from facets that failed.
type Report struct {
	Goal          string       `json:"goal"`
	ModifiedFiles []FileChange `json:"modified_files"`
	Solutions     []string     `json:"solved_problems"`
	Decisions     []string     `json:"key_decisions"`
	Technologies  []string     `json:"technologies"`
	Metrics       Metrics      `json:"metrics"`
	Learnings     []string     `json:"learnings"`
	FollowUps     []string     `json:"follow_ups"`
	Faults        []string     `json:"faults,omitempty"`
}

// FileChange tracks one file touched by write-class tool calls. Operations
// keeps one entry per call, in call order.
type FileChange struct {
	Path       string   `json:"path"`
	Operations []string `json:"operations"`
	FirstSeen  string   `json:"first_seen,omitempty"`
	LastSeen   string   `json:"last_seen,omitempty"`
}

// Metrics holds session-level counters and derived figures. SuccessRate and
// Duration are preformatted strings ("70.0%", "12.3 minutes") with "N/A" and
// "Unknown" fallbacks.
type Metrics struct {
	TotalMessages     int    `json:"total_messages"`
	UserMessages      int    `json:"user_messages"`
	AssistantMessages int    `json:"assistant_messages"`
	ToolsUsed         int    `json:"tools_used"`
	Successful        int    `json:"successful_operations"`
	Failed            int    `json:"failed_operations"`
	SuccessRate       string `json:"success_rate"`
	Duration          string `json:"session_duration"`
}
