// Package analyze derives structured session reports and short-window
// context from normalized transcript messages.
//
// Every facet is a best-effort heuristic over loosely-typed input, so each
// one runs behind its own failure boundary: a panic inside a facet is
// captured as a diagnostic on the report and the remaining facets still run.
package analyze

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hemanths/smriti/core"
)

// Analyzer computes session reports using a fixed vocabulary.
type Analyzer struct {
	vocab Vocabulary
}

// New returns an Analyzer with the default vocabulary.
func New() *Analyzer {
	return &Analyzer{vocab: DefaultVocabulary()}
}

// NewWithVocabulary returns an Analyzer using custom tables.
func NewWithVocabulary(v Vocabulary) *Analyzer {
	return &Analyzer{vocab: v}
}

// Analyze computes all facets over the message sequence. It tolerates an
// empty input and never panics; a failed facet contributes its default
// value and a diagnostic in Report.Faults.
func (a *Analyzer) Analyze(messages []core.Message) *core.Report {
	rep := &core.Report{}

	rep.Goal = facet(rep, "goal", "Could not determine objective",
		func() string { return a.Goal(messages) })
	rep.ModifiedFiles = facet(rep, "modified_files", nil,
		func() []core.FileChange { return a.ModifiedFiles(messages) })
	rep.Solutions = facet(rep, "solved_problems", nil,
		func() []string { return a.Solutions(messages) })
	rep.Decisions = facet(rep, "key_decisions", nil,
		func() []string { return a.Decisions(messages) })
	rep.Technologies = facet(rep, "technologies", nil,
		func() []string { return a.Technologies(messages) })
	rep.Metrics = facet(rep, "metrics", core.Metrics{SuccessRate: "N/A", Duration: "Unknown"},
		func() core.Metrics { return a.Metrics(messages) })
	rep.Learnings = facet(rep, "learnings", nil,
		func() []string { return a.Learnings(messages) })
	rep.FollowUps = facet(rep, "follow_ups", nil,
		func() []string { return a.FollowUps(messages) })

	return rep
}

// facet runs fn behind a recover boundary, substituting fallback and
// recording a diagnostic when fn panics.
func facet[T any](rep *core.Report, name string, fallback T, fn func() T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			rep.Faults = append(rep.Faults, fmt.Sprintf("%s: %v", name, r))
			out = fallback
		}
	}()
	return fn()
}

// Goal extracts a one-line description of the session's primary ask from the
// earliest substantial user messages.
func (a *Analyzer) Goal(messages []core.Message) string {
	head := messages
	if len(head) > 10 {
		head = head[:10]
	}

	var early []string
	for _, m := range head {
		um, ok := m.(core.UserMessage)
		if !ok {
			continue
		}
		content := strings.TrimSpace(um.Content.Flatten())
		if len([]rune(content)) > 10 {
			early = append(early, content)
		}
		if len(early) == 3 {
			break
		}
	}
	if len(early) == 0 {
		return "No clear objective identified"
	}

	// Longest by character count, not bytes.
	main := early[0]
	for _, r := range early[1:] {
		if utf8.RuneCountInString(r) > utf8.RuneCountInString(main) {
			main = r
		}
	}

	keywords := make(map[string]bool, len(a.vocab.GoalKeywords))
	for _, k := range a.vocab.GoalKeywords {
		keywords[k] = true
	}

	words := strings.Fields(strings.ToLower(main))
	for i, word := range words {
		if !keywords[word] {
			continue
		}
		start := max(0, i-2)
		end := min(len(words), i+8)
		return "Primary goal: " + strings.Join(words[start:end], " ")
	}

	return "Session focus: " + core.Truncate(main, 100) + "..."
}

// ModifiedFiles collects one entry per file path targeted by a write-class
// tool call, in first-modification order.
func (a *Analyzer) ModifiedFiles(messages []core.Message) []core.FileChange {
	byPath := make(map[string]int)
	var files []core.FileChange

	for _, m := range messages {
		tu, ok := m.(core.ToolUse)
		if !ok || !a.vocab.WriteTools[tu.Name] {
			continue
		}
		path, _ := tu.Input["file_path"].(string)
		if path == "" {
			continue
		}

		ts := tu.Record.Timestamp
		if i, seen := byPath[path]; seen {
			files[i].Operations = append(files[i].Operations, tu.Name)
			files[i].LastSeen = ts
			continue
		}
		byPath[path] = len(files)
		files = append(files, core.FileChange{
			Path:       path,
			Operations: []string{tu.Name},
			FirstSeen:  ts,
			LastSeen:   ts,
		})
	}
	return files
}

// Solutions finds assistant messages that signal a resolved problem. When no
// message matches, successful tool results stand in as an aggregate entry.
// Capped at 5.
func (a *Analyzer) Solutions(messages []core.Message) []string {
	var solutions []string

	for _, m := range messages {
		am, ok := m.(core.AssistantMessage)
		if !ok {
			continue
		}
		content := am.Content.Flatten()
		lower := strings.ToLower(content)
		for _, indicator := range a.vocab.SolutionIndicators {
			if strings.Contains(lower, indicator) {
				solutions = append(solutions, "Solution achieved: "+core.Truncate(content, 150)+"...")
				break
			}
		}
	}

	if len(solutions) == 0 {
		successful := 0
		for _, m := range messages {
			if tr, ok := m.(core.ToolResult); ok && !tr.IsError {
				successful++
			}
		}
		if successful > 0 {
			solutions = append(solutions, fmt.Sprintf("Successfully completed %d tool operations", successful))
		}
	}

	if len(solutions) > 5 {
		solutions = solutions[:5]
	}
	return solutions
}

// Decisions extracts sentences from assistant messages that contain a
// decision keyword. Capped at 5.
func (a *Analyzer) Decisions(messages []core.Message) []string {
	return a.extractSentences(assistantContent(messages), a.vocab.DecisionKeywords, 5, 20)
}

// Learnings extracts sentences that signal something discovered during the
// session. Capped at 3.
func (a *Analyzer) Learnings(messages []core.Message) []string {
	return a.extractSentences(assistantContent(messages), a.vocab.LearningKeywords, 3, 15)
}

// FollowUps extracts follow-up sentences from the last five assistant
// messages, plus a synthetic entry when any tool result failed. Capped at 5.
func (a *Analyzer) FollowUps(messages []core.Message) []string {
	recent := assistantContent(messages)
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}

	var followUps []string
	for _, content := range recent {
		lower := strings.ToLower(content)
		for _, keyword := range a.vocab.FollowUpKeywords {
			if !strings.Contains(lower, keyword) {
				continue
			}
			if s := firstSentenceWith(content, keyword, 15); s != "" {
				followUps = append(followUps, s)
			}
		}
	}

	failed := 0
	for _, m := range messages {
		if tr, ok := m.(core.ToolResult); ok && tr.IsError {
			failed++
		}
	}
	if failed > 0 {
		followUps = append(followUps, fmt.Sprintf("Review %d failed operations", failed))
	}

	if len(followUps) > 5 {
		followUps = followUps[:5]
	}
	return followUps
}

// extractSentences collects up to limit keyword-bearing sentences across the
// given contents, skipping sentences at or under minLen characters.
func (a *Analyzer) extractSentences(contents, keywords []string, limit, minLen int) []string {
	var out []string
	for _, content := range contents {
		lower := strings.ToLower(content)
		for _, keyword := range keywords {
			if !strings.Contains(lower, keyword) {
				continue
			}
			if s := firstSentenceWith(content, keyword, minLen); s != "" {
				out = append(out, s)
			}
			if len(out) >= limit {
				return out
			}
		}
	}
	return out
}

// firstSentenceWith returns the first period-delimited sentence of content
// containing keyword, trimmed and truncated to 200 characters. Sentences at
// or under minLen characters are dropped.
func firstSentenceWith(content, keyword string, minLen int) string {
	for _, sentence := range strings.Split(content, ".") {
		if !strings.Contains(strings.ToLower(sentence), keyword) {
			continue
		}
		s := strings.TrimSpace(sentence)
		if len([]rune(s)) > minLen {
			return core.Truncate(s, 200)
		}
		return ""
	}
	return ""
}

// Technologies detects technology mentions across all conversational content
// and file extensions in tool inputs. The result is deduplicated by
// canonical display name and sorted.
func (a *Analyzer) Technologies(messages []core.Message) []string {
	found := make(map[string]bool)

	var parts []string
	for _, m := range messages {
		switch v := m.(type) {
		case core.UserMessage:
			parts = append(parts, v.Content.Flatten())
		case core.AssistantMessage:
			parts = append(parts, v.Content.Flatten())
		case core.ToolUse:
			if path, _ := v.Input["file_path"].(string); path != "" {
				lower := strings.ToLower(path)
				for _, ext := range a.vocab.ExtensionOrder {
					if strings.Contains(lower, ext) {
						found[a.vocab.Extensions[ext]] = true
						break
					}
				}
			}
		}
	}

	all := strings.ToLower(strings.Join(parts, " "))
	for mention, display := range a.vocab.Technologies {
		if strings.Contains(all, mention) {
			found[display] = true
		}
	}

	out := make([]string, 0, len(found))
	for name := range found {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Metrics counts message kinds and derives the success rate and duration.
//
// Duration is last-minus-first non-empty timestamp in file order, not a true
// chronological min/max; out-of-order logs yield the same approximation the
// rest of the pipeline assumes.
func (a *Analyzer) Metrics(messages []core.Message) core.Metrics {
	m := core.Metrics{TotalMessages: len(messages)}

	toolResults := 0
	var timestamps []string
	for _, msg := range messages {
		switch v := msg.(type) {
		case core.UserMessage:
			m.UserMessages++
		case core.AssistantMessage:
			m.AssistantMessages++
		case core.ToolUse:
			m.ToolsUsed++
		case core.ToolResult:
			toolResults++
			if v.IsError {
				m.Failed++
			} else {
				m.Successful++
			}
		}
		if ts := msg.Meta().Timestamp; ts != "" {
			timestamps = append(timestamps, ts)
		}
	}

	if toolResults == 0 {
		m.SuccessRate = "N/A"
	} else {
		m.SuccessRate = fmt.Sprintf("%.1f%%", float64(m.Successful)/float64(toolResults)*100)
	}

	m.Duration = "Unknown"
	if len(timestamps) >= 2 {
		start, err1 := parseTimestamp(timestamps[0])
		end, err2 := parseTimestamp(timestamps[len(timestamps)-1])
		if err1 == nil && err2 == nil {
			m.Duration = fmt.Sprintf("%.1f minutes", end.Sub(start).Minutes())
		}
	}
	return m
}

// parseTimestamp accepts RFC 3339 (trailing Z included) and zone-less
// ISO-like timestamps.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}

// assistantContent returns the flattened content of every assistant message,
// in order.
func assistantContent(messages []core.Message) []string {
	var out []string
	for _, m := range messages {
		if am, ok := m.(core.AssistantMessage); ok {
			out = append(out, am.Content.Flatten())
		}
	}
	return out
}
