package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Text renders a session report as the plain-text summary shipped to the
// knowledge store.
type Text struct{}

// NewText creates a plain-text Renderer.
func NewText() *Text {
	return &Text{}
}

// Render writes the summary to w.
func (Text) Render(w io.Writer, s *Session) error {
	_, err := io.WriteString(w, Summary(s))
	return err
}

// Summary formats the report into its delivery text. Sections are rendered
// independently: a section that fails is dropped with a logged warning, and
// a section whose facet is empty is omitted entirely.
func Summary(s *Session) string {
	var b strings.Builder
	rep := s.Report

	fmt.Fprintf(&b, "Session summary: %s\n", s.SessionID)
	fmt.Fprintf(&b, "Messages: %d\n", s.MessageCount)

	section(&b, "goal", func(b *strings.Builder) {
		if rep.Goal != "" {
			fmt.Fprintf(b, "\nGoal: %s\n", rep.Goal)
		}
	})

	section(&b, "files", func(b *strings.Builder) {
		if len(rep.ModifiedFiles) == 0 {
			return
		}
		fmt.Fprintf(b, "\nFiles modified (%d):\n", len(rep.ModifiedFiles))
		for i, f := range rep.ModifiedFiles {
			if i == 5 {
				fmt.Fprintf(b, "  ... and %d more\n", len(rep.ModifiedFiles)-5)
				break
			}
			fmt.Fprintf(b, "  - %s (%s)\n", f.Path, strings.Join(f.Operations, ", "))
		}
	})

	section(&b, "problems", func(b *strings.Builder) {
		listSection(b, "Problems solved", rep.Solutions, 3)
	})

	section(&b, "decisions", func(b *strings.Builder) {
		listSection(b, "Key decisions", rep.Decisions, 3)
	})

	section(&b, "technologies", func(b *strings.Builder) {
		if len(rep.Technologies) > 0 {
			fmt.Fprintf(b, "\nTechnologies: %s\n", strings.Join(rep.Technologies, ", "))
		}
	})

	section(&b, "metrics", func(b *strings.Builder) {
		fmt.Fprintf(b, "\nMetrics:\n")
		fmt.Fprintf(b, "  Duration: %s\n", rep.Metrics.Duration)
		fmt.Fprintf(b, "  Tools used: %d\n", rep.Metrics.ToolsUsed)
		fmt.Fprintf(b, "  Success rate: %s\n", rep.Metrics.SuccessRate)
	})

	section(&b, "learnings", func(b *strings.Builder) {
		listSection(b, "Learnings", rep.Learnings, len(rep.Learnings))
	})

	section(&b, "follow-ups", func(b *strings.Builder) {
		listSection(b, "Follow-ups", rep.FollowUps, len(rep.FollowUps))
	})

	return b.String()
}

// section writes one summary section into its own builder so a panic inside
// fn loses only that section, never the ones already written.
func section(out *strings.Builder, name string, fn func(*strings.Builder)) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("summary section dropped", "section", name, "err", r)
		}
	}()
	var b strings.Builder
	fn(&b)
	out.WriteString(b.String())
}

func listSection(b *strings.Builder, title string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for i, item := range items {
		if i == limit {
			break
		}
		fmt.Fprintf(b, "  - %s\n", item)
	}
}
