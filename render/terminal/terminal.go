// Package terminal renders session reports as ANSI-colored sections for the
// analyze command.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/hemanths/smriti/render"
)

const defaultWidth = 100

// Renderer pretty-prints a session report to the terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the styled report to w.
func (r *Renderer) Render(w io.Writer, s *render.Session) error {
	width := r.termWidth()
	rep := s.Report

	fmt.Fprintln(w, styleTitle.Render("Session "+s.SessionID))
	fmt.Fprintln(w, styleMeta.Render(fmt.Sprintf("%d messages", s.MessageCount)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, styleHeading.Render("Goal"))
	fmt.Fprintln(w, wrap(rep.Goal, width))

	if len(rep.ModifiedFiles) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styleHeading.Render("Files modified"))
		for _, f := range rep.ModifiedFiles {
			ops := styleMeta.Render("(" + strings.Join(f.Operations, ", ") + ")")
			fmt.Fprintf(w, "  %s %s\n", stylePath.Render(f.Path), ops)
		}
	}

	writeList(w, "Problems solved", rep.Solutions, width)
	writeList(w, "Key decisions", rep.Decisions, width)

	if len(rep.Technologies) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styleHeading.Render("Technologies"))
		fmt.Fprintln(w, "  "+strings.Join(rep.Technologies, ", "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleHeading.Render("Metrics"))
	writeStat(w, "duration", rep.Metrics.Duration)
	writeStat(w, "tools used", fmt.Sprintf("%d", rep.Metrics.ToolsUsed))
	writeStat(w, "success rate", rep.Metrics.SuccessRate)
	writeStat(w, "user / assistant", fmt.Sprintf("%d / %d", rep.Metrics.UserMessages, rep.Metrics.AssistantMessages))

	writeList(w, "Learnings", rep.Learnings, width)
	writeList(w, "Follow-ups", rep.FollowUps, width)

	if len(rep.Faults) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styleFault.Render("Facets with errors"))
		for _, fault := range rep.Faults {
			fmt.Fprintln(w, "  "+styleMeta.Render(fault))
		}
	}

	fmt.Fprintln(w)
	return nil
}

func writeList(w io.Writer, title string, items []string, width int) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleHeading.Render(title))
	for _, item := range items {
		fmt.Fprintln(w, "  - "+wrap(item, width-4))
	}
}

func writeStat(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", styleStat.Render(value), styleStatLabel.Render(label))
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// wrap breaks s on word boundaries to fit width.
func wrap(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	words := strings.Fields(s)
	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
