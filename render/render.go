// Package render turns session analysis reports into output formats: plain
// text for delivery, styled terminal output, and JSON.
package render

import (
	"io"

	"github.com/hemanths/smriti/core"
)

// Session pairs an analysis report with the identity of the transcript it
// was computed from.
type Session struct {
	SessionID    string       `json:"session_id"`
	MessageCount int          `json:"message_count"`
	Report       *core.Report `json:"report"`
}

// Renderer writes a session report to the given writer in a specific format.
type Renderer interface {
	Render(w io.Writer, s *Session) error
}
