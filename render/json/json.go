// Package json renders a session report as JSON.
package json

import (
	"encoding/json"
	"io"

	"github.com/hemanths/smriti/render"
)

// Renderer renders a session report to JSON.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
}

// New creates a JSON Renderer with indentation enabled.
func New() *Renderer {
	return &Renderer{Indent: true}
}

// Render writes the session as JSON to w.
func (r *Renderer) Render(w io.Writer, s *render.Session) error {
	enc := json.NewEncoder(w)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(s)
}
