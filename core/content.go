package core

import (
	"fmt"
	"strings"
)

// Content is a message payload as it appeared on disk: a plain string, a
// list of typed blocks, or any other JSON shape. Flatten collapses every
// shape to plain text and never fails.
type Content struct {
	raw any
}

// NewContent wraps a decoded JSON value as a Content payload.
func NewContent(v any) Content {
	return Content{raw: v}
}

// Flatten returns the payload as a single flat string.
//
// Strings pass through unchanged. Block lists contribute the text of every
// block tagged "text", space-joined; lists of plain scalars are stringified
// and space-joined. Anything else is stringified directly.
func (c Content) Flatten() string {
	switch v := c.raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		if len(v) == 0 {
			return ""
		}
		if _, ok := v[0].(map[string]any); ok {
			var parts []string
			for _, item := range v {
				block, ok := item.(map[string]any)
				if !ok || block["type"] != "text" {
					continue
				}
				text, _ := block["text"].(string)
				parts = append(parts, text)
			}
			return strings.Join(parts, " ")
		}
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprintf("%v", item)
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Truncate returns at most n characters of s.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
