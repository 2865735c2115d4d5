// Package sanitize cleans free text received from the admin console before it is persisted.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict allows no elements at all; text content is kept and HTML-escaped.
var strict = bluemonday.StrictPolicy()

// Text strips every tag from s, escapes HTML special characters and trims surrounding spaces.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// TextOr sanitizes s and falls back to def when nothing is left.
func TextOr(s, def string) string {
	if cleaned := Text(s); cleaned != "" {
		return cleaned
	}
	return def
}
