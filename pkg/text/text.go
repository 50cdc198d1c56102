// Package text contains small string helpers shared across packages.
package text

import (
	"strings"
	"unicode/utf8"
)

// IsBlank returns if a text is empty or contains only whitespace.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// Ellipsis truncates a text to max runes, appending "…" when truncated.
func Ellipsis(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max-1]) + "…"
}
