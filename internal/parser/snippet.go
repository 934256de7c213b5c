package parser

import "strings"

const snippetRadius = 50

// Context returns an ellipsis-wrapped excerpt around the first
// case-insensitive occurrence of keyword in text, spanning up to
// snippetRadius bytes on each side of the match. The second return value is
// false when the keyword does not occur.
func Context(text, keyword string) (string, bool) {
	pos := strings.Index(strings.ToLower(text), strings.ToLower(keyword))
	if pos < 0 {
		return "", false
	}

	start := pos - snippetRadius
	if start < 0 {
		start = 0
	}
	end := pos + len(keyword) + snippetRadius
	if end > len(text) {
		end = len(text)
	}

	return "..." + text[start:end] + "...", true
}
