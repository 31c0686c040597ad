// Package textnorm canonicalizes free text for skill and keyword matching.
package textnorm

import (
	"strings"
	"unicode"
)

// Normalize lower-cases text, replaces every character that is not a letter,
// digit, space or one of "+#.-" with a space and collapses whitespace runs.
// Tokens like "c++", "c#" and "node.js" survive unchanged.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))

	space := true
	for _, r := range strings.ToLower(text) {
		if keep(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}

	return strings.TrimRight(b.String(), " ")
}

func keep(r rune) bool {
	switch r {
	case '+', '#', '.', '-':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// UniquePreserveOrder drops empty strings and repeated values, keeping the
// first occurrence of each.
func UniquePreserveOrder(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Lines splits text into trimmed, non-empty lines.
func Lines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
