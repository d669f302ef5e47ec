package http

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Input validation constants
const (
	MaxSessionIDLength = 128
	MaxEchoLength      = 100
	MaxLogPreview      = 50
)

// ValidSessionID accepts printable identifiers up to MaxSessionIDLength bytes.
func ValidSessionID(s string) bool {
	if s == "" || len(s) > MaxSessionIDLength {
		return false
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// SanitizeString removes null bytes and invalid UTF-8
func SanitizeString(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")

	if !utf8.ValidString(s) {
		v := make([]rune, 0, len(s))
		for _, r := range s {
			if r != utf8.RuneError {
				v = append(v, r)
			}
		}
		s = string(v)
	}
	return s
}

// TruncateString truncates s to maxLen runes.
func TruncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen])
}

// TruncateWithEllipsis is TruncateString plus a trailing "..." when something was cut.
func TruncateWithEllipsis(s string, maxLen int) string {
	t := TruncateString(s, maxLen)
	if t != s {
		return t + "..."
	}
	return t
}
