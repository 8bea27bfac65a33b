package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ansiPattern       = regexp.MustCompile(`\x1B(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// StripANSI removes ANSI escape sequences from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// Normalize strips ANSI escapes, collapses whitespace runs to single spaces
// and trims the result.
func Normalize(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(StripANSI(s), " "))
}

// DecodePermissive converts raw bytes to a string, dropping invalid UTF-8
// sequences instead of failing.
func DecodePermissive(b []byte) string {
	return strings.ToValidUTF8(string(b), "")
}

// TruncateRunes caps s at n runes. Limits throughout the pipeline count
// code points, so byte truncation would split multibyte glyphs.
func TruncateRunes(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
