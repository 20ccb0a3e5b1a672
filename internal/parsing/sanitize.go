package parsing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// newlineRunPattern matches runs of three or more consecutive newlines.
var newlineRunPattern = regexp.MustCompile(`\n{3,}`)

// SanitizeText normalizes raw extracted text: control and other non-printable
// characters are stripped (newline and tab survive), runs of blank lines are
// collapsed to a single blank line, and the total length is capped at
// MaxRawTextLength without splitting a multi-byte character.
//
// SanitizeText is pure and idempotent; it always returns a string, possibly
// empty, and has no failure modes.
func SanitizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' || unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}

	sanitized := newlineRunPattern.ReplaceAllString(b.String(), "\n\n")

	if len(sanitized) > MaxRawTextLength {
		sanitized = truncate(sanitized, MaxRawTextLength)
	}
	return sanitized
}

// truncate cuts s to at most max bytes, backing off to the previous rune
// boundary so a multi-byte character is never split.
func truncate(s string, max int) string {
	if max < 0 {
		max = 0
	}
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}

// collapseWhitespace rewrites any run of whitespace as a single space and
// trims the ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
