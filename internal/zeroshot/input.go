package zeroshot

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// PrepareText applies NFKC normalization, drops control characters other
// than newlines and tabs, trims surrounding space and truncates to maxChars
// runes when maxChars is positive.
func PrepareText(text string, maxChars int) string {
	normed := norm.NFKC.String(text)
	normed = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, normed)
	normed = strings.TrimSpace(normed)

	if maxChars > 0 {
		runes := []rune(normed)
		if len(runes) > maxChars {
			normed = strings.TrimSpace(string(runes[:maxChars]))
		}
	}

	return normed
}
