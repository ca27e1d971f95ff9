package domain

import (
	"strings"
	"unicode"
)

// NormalizeWord prepares a surface form or query word for indexing and
// comparison:
//   - trims surrounding whitespace
//   - lowercases (Cyrillic included)
//   - collapses internal whitespace runs into single spaces
//
// Hyphens and letter "ё" are preserved: the thesaurus distribution is
// consistent about both, so no folding is needed.
func NormalizeWord(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
