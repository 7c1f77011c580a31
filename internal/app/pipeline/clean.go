package pipeline

import (
	"strings"
	"unicode"

	"github.com/feclist/chinese-study-helpers/internal/domain"
)

// CleanText deletes every rune that is not a CJK ideograph, an ASCII
// letter or digit, or whitespace. Emoji, punctuation (including CJK
// punctuation), and other symbols are removed, not replaced, so
// adjacent kept runes join up. Idempotent.
func CleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if keepRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func keepRune(r rune) bool {
	switch {
	case domain.IsHanzi(r):
		return true
	case r >= 0xF900 && r <= 0xFAFF: // CJK compatibility ideographs
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case unicode.IsSpace(r):
		return true
	}
	return false
}
