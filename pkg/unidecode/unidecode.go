package unidecode

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Unidecode converts s to its closest ASCII rendering. ASCII input is
// returned unchanged without allocation.
func Unidecode(s string) string {
	if isASCII(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		decodeRune(&b, r)
	}
	return b.String()
}

func decodeRune(b *strings.Builder, r rune) {
	if r < utf8.RuneSelf {
		b.WriteRune(r)
		return
	}
	if spelling, ok := asciiSpellings[r]; ok {
		b.WriteString(spelling)
		return
	}

	// Decompose and keep the ASCII base, dropping combining marks.
	// Decomposition may itself yield a table rune (e.g. ǣ → æ + macron).
	decomposed := norm.NFD.String(string(r))
	if decomposed == string(r) {
		return // no ASCII rendering, drop
	}
	for _, d := range decomposed {
		if unicode.Is(unicode.Mn, d) {
			continue
		}
		decodeRune(b, d)
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
