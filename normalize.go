package kenyaloc

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes combining marks after canonical decomposition
// ("Nairóbi" -> "Nairobi"). Chained transformers carry state, so each call
// gets its own.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// punctuationFolds maps typographic quotes to a straight apostrophe and
// typographic dashes to a hyphen.
var punctuationFolds = strings.NewReplacer(
	"‘", "'", "’", "'", "‚", "'", "‛", "'", "′", "'", "`", "'", "´", "'",
	"‒", "-", "–", "-", "—", "-", "―", "-",
)

// Normalize canonicalises a free-text location label. Index keys and queries
// both go through it, so any change here changes every key.
//
// Letters, numbers, commas, hyphens and periods survive; every other rune
// becomes a space. Whitespace runs collapse to one space and the result is
// trimmed and lower-cased. The empty string means "no label".
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// Lower-case before stripping marks: some upper-case runes lower to a
	// base letter plus a combining mark, which would otherwise survive.
	s = strings.ToLower(s)
	if stripped, _, err := transform.String(stripMarks(), s); err == nil {
		s = stripped
	}
	s = punctuationFolds.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if keepRune(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		pendingSpace = true
	}
	return b.String()
}

func keepRune(r rune) bool {
	switch r {
	case ',', '-', '.':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// hasWordRune reports whether s contains at least one letter or number.
// Queries made only of separators ("," or "-") must not match anything.
func hasWordRune(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
