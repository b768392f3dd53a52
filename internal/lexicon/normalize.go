package lexicon

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize produces the canonical matching form of free text: lower-cased,
// accent-folded to ASCII, punctuation reduced to word breaks and runs of
// whitespace collapsed to single spaces. Apostrophes survive so that
// contractions like "aujourd'hui" stay single tokens. Every lexicon table
// entry is stored in this form, which is what makes table lookups against
// normalized text exact.
func Normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return ""
	}

	s = strings.Map(foldApostrophe, s)
	s = stripDiacritics(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingBreak := false
	for _, r := range s {
		if !isWordRune(r) {
			if b.Len() > 0 {
				pendingBreak = true
			}
			continue
		}
		if pendingBreak {
			b.WriteByte(' ')
			pendingBreak = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func foldApostrophe(r rune) rune {
	switch r {
	case '‘', '’', 'ʼ': // curly and modifier apostrophes
		return '\''
	}
	return r
}

// stripDiacritics removes combining marks after canonical decomposition,
// turning "gênes" into "genes". The transformer chain is stateful, so a
// fresh one is built per call to keep Normalize safe for concurrent use.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '\'' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
