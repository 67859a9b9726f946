// Package pattern maps transcribed words to consonant/vowel strings and
// compares such strings.
package pattern

import (
	"strings"

	"github.com/ieee0824/arud-go/script"
)

// CV maps each rune of word to 'C', 'V' or nothing. A nil table means
// script.Default().
//
// The mapping is context free. Shadda adds nothing, since gemination has
// already written the doubled letter out; sukun counts as a consonant slot.
// Latin letters appended by the rules, and 'C'/'V' themselves, map to
// nothing, so CV is not idempotent.
func CV(word string, t *script.Table) string {
	if t == nil {
		t = script.Default()
	}
	var b strings.Builder
	for _, r := range word {
		switch {
		case t.IsConsonant(r):
			b.WriteByte('C')
		case t.IsVowel(r):
			b.WriteByte('V')
		case r == script.Shadda:
		case r == script.Sukun:
			b.WriteByte('C')
		}
	}
	return b.String()
}
