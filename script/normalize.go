package script

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares raw Arabic text for the rule pipeline:
//   - presentation forms and ligatures (U+FB50..U+FEFC) fold to base letters
//     via NFKC, one base rune at a time so combining marks keep their order;
//   - tatweel is dropped;
//   - a short vowel or nunation mark written before shadda is moved after it,
//     so gemination sees letter+shadda.
//
// Compatibility forms whose NFKC expansion contains a space (the isolated
// harakat at U+FE70..U+FE7F) are kept as-is so token boundaries do not move.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == Tatweel:
			continue
		case unicode.Is(unicode.Mn, r):
			b.WriteRune(r)
		default:
			folded := norm.NFKC.String(string(r))
			if strings.ContainsFunc(folded, unicode.IsSpace) {
				b.WriteRune(r)
			} else {
				b.WriteString(folded)
			}
		}
	}
	return reorderShadda(b.String())
}

func reorderShadda(s string) string {
	if !strings.ContainsRune(s, Shadda) {
		return s
	}
	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		if runes[i] != Shadda {
			continue
		}
		// bubble shadda left past any run of vowel marks
		for j := i; j > 0 && (IsShortVowel(runes[j-1]) || IsNunation(runes[j-1])); j-- {
			runes[j-1], runes[j] = runes[j], runes[j-1]
		}
	}
	return string(runes)
}
