// Package phonetic rewrites Arabic word tokens into an approximate phonetic
// transcription. Each rule is a pure string -> string step; Rules lists them
// in the order the converter applies them.
package phonetic

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ieee0824/arud-go/script"
)

// geminationRe matches a letter carrying shadda and an optional next letter.
var geminationRe = regexp.MustCompile(`([\p{L}\p{N}_])\x{0651}([\p{L}\p{N}_]?)`)

const geminationRepl = "${1}" + string(script.Sukun) + "${1}${2}"

// Gemination expands every letter+shadda into letter+sukun+letter.
func Gemination(word string) string {
	return geminationRe.ReplaceAllString(word, geminationRepl)
}

// caseEndings maps each nunation mark to its Latin transliteration.
var caseEndings = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`([\x{0621}-\x{064A}])\x{064B}`), "${1}an"},
	{regexp.MustCompile(`([\x{0621}-\x{064A}])\x{064C}`), "${1}un"},
	{regexp.MustCompile(`([\x{0621}-\x{064A}])\x{064D}`), "${1}in"},
}

// CaseEnding replaces letter+tanwin with letter+"an"/"un"/"in". It applies
// anywhere in the word, not only at the end.
func CaseEnding(word string) string {
	for _, ce := range caseEndings {
		word = ce.re.ReplaceAllString(word, ce.repl)
	}
	return word
}

// DefiniteArticle handles a leading "ال". At the start of a sentence a solar
// letter absorbs the lam and gains a shadda; a lunar letter leaves the word
// alone. Anywhere else the article is elided outright, solar or lunar.
func DefiniteArticle(word string, pos Position, t *script.Table) string {
	if !strings.HasPrefix(word, script.Article) {
		return word
	}
	rest := word[len(script.Article):]
	if pos != Start {
		return rest
	}
	if t == nil {
		t = script.Default()
	}
	next, size := utf8.DecodeRuneInString(rest)
	if size == 0 || !t.IsSolar(next) {
		return word
	}
	return string(next) + string(script.Shadda) + rest[size:]
}

// PausalLengthening lengthens a final short vowel at the end of a verse.
func PausalLengthening(word string) string {
	last, size := utf8.DecodeLastRuneInString(word)
	if size == 0 {
		return word
	}
	switch last {
	case script.Fatha:
		return word + "a"
	case script.Damma:
		return word + "u"
	case script.Kasra:
		return word + "i"
	}
	return word
}

// ElideInitialAlef drops a word-initial alef when the previous word ends in
// a sound.
func ElideInitialAlef(word, prev string) string {
	last, size := utf8.DecodeLastRuneInString(prev)
	if size == 0 || unicode.IsSpace(last) {
		return word
	}
	if first, n := utf8.DecodeRuneInString(word); n > 0 && first == script.Alef {
		return word[n:]
	}
	return word
}

// ElideDoubleSukun drops a leading sukun when the previous word already ends
// in one.
func ElideDoubleSukun(word, prev string) string {
	last, size := utf8.DecodeLastRuneInString(prev)
	if size == 0 || last != script.Sukun {
		return word
	}
	if first, n := utf8.DecodeRuneInString(word); n > 0 && first == script.Sukun {
		return word[n:]
	}
	return word
}
