package script

// Arabic base letters used directly by the rules.
const (
	Alef rune = 'ا' // U+0627
	Lam  rune = 'ل' // U+0644

	Tatweel rune = '\u0640' // kashida, elongation only
)

// Diacritical marks (harakat).
const (
	Fathatan rune = '\u064B' // nunation, accusative
	Dammatan rune = '\u064C' // nunation, nominative
	Kasratan rune = '\u064D' // nunation, genitive
	Fatha    rune = '\u064E'
	Damma    rune = '\u064F'
	Kasra    rune = '\u0650'
	Shadda   rune = '\u0651' // gemination
	Sukun    rune = '\u0652' // vowel-less
)

// Article is the definite article prefix "al-".
const Article = string(Alef) + string(Lam)

// Letter range covered by the nunation rule (hamza through ya).
const (
	FirstLetter rune = '\u0621'
	LastLetter  rune = '\u064A'
)

const (
	// DefaultConsonants are the 28 letters counted as consonant slots.
	DefaultConsonants = "ابتثجحخدذرزسشصضطظعغفقكلمنهوي"

	// DefaultVowels are the short vowels and the three nunation marks.
	DefaultVowels = string(Fathatan) + string(Dammatan) + string(Kasratan) +
		string(Fatha) + string(Damma) + string(Kasra)

	// DefaultSolarLetters assimilate the article's lam.
	DefaultSolarLetters = "تثدذرزسشصضطظلن"
)

// IsShortVowel reports whether r is fatha, damma or kasra.
func IsShortVowel(r rune) bool {
	return r == Fatha || r == Damma || r == Kasra
}

// IsNunation reports whether r is one of the three tanwin marks.
func IsNunation(r rune) bool {
	return r == Fathatan || r == Dammatan || r == Kasratan
}
