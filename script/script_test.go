package script

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDefaultTable(t *testing.T) {
	tbl := Default()
	if err := tbl.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if n := utf8.RuneCountInString(tbl.Consonants); n != 28 {
		t.Errorf("consonants = %d, want 28", n)
	}
	if n := utf8.RuneCountInString(tbl.SolarLetters); n != 14 {
		t.Errorf("solar letters = %d, want 14", n)
	}
	if n := utf8.RuneCountInString(tbl.Vowels); n != 6 {
		t.Errorf("vowels = %d, want 6", n)
	}
}

func TestTableClasses(t *testing.T) {
	tbl := Default()

	tests := []struct {
		r         rune
		consonant bool
		vowel     bool
		solar     bool
	}{
		{'ش', true, false, true},
		{'ق', true, false, false},
		{'ل', true, false, true},
		{'ا', true, false, false},
		{Fatha, false, true, false},
		{Kasratan, false, true, false},
		{Shadda, false, false, false},
		{Sukun, false, false, false},
		{'a', false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			if got := tbl.IsConsonant(tt.r); got != tt.consonant {
				t.Errorf("IsConsonant(%U) = %v, want %v", tt.r, got, tt.consonant)
			}
			if got := tbl.IsVowel(tt.r); got != tt.vowel {
				t.Errorf("IsVowel(%U) = %v, want %v", tt.r, got, tt.vowel)
			}
			if got := tbl.IsSolar(tt.r); got != tt.solar {
				t.Errorf("IsSolar(%U) = %v, want %v", tt.r, got, tt.solar)
			}
		})
	}
}

func TestTableRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Write(&buf); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	got, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if *got != *Default() {
		t.Errorf("round trip = %+v, want %+v", got, Default())
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		invalid bool // expect ErrInvalidTable rather than a decode error
	}{
		{"unknown field", "consonants: ب\nvowels: x\nsolar_letters: ب\nextra: 1\n", false},
		{"empty vowels", "consonants: بت\nsolar_letters: ت\n", true},
		{"overlap", "consonants: بت\nvowels: ب\nsolar_letters: ت\n", true},
		{"solar not consonant", "consonants: بت\nvowels: x\nsolar_letters: ش\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidTable); got != tt.invalid {
				t.Errorf("errors.Is(%v, ErrInvalidTable) = %v, want %v", err, got, tt.invalid)
			}
		})
	}
}

func TestLoadCustom(t *testing.T) {
	// a table without solar letters other than lam
	src := "consonants: " + DefaultConsonants + "\nvowels: x\nsolar_letters: ل\n"
	tbl, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if tbl.IsSolar('ش') {
		t.Error("ش should not be solar in custom table")
	}
	if !tbl.IsVowel('x') {
		t.Error("x should be a vowel in custom table")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "كتب", "كتب"},
		{"tatweel", "كـتـب", "كتب"},
		{"meem isolated form", "\uFEE1", "م"},
		{"lam-alef ligature", "\uFEFB", "لا"},
		{"vowel before shadda", "ب\u064E\u0651", "ب\u0651\u064E"},
		{"shadda already first", "ب\u0651\u064E", "ب\u0651\u064E"},
		{"nunation before shadda", "ب\u064C\u0651", "ب\u0651\u064C"},
		{"isolated fatha form kept", "ب\uFE76", "ب\uFE76"},
		{"spaces kept", "في البيت", "في البيت"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
