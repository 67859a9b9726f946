package script

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTable is returned when a letter table fails validation.
var ErrInvalidTable = errors.New("invalid letter table")

// Table holds the letter classes the rules and the CV mapper consult.
// The zero value is not usable; start from Default or Load.
type Table struct {
	Consonants   string `yaml:"consonants"`
	Vowels       string `yaml:"vowels"`
	SolarLetters string `yaml:"solar_letters"`
}

// Default returns a fresh copy of the built-in table.
func Default() *Table {
	return &Table{
		Consonants:   DefaultConsonants,
		Vowels:       DefaultVowels,
		SolarLetters: DefaultSolarLetters,
	}
}

// IsConsonant reports whether r occupies a consonant slot.
func (t *Table) IsConsonant(r rune) bool {
	return strings.ContainsRune(t.Consonants, r)
}

// IsVowel reports whether r is a short vowel or nunation mark.
func (t *Table) IsVowel(r rune) bool {
	return strings.ContainsRune(t.Vowels, r)
}

// IsSolar reports whether r assimilates the definite article.
func (t *Table) IsSolar(r rune) bool {
	return strings.ContainsRune(t.SolarLetters, r)
}

// Validate checks that every class is non-empty valid UTF-8, that no rune is
// both consonant and vowel, and that solar letters are consonants.
func (t *Table) Validate() error {
	fields := []struct {
		name, val string
	}{
		{"consonants", t.Consonants},
		{"vowels", t.Vowels},
		{"solar_letters", t.SolarLetters},
	}
	for _, f := range fields {
		if f.val == "" {
			return errors.Wrapf(ErrInvalidTable, "%s is empty", f.name)
		}
		if !utf8.ValidString(f.val) {
			return errors.Wrapf(ErrInvalidTable, "%s is not valid UTF-8", f.name)
		}
	}
	for _, r := range t.Vowels {
		if t.IsConsonant(r) {
			return errors.Wrapf(ErrInvalidTable, "%q is both consonant and vowel", r)
		}
	}
	for _, r := range t.SolarLetters {
		if !t.IsConsonant(r) {
			return errors.Wrapf(ErrInvalidTable, "solar letter %q is not a consonant", r)
		}
	}
	return nil
}

// Load reads a YAML letter table. Unknown keys are rejected.
func Load(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Table
	if err := dec.Decode(&t); err != nil {
		return nil, errors.Wrap(err, "decode letter table")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open letter table")
	}
	defer f.Close()
	return Load(f)
}

// Write encodes the table as YAML.
func (t *Table) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return errors.Wrap(err, "encode letter table")
	}
	return enc.Close()
}
