package arud

import "github.com/ieee0824/arud-go/phonetic"

// Result holds the conversion output.
type Result struct {
	Phonetic string // transcribed words joined by single spaces
	Pattern  string // CV patterns joined by single spaces
	Words    []Word // word-level details, in input order
}

// Word holds one input token and what it became.
type Word struct {
	Text     string
	Position phonetic.Position
	Phonetic string
	Pattern  string
}
