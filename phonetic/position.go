package phonetic

// Position is a word's place in the sentence.
type Position int

const (
	Start Position = iota
	Middle
	End
)

func (p Position) String() string {
	switch p {
	case Start:
		return "start"
	case Middle:
		return "middle"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// PositionOf classifies word i of n. End takes precedence over Start, so a
// one-word sentence is End.
func PositionOf(i, n int) Position {
	pos := Middle
	if i == 0 {
		pos = Start
	}
	if i == n-1 {
		pos = End
	}
	return pos
}
