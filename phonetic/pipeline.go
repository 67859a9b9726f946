package phonetic

import "github.com/ieee0824/arud-go/script"

// Context carries what a rule may know about a word's surroundings.
type Context struct {
	Position Position
	Prev     string // preceding token as written in the input; "" for the first word
	Table    *script.Table
}

// Rule is one rewrite step. When is nil for rules that always apply.
type Rule struct {
	Name  string
	When  func(ctx Context) bool
	Apply func(word string, ctx Context) string
}

func atEnd(ctx Context) bool { return ctx.Position == End }
func hasPrev(ctx Context) bool { return ctx.Prev != "" }

// Rules is the fixed application order. The alef rule runs before the sukun
// rule because it may remove the first rune the sukun rule inspects.
var Rules = []Rule{
	{Name: "gemination", Apply: func(w string, _ Context) string { return Gemination(w) }},
	{Name: "case-ending", Apply: func(w string, _ Context) string { return CaseEnding(w) }},
	{Name: "definite-article", Apply: func(w string, ctx Context) string {
		return DefiniteArticle(w, ctx.Position, ctx.Table)
	}},
	{Name: "pausal-lengthening", When: atEnd, Apply: func(w string, _ Context) string { return PausalLengthening(w) }},
	{Name: "initial-alef", When: hasPrev, Apply: func(w string, ctx Context) string { return ElideInitialAlef(w, ctx.Prev) }},
	{Name: "double-sukun", When: hasPrev, Apply: func(w string, ctx Context) string { return ElideDoubleSukun(w, ctx.Prev) }},
}

// Step records the word after one rule ran.
type Step struct {
	Rule   string
	Output string
}

// Transform runs every applicable rule over word.
func Transform(word string, ctx Context) string {
	for _, r := range Rules {
		if r.When != nil && !r.When(ctx) {
			continue
		}
		word = r.Apply(word, ctx)
	}
	return word
}

// Trace is Transform that also returns each intermediate result.
func Trace(word string, ctx Context) (string, []Step) {
	steps := make([]Step, 0, len(Rules))
	for _, r := range Rules {
		if r.When != nil && !r.When(ctx) {
			continue
		}
		word = r.Apply(word, ctx)
		steps = append(steps, Step{Rule: r.Name, Output: word})
	}
	return word, steps
}
