package main

import (
	"math"
	"strings"
	"testing"

	arud "github.com/ieee0824/arud-go"
	"github.com/ieee0824/arud-go/corpus"
)

const testCorpus = `# two correct, one wrong by a single slot
الشمس والقمر	CCC CCCCCC
في البيت الكبير	CC CCC CCCC
قال اسمع	CCC CCCC
`

func TestCheck(t *testing.T) {
	c, err := corpus.Load(strings.NewReader(testCorpus))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	rep := check(arud.NewConverter(), c)
	if rep.total != 3 {
		t.Errorf("total = %d, want 3", rep.total)
	}
	if rep.exact != 2 {
		t.Errorf("exact = %d, want 2", rep.exact)
	}
	if len(rep.mismatches) != 1 {
		t.Fatalf("mismatches = %d, want 1", len(rep.mismatches))
	}

	m := rep.mismatches[0]
	if m.entry.Line != 4 {
		t.Errorf("mismatch line = %d, want 4", m.entry.Line)
	}
	if m.got != "CCC CCC" {
		t.Errorf("mismatch got = %q, want %q", m.got, "CCC CCC")
	}
	if m.distance != 1 {
		t.Errorf("mismatch distance = %d, want 1", m.distance)
	}
	if got := rep.meanDistance(); math.Abs(got-1.0/3.0) > 1e-9 {
		t.Errorf("meanDistance = %f, want %f", got, 1.0/3.0)
	}
}

func TestPrintReport(t *testing.T) {
	rep := report{
		total: 1,
		mismatches: []mismatch{{
			entry:    corpus.Entry{Text: "قال اسمع", Pattern: "CCC CCCC", Line: 7},
			got:      "CCC CCC",
			distance: 1,
		}},
	}
	var sb strings.Builder
	printReport(&sb, rep)
	out := sb.String()
	for _, want := range []string{"line 7", "want CCC CCCC", "got  CCC CCC", "distance 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestMeanDistanceEmpty(t *testing.T) {
	if got := (report{}).meanDistance(); got != 0 {
		t.Errorf("meanDistance = %f, want 0", got)
	}
}
