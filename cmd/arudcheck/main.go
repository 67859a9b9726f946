package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	arud "github.com/ieee0824/arud-go"
	"github.com/ieee0824/arud-go/corpus"
	"github.com/ieee0824/arud-go/pattern"
	"github.com/ieee0824/arud-go/script"
)

// mismatch is one corpus entry whose pattern differs from the expected one.
type mismatch struct {
	entry    corpus.Entry
	got      string
	distance int
}

// report summarises a corpus run.
type report struct {
	total      int
	exact      int
	distance   int // sum over all entries
	mismatches []mismatch
}

func (r report) meanDistance() float64 {
	if r.total == 0 {
		return 0
	}
	return float64(r.distance) / float64(r.total)
}

func main() {
	rulesPath := flag.String("rules", "", "path to a YAML letter table (default: built-in)")
	normalize := flag.Bool("normalize", false, "normalize input before conversion")
	strict := flag.Bool("strict", false, "exit 1 if any entry mismatches")
	verbose := flag.Bool("v", false, "log each word's rule trace to stderr")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: arudcheck [-rules TABLE.yaml] [-strict] <corpus.tsv>")
		fmt.Fprintln(os.Stderr, "  Converts each verse of a text<TAB>pattern corpus and reports")
		fmt.Fprintln(os.Stderr, "  entries whose CV pattern differs from the expected one.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	table := script.Default()
	if *rulesPath != "" {
		var err error
		table, err = script.LoadFile(*rulesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	c, err := corpus.LoadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}

	conv := arud.NewConverter(
		arud.WithTable(table),
		arud.WithNormalization(*normalize),
		arud.WithLogger(logger),
	)
	rep := check(conv, c)
	printReport(os.Stdout, rep)

	fmt.Fprintf(os.Stderr, "Total: %d, Exact: %d, Mismatched: %d, Mean distance: %.2f\n",
		rep.total, rep.exact, len(rep.mismatches), rep.meanDistance())

	if *strict && len(rep.mismatches) > 0 {
		os.Exit(1)
	}
}

// check converts every entry and compares its pattern with the expected one.
func check(conv *arud.Converter, c *corpus.Corpus) report {
	var rep report
	for _, e := range c.Entries {
		rep.total++
		_, got := conv.Convert(e.Text)
		if got == e.Pattern {
			rep.exact++
			continue
		}
		d := pattern.Distance(got, e.Pattern)
		rep.distance += d
		rep.mismatches = append(rep.mismatches, mismatch{entry: e, got: got, distance: d})
	}
	return rep
}

func printReport(w io.Writer, rep report) {
	for _, m := range rep.mismatches {
		fmt.Fprintf(w, "line %d: %s\n  want %s\n  got  %s\n  distance %d\n",
			m.entry.Line, m.entry.Text, m.entry.Pattern, m.got, m.distance)
	}
}
