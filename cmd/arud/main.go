package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	arud "github.com/ieee0824/arud-go"
	"github.com/ieee0824/arud-go/script"
)

func main() {
	text := flag.String("text", "", "sentence to convert (default: read lines from stdin)")
	rulesPath := flag.String("rules", "", "path to a YAML letter table (default: built-in)")
	dumpRules := flag.Bool("dump-rules", false, "write the active letter table as YAML and exit")
	normalize := flag.Bool("normalize", false, "fold presentation forms, drop tatweel, put shadda before vowels")
	cacheTTL := flag.Duration("cache", 0, "memoise per-word results for this long (0=disable)")
	verbose := flag.Bool("v", false, "log each word's rule trace to stderr")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: arud [-text TEXT] [-rules TABLE.yaml] < input.txt > output.tsv")
		fmt.Fprintln(os.Stderr, "  Converts Arabic verse to a phonetic transcription and CV pattern.")
		fmt.Fprintln(os.Stderr, "  Each output line is: phonetic<TAB>pattern.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
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

	if *dumpRules {
		if err := table.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	conv := arud.NewConverter(
		arud.WithTable(table),
		arud.WithNormalization(*normalize),
		arud.WithCache(*cacheTTL),
		arud.WithLogger(logger),
	)

	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	if flagPassed("text") {
		if err := convertLine(writer, conv, *text); err != nil {
			writer.Flush()
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	start := time.Now()
	n, err := convertLines(writer, conv, os.Stdin)
	if err != nil {
		writer.Flush()
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("done", "lines", n, "elapsed", time.Since(start))
}

// convertLine writes one phonetic<TAB>pattern line. Empty input is an error.
func convertLine(w io.Writer, conv *arud.Converter, text string) error {
	r, err := conv.ConvertText(text)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\t%s\n", r.Phonetic, r.Pattern)
	return err
}

// convertLines converts every non-blank line of r and returns how many it wrote.
func convertLines(w io.Writer, conv *arud.Converter, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := convertLine(w, conv, line); err != nil {
			return n, err
		}
		n++
	}
	return n, scanner.Err()
}

func flagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
