// Package corpus loads verse regression corpora: lines of Arabic text paired
// with the CV pattern they are expected to produce.
package corpus

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Entry is one verse with its expected pattern.
type Entry struct {
	Text    string
	Pattern string // space-separated CV groups, one per word
	Line    int    // 1-based line in the source
}

// Corpus holds entries in file order.
type Corpus struct {
	Entries []Entry
}

// Load reads a corpus from a tab-separated stream.
// Format: text<TAB>pattern. Blank lines and lines starting with # are skipped.
func Load(r io.Reader) (*Corpus, error) {
	c := &Corpus{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(line, "\t", 2)
		if len(parts) < 2 {
			return nil, errors.Errorf("line %d: expected 2 tab-separated fields, got %d", lineNum, len(parts))
		}

		text := strings.TrimSpace(parts[0])
		if text == "" {
			return nil, errors.Errorf("line %d: empty text", lineNum)
		}
		// keep the pattern verbatim: a word with no CV slots leaves an empty field
		want := parts[1]
		if strings.Trim(want, "CV ") != "" {
			return nil, errors.Errorf("line %d: pattern %q has characters other than C, V and space", lineNum, want)
		}

		c.Entries = append(c.Entries, Entry{
			Text:    text,
			Pattern: want,
			Line:    lineNum,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read corpus")
	}

	return c, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open corpus")
	}
	defer f.Close()
	return Load(f)
}

// Len returns the number of entries.
func (c *Corpus) Len() int {
	return len(c.Entries)
}
