// Package arud converts Arabic verse into a phonetic transcription and the
// consonant/vowel pattern used as input to metrical scansion.
package arud

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/ieee0824/arud-go/pattern"
	"github.com/ieee0824/arud-go/phonetic"
	"github.com/ieee0824/arud-go/script"
)

// ErrEmptyInput is returned by ConvertText when the text has no words.
var ErrEmptyInput = errors.New("nothing to convert")

// Converter is the top-level phonetic converter.
// It is immutable after construction and safe for concurrent use.
type Converter struct {
	Table     *script.Table
	Normalize bool // run script.Normalize before tokenizing

	cache  *cache.Cache
	logger *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithTable sets custom letter classes.
func WithTable(t *script.Table) Option {
	return func(c *Converter) {
		if t != nil {
			c.Table = t
		}
	}
}

// WithNormalization enables or disables input normalization.
func WithNormalization(enabled bool) Option {
	return func(c *Converter) {
		c.Normalize = enabled
	}
}

// WithCache memoises per-word results for ttl. 0 = disable.
func WithCache(ttl time.Duration) Option {
	return func(c *Converter) {
		if ttl <= 0 {
			c.cache = nil
			return
		}
		c.cache = cache.New(ttl, 2*ttl)
	}
}

// WithLogger logs each word's rule trace at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewConverter creates a Converter with the default letter table.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		Table:  script.Default(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultConverter = NewConverter()

// Convert runs the default converter. See (*Converter).Convert.
func Convert(text string) (transcription, cvPattern string) {
	return defaultConverter.Convert(text)
}

// Convert returns the transcription and CV pattern of text, each with one
// space-separated field per input word. Input without words yields two empty
// strings; use ConvertText to have that reported as an error.
func (c *Converter) Convert(text string) (transcription, cvPattern string) {
	r := c.convert(text)
	return r.Phonetic, r.Pattern
}

// ConvertText is Convert with the per-word breakdown. It returns
// ErrEmptyInput if text is empty or only whitespace.
func (c *Converter) ConvertText(text string) (*Result, error) {
	r := c.convert(text)
	if len(r.Words) == 0 {
		return nil, ErrEmptyInput
	}
	return r, nil
}

func (c *Converter) convert(text string) *Result {
	if c.Normalize {
		text = script.Normalize(text)
	}
	tokens := strings.Fields(text)

	words := make([]Word, len(tokens))
	phon := make([]string, len(tokens))
	pats := make([]string, len(tokens))
	for i, tok := range tokens {
		ctx := phonetic.Context{
			Position: phonetic.PositionOf(i, len(tokens)),
			Table:    c.Table,
		}
		if i > 0 {
			ctx.Prev = tokens[i-1]
		}
		words[i] = c.word(tok, ctx)
		phon[i] = words[i].Phonetic
		pats[i] = words[i].Pattern
	}

	return &Result{
		Phonetic: strings.Join(phon, " "),
		Pattern:  strings.Join(pats, " "),
		Words:    words,
	}
}

func (c *Converter) word(tok string, ctx phonetic.Context) Word {
	var key string
	if c.cache != nil {
		key = ctx.Position.String() + "\x00" + ctx.Prev + "\x00" + tok
		if w, ok := c.cache.Get(key); ok {
			return w.(Word)
		}
	}

	var out string
	var steps []phonetic.Step
	debug := c.logger.Enabled(context.Background(), slog.LevelDebug)
	if debug {
		out, steps = phonetic.Trace(tok, ctx)
	} else {
		out = phonetic.Transform(tok, ctx)
	}
	w := Word{
		Text:     tok,
		Position: ctx.Position,
		Phonetic: out,
		Pattern:  pattern.CV(out, c.Table),
	}
	if debug {
		c.logger.Debug("word converted",
			"word", tok,
			"position", ctx.Position.String(),
			"steps", steps,
			"pattern", w.Pattern,
		)
	}

	if c.cache != nil {
		c.cache.SetDefault(key, w)
	}
	return w
}
