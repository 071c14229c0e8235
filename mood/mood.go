// Package mood scores the overall emotional tone of a text against small
// positive/negative lexicons. It is intentionally simple: tokenized words
// are counted against each lexicon and the net score is classified with
// configurable thresholds. Intended for routing and flagging, not for
// anything resembling real NLP.
package mood

import (
	"embed"
	"strings"

	"github.com/moderation-tools/badwords/keyword"
)

//go:embed lexicon
var lexiconFS embed.FS

type Label string

const (
	Negative Label = "negative"
	Neutral  Label = "neutral"
	Positive Label = "positive"
)

type Result struct {
	Label Label
	// net score in [-1, 1]: (positive hits - negative hits) / tokens
	Score float64
	// raw counts
	PositiveHits int
	NegativeHits int
	Tokens       int
}

type Analyzer struct {
	pos map[string]bool
	neg map[string]bool
	// score boundaries for the positive and negative labels
	positiveAbove float64
	negativeBelow float64
}

type Option func(*Analyzer)

// WithThresholds overrides the default classification boundaries.
func WithThresholds(positiveAbove, negativeBelow float64) Option {
	return func(a *Analyzer) {
		a.positiveAbove = positiveAbove
		a.negativeBelow = negativeBelow
	}
}

// WithLexicons replaces the bundled lexicons with custom word sets.
func WithLexicons(positive, negative []string) Option {
	return func(a *Analyzer) {
		a.pos = wordSet(positive)
		a.neg = wordSet(negative)
	}
}

func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		pos:           loadLexicon("lexicon/positive.txt"),
		neg:           loadLexicon("lexicon/negative.txt"),
		positiveAbove: 0.1,
		negativeBelow: -0.1,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Analyzer) Analyze(text string) Result {
	tokens := keyword.TokenizeText(text)
	res := Result{
		Label:  Neutral,
		Tokens: len(tokens),
	}
	if len(tokens) == 0 {
		return res
	}
	for _, tok := range tokens {
		// de-pluralize
		tok = strings.TrimSuffix(tok, "s")
		if a.pos[tok] {
			res.PositiveHits++
		}
		if a.neg[tok] {
			res.NegativeHits++
		}
	}
	res.Score = float64(res.PositiveHits-res.NegativeHits) / float64(res.Tokens)
	switch {
	case res.Score > a.positiveAbove:
		res.Label = Positive
	case res.Score < a.negativeBelow:
		res.Label = Negative
	}
	return res
}

func loadLexicon(path string) map[string]bool {
	raw, err := lexiconFS.ReadFile(path)
	if err != nil {
		// embedded file is part of the build
		panic(err)
	}
	return wordSet(strings.Split(string(raw), "\n"))
}

func wordSet(words []string) map[string]bool {
	out := make(map[string]bool, len(words))
	for _, w := range words {
		w = strings.TrimSuffix(strings.TrimSpace(strings.ToLower(w)), "s")
		if w != "" {
			out[w] = true
		}
	}
	return out
}
