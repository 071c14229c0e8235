package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	assert := assert.New(t)
	a := NewAnalyzer()

	fixtures := []struct {
		text string
		out  Label
	}{
		{text: "", out: Neutral},
		{text: "the meeting is at noon", out: Neutral},
		{text: "what a wonderful happy day, thanks!", out: Positive},
		{text: "this is terrible, I hate it", out: Negative},
		{text: "I love it but the ending was sad overall on balance a fine enough long film", out: Neutral},
	}

	for _, fix := range fixtures {
		res := a.Analyze(fix.text)
		assert.Equal(fix.out, res.Label, "text: %q (score %f)", fix.text, res.Score)
	}
}

func TestAnalyzeCounts(t *testing.T) {
	assert := assert.New(t)
	a := NewAnalyzer()

	res := a.Analyze("happy happy sad")
	assert.Equal(2, res.PositiveHits)
	assert.Equal(1, res.NegativeHits)
	assert.Equal(3, res.Tokens)
	assert.InDelta(1.0/3.0, res.Score, 0.0001)
	assert.Equal(Positive, res.Label)
}

func TestCustomLexicons(t *testing.T) {
	assert := assert.New(t)
	a := NewAnalyzer(WithLexicons([]string{"yay"}, []string{"boo"}))

	assert.Equal(Positive, a.Analyze("yay yay").Label)
	assert.Equal(Negative, a.Analyze("boo boo").Label)
	// bundled lexicon words are no longer known
	assert.Equal(Neutral, a.Analyze("wonderful wonderful").Label)
}

func TestCustomThresholds(t *testing.T) {
	assert := assert.New(t)
	strict := NewAnalyzer(WithThresholds(0.5, -0.5))

	// one positive hit out of four tokens is not enough any more
	res := strict.Analyze("a fairly happy sentence")
	assert.Equal(Neutral, res.Label)
}
