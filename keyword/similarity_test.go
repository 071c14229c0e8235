package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		a, b string
		out  float64
	}{
		{a: "", b: "", out: 1.0},
		{a: "abc", b: "", out: 0.0},
		{a: "hello", b: "hello", out: 1.0},
		{a: "abcd", b: "bcde", out: 0.75},
		{a: "word", b: "wird", out: 0.75},
	}

	for _, fix := range fixtures {
		assert.InDelta(fix.out, Ratio(fix.a, fix.b), 0.0001, "Ratio(%q, %q)", fix.a, fix.b)
	}
}

func TestRatioRange(t *testing.T) {
	assert := assert.New(t)

	pairs := [][2]string{
		{"profanity", "pr0fan1ty"},
		{"short", "a much longer string entirely"},
		{"ёлка", "елка"},
	}
	for _, p := range pairs {
		r := Ratio(p[0], p[1])
		assert.GreaterOrEqual(r, 0.0)
		assert.LessOrEqual(r, 1.0)
	}
}
