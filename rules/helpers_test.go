package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMentions(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		text string
		out  []string
	}{
		{text: "", out: nil},
		{text: "no mentions here", out: nil},
		{text: "hey @Alice how are you", out: []string{"alice"}},
		{text: "@bob.example and @carol-2", out: []string{"bob.example", "carol-2"}},
		{text: "email me at not@amention", out: nil},
	}

	for _, fix := range fixtures {
		assert.Equal(fix.out, ExtractMentions(fix.text), "text: %q", fix.text)
	}
}

func TestExtractURLs(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		text string
		out  []string
	}{
		{text: "no urls here", out: nil},
		{text: "check https://example.com/page now", out: []string{"https://example.com/page"}},
		{text: "bare domain example.org trailing", out: []string{"example.org"}},
	}

	for _, fix := range fixtures {
		assert.Equal(fix.out, ExtractURLs(fix.text), "text: %q", fix.text)
	}
}
