package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizerProcess(t *testing.T) {
	assert := assert.New(t)
	n := NewNormalizer()

	fixtures := []struct {
		text string
		out  string
	}{
		{text: "", out: ""},
		{text: "Hello World", out: "hello world"},
		{text: "s.e.p.a.r.a.t.e.d", out: "separated"},
		{text: "l33t sp34k", out: "leet speak"},
		{text: "b@d w0rd$", out: "bad words"},
		// fullwidth compatibility forms
		{text: "ｗｉｄｅ", out: "wide"},
		// combining marks stripped
		{text: "Gdańsk", out: "gdansk"},
		// cyrillic look-alikes mapped to latin
		{text: "сука", out: "cyka"},
		// greek look-alikes
		{text: "βad", out: "bad"},
	}

	for _, fix := range fixtures {
		assert.Equal(fix.out, n.Process(fix.text))
	}
}

func TestNormalizerIdempotent(t *testing.T) {
	assert := assert.New(t)
	n := NewNormalizer()

	for _, text := range []string{
		"Hello World",
		"l33t sp34k",
		"сука блять",
		"s.e.p-a_r*a~ted",
		"ｗｉｄｅ ｔｅｘｔ",
	} {
		once := n.Process(text)
		assert.Equal(once, n.Process(once), "not idempotent for %q", text)
	}
}

func TestNormalizerToggles(t *testing.T) {
	assert := assert.New(t)

	// zero-value normalizer passes text through untouched
	var off Normalizer
	assert.Equal("L33t сука", off.Process("L33t сука"))

	translitOnly := Normalizer{Transliterate: true}
	assert.Equal("suka", translitOnly.Process("сука"))

	foldOnly := Normalizer{Fold: true}
	assert.Equal("l33t", foldOnly.Process("L33t"))
}
