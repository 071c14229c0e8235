package profanity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moderation-tools/badwords/wordlist"
)

func testFilter(t *testing.T, words string) *Filter {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "xx.bdw"), []byte(words), 0644))
	f, err := New(WithWordDir(dir))
	require.NoError(t, err)
	return f
}

func TestNewUnsupportedLanguage(t *testing.T) {
	assert := assert.New(t)

	_, err := New(WithLanguages("nope"))
	assert.ErrorIs(err, wordlist.ErrUnsupportedLanguage)

	_, err = New(WithLanguages("en", "ru"))
	assert.NoError(err)
}

func TestNewLanguageCaseInsensitive(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	f, err := New(WithLanguages("EN", " ru "))
	require.NoError(err)
	assert.Equal([]string{"en", "ru"}, f.Languages())
}

func TestDetect(t *testing.T) {
	assert := assert.New(t)
	f := testFilter(t, "heck\ndarn\n")

	fixtures := []struct {
		text string
		out  bool
	}{
		{text: "", out: false},
		{text: "a perfectly fine sentence", out: false},
		{text: "what the heck", out: true},
		{text: "what the Heck!", out: true},
		{text: "what the h.e.c.k", out: true},
		{text: "what the h3ck", out: true},
		{text: "what the hživljenje", out: false},
		{text: "DARN", out: true},
		{text: "darning a sock", out: false},
	}

	for _, fix := range fixtures {
		assert.Equal(fix.out, f.Detect(fix.text), "text: %q", fix.text)
	}
}

func TestDetectFuzzy(t *testing.T) {
	assert := assert.New(t)
	f := testFilter(t, "heck\n")

	// "hecc" vs "heck" has ratio 0.75
	assert.False(f.Detect("hecc"))
	assert.True(f.DetectFuzzy("hecc", 0.7))
	assert.False(f.DetectFuzzy("hecc", 0.8))
	assert.False(f.DetectFuzzy("completely unrelated", 0.7))
}

func TestCensor(t *testing.T) {
	assert := assert.New(t)
	f := testFilter(t, "heck\ndarn\n")

	fixtures := []struct {
		text string
		out  string
	}{
		{text: "nothing to see", out: "nothing to see"},
		{text: "what the heck dude", out: "what the **** dude"},
		{text: "heck and DARN", out: "**** and ****"},
		{text: "h3ck", out: "****"},
	}

	for _, fix := range fixtures {
		assert.Equal(fix.out, f.Censor(fix.text, 0), "text: %q", fix.text)
	}

	assert.Equal("what the #### dude", f.Censor("what the heck dude", '#'))
}

func TestMatchOffsets(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	f := testFilter(t, "heck\n")

	text := "oh heck no"
	matches := f.Match(text, 1)
	require.Len(matches, 1)
	assert.Equal("heck", matches[0].Token)
	assert.Equal("heck", matches[0].Word)
	assert.Equal("heck", text[matches[0].Start:matches[0].End])
}

func TestAddWords(t *testing.T) {
	assert := assert.New(t)
	f := testFilter(t, "heck\n")

	assert.False(f.Detect("fiddlesticks"))
	f.AddWords("Fiddle-Sticks")
	assert.True(f.Detect("fiddlesticks"))
	assert.True(f.Detect("f1ddlest1cks"))
}

func TestLanguages(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	f, err := New(WithLanguages("en"))
	require.NoError(err)
	assert.Equal([]string{"en"}, f.Languages())
	assert.True(f.Detect("damn"))
	// russian list not loaded
	assert.False(f.Detect("сволочь"))
}
