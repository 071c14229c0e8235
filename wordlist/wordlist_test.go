package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguages(t *testing.T) {
	assert := assert.New(t)

	langs := Languages()
	assert.Contains(langs, "en")
	assert.Contains(langs, "ru")
	assert.True(len(langs) >= 2)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	words, err := Load("en")
	require.NoError(err)
	assert.NotEmpty(words)
	for _, w := range words {
		assert.NotEmpty(w)
	}

	_, err = Load("zz")
	assert.ErrorIs(err, ErrUnsupportedLanguage)

	// path traversal attempts must not resolve
	_, err = Load("../resource/en")
	assert.ErrorIs(err, ErrUnsupportedLanguage)
}

func TestLoadDir(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	dir := t.TempDir()
	require.NoError(os.WriteFile(filepath.Join(dir, "xx.bdw"), []byte("alpha\n\nbeta \n"), 0644))
	require.NoError(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))
	require.NoError(os.WriteFile(filepath.Join(dir, "toolong.bdw"), []byte("ignored"), 0644))

	lists, err := LoadDir(dir)
	require.NoError(err)
	assert.Equal(map[string][]string{"xx": {"alpha", "beta"}}, lists)
}
