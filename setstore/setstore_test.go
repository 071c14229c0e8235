package setstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemSetStore(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	s := NewMemSetStore()

	out, err := s.InSet(ctx, "words", "alpha")
	require.NoError(err)
	assert.False(out)

	require.NoError(s.AddToSet(ctx, "words", []string{"alpha", "beta"}))

	out, err = s.InSet(ctx, "words", "alpha")
	require.NoError(err)
	assert.True(out)

	out, err = s.InSet(ctx, "other", "alpha")
	require.NoError(err)
	assert.False(out)
}

func TestLoadFromFileJSON(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	p := filepath.Join(t.TempDir(), "sets.json")
	require.NoError(os.WriteFile(p, []byte(`{"bad-words": ["one", "two"]}`), 0644))

	s := NewMemSetStore()
	require.NoError(LoadFromFileJSON(ctx, s, p))

	out, err := s.InSet(ctx, "bad-words", "two")
	require.NoError(err)
	assert.True(out)
}
