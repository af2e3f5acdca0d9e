package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	l, err := Load("")
	require.NoError(t, err)
	assert.True(t, l.Contains("lion"))
	assert.True(t, l.Contains("LION"))
	assert.False(t, l.Contains("# secret"))

	count, shortest, longest := l.Stats()
	assert.Equal(t, l.Len(), count)
	assert.GreaterOrEqual(t, shortest, MinLen)
	assert.LessOrEqual(t, longest, MaxLen)
}

func TestNewListNormalizes(t *testing.T) {
	l, err := NewList([]string{" Lion ", "lion", "ox", "t1ger", "Zebra", "", "extraordinarily"})
	require.NoError(t, err)
	assert.Equal(t, []string{"lion", "zebra"}, l.Words())
}

func TestNewListEmpty(t *testing.T) {
	_, err := NewList([]string{"a", "12345"})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nOtter\n\nheron\n"), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"otter", "heron"}, l.Words())

	for i := 0; i < 20; i++ {
		assert.True(t, l.Contains(l.Random()))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWordsReturnsCopy(t *testing.T) {
	l, err := NewList([]string{"lion", "tiger"})
	require.NoError(t, err)
	ws := l.Words()
	ws[0] = "mutated"
	assert.Equal(t, "lion", l.Words()[0])
}
