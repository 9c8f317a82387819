package hash

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	data := []byte("the quick brown fox")
	w := New()
	_, err := w.Write(data[:4])
	require.NoError(t, err)
	_, err = w.Write(data[4:])
	require.NoError(t, err)

	assert.Equal(t, len(data), w.Len())
	assert.Equal(t, Sum(data), w.Digest())
	assert.Len(t, Sum(data).String(), 36)
	assert.NotEqual(t, Sum(data), Sum(data[1:]))
	// length tail
	assert.Equal(t, byte(len(data)), Sum(data)[17])
}

func TestSameAsFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "a.bin")
	data := []byte{1, 2, 3, 4, 5}
	require.NoError(t, os.WriteFile(fn, data, 0644))

	d, err := SumFile(fn)
	require.NoError(t, err)
	assert.Equal(t, Sum(data), d)

	assert.True(t, SameAsFile(fn, data))
	assert.False(t, SameAsFile(fn, []byte{1, 2, 3, 4, 6}))
	assert.False(t, SameAsFile(fn, data[:4]))
	assert.False(t, SameAsFile(filepath.Join(dir, "missing"), data))
	assert.False(t, SameAsFile(dir, data))
}
