package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.bin")
		want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
		require.NoError(t, os.WriteFile(path, want, 0o644))

		m, err := Open(path)
		require.NoError(t, err)

		assert.Equal(t, want, m.Data)
		assert.NoError(t, m.Close())
		assert.Nil(t, m.Data)
	})

	t.Run("Empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.bin")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		m, err := Open(path)
		require.NoError(t, err)

		assert.Nil(t, m.Data)
		assert.NoError(t, m.Close())
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "missing.bin"))
		assert.Error(t, err)
	})

	t.Run("CloseIdempotent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.bin")
		require.NoError(t, os.WriteFile(path, []byte{1}, 0o644))

		m, err := Open(path)
		require.NoError(t, err)

		assert.NoError(t, m.Close())
		assert.NoError(t, m.Close())
	})
}
