package dump

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/numbuf/fs"
)

func TestWriteFile(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.bin")
		require.NoError(t, WriteFile(nil, path, []float32{1.5, 2.5, 3.5}))

		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, int64(12), fi.Size())

		got, err := ReadFile(nil, path)
		require.NoError(t, err)
		assert.Equal(t, []float32{1.5, 2.5, 3.5}, got)
	})

	t.Run("Empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.bin")
		require.NoError(t, WriteFile(nil, path, nil))

		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, int64(0), fi.Size())
	})

	t.Run("CannotOpen", func(t *testing.T) {
		err := WriteFile(nil, "/nonexistent_dir/out.bin", []float32{1})
		assert.True(t, errors.Is(err, ErrCannotOpenFile))
	})

	t.Run("IncompleteWrite", func(t *testing.T) {
		ffs := fs.NewFaultyFS(nil)
		ffs.AddRule("out.bin", fs.Fault{FailAfterBytes: 4})

		path := filepath.Join(t.TempDir(), "out.bin")
		err := WriteFile(ffs, path, []float32{1, 2, 3})
		assert.True(t, errors.Is(err, ErrIncompleteWrite))

		// The partial file is left as-is.
		fi, statErr := os.Stat(path)
		require.NoError(t, statErr)
		assert.Less(t, fi.Size(), int64(12))
	})

	t.Run("SyncFailure", func(t *testing.T) {
		ffs := fs.NewFaultyFS(nil)
		ffs.AddRule("out.bin", fs.Fault{FailOnSync: true})

		err := WriteFile(ffs, filepath.Join(t.TempDir(), "out.bin"), []float32{1})
		assert.True(t, errors.Is(err, ErrCloseFailed))
	})

	t.Run("CloseFailure", func(t *testing.T) {
		ffs := fs.NewFaultyFS(nil)
		ffs.AddRule("out.bin", fs.Fault{FailOnClose: true})

		err := WriteFile(ffs, filepath.Join(t.TempDir(), "out.bin"), []float32{1})
		assert.True(t, errors.Is(err, ErrCloseFailed))
	})
}

func TestReadFile(t *testing.T) {
	t.Run("BadLength", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ragged.bin")
		require.NoError(t, os.WriteFile(path, []byte{0, 1, 2}, 0o644))

		_, err := ReadFile(nil, path)
		assert.True(t, errors.Is(err, ErrBadLength))

		_, err = ReadFileMmap(path)
		assert.True(t, errors.Is(err, ErrBadLength))
	})

	t.Run("Missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.bin")

		_, err := ReadFile(nil, path)
		assert.True(t, errors.Is(err, ErrCannotOpenFile))

		_, err = ReadFileMmap(path)
		assert.True(t, errors.Is(err, ErrCannotOpenFile))
	})

	t.Run("MmapMatchesRead", func(t *testing.T) {
		want := []float32{1.5, -2.5, 1e-20, 3.14159}
		path := filepath.Join(t.TempDir(), "out.bin")
		require.NoError(t, WriteFile(nil, path, want))

		viaRead, err := ReadFile(nil, path)
		require.NoError(t, err)

		viaMmap, err := ReadFileMmap(path)
		require.NoError(t, err)

		assert.Equal(t, want, viaRead)
		assert.Equal(t, want, viaMmap)
	})

	t.Run("MmapEmpty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.bin")
		require.NoError(t, WriteFile(nil, path, nil))

		got, err := ReadFileMmap(path)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestMarshal(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		want := []float32{1.5, 2.5, 3.5}

		data := Marshal(want)
		require.Len(t, data, 12)

		got, err := Unmarshal(data)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("MatchesFileBytes", func(t *testing.T) {
		values := []float32{0.1, 0.2, 0.3}

		path := filepath.Join(t.TempDir(), "out.bin")
		require.NoError(t, WriteFile(nil, path, values))

		fileBytes, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, fileBytes, Marshal(values))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Nil(t, Marshal(nil))

		got, err := Unmarshal(nil)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("UnmarshalBadLength", func(t *testing.T) {
		_, err := Unmarshal([]byte{1, 2, 3})
		assert.True(t, errors.Is(err, ErrBadLength))
	})
}
