package dump

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/hupe1980/numbuf/fs"
	"github.com/hupe1980/numbuf/internal/mmap"
)

// ReadFile reads a dumped file back into an owned float32 slice through
// the given filesystem.
func ReadFile(fsys fs.FileSystem, path string) ([]float32, error) {
	if fsys == nil {
		fsys = fs.Default
	}

	f, err := fsys.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCannotOpenFile, path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	data := make([]byte, fi.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, err
	}

	return Unmarshal(data)
}

// ReadFileMmap reads a dumped file back via a read-only memory mapping.
// The mapping is transient; the returned slice owns its memory.
func ReadFileMmap(path string) ([]float32, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCannotOpenFile, path, err)
	}
	defer m.Close()

	return Unmarshal(m.Data)
}

// Unmarshal decodes a flat byte stream into an owned float32 slice.
// The input length must be a multiple of ElemSize.
func Unmarshal(data []byte) ([]float32, error) {
	if len(data)%ElemSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrBadLength, len(data))
	}
	if len(data) == 0 {
		return nil, nil
	}

	values := make([]float32, len(data)/ElemSize)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), len(data)), data)
	return values, nil
}
