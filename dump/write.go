package dump

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/hupe1980/numbuf/fs"
)

// WriteFile writes values to path as len(values) consecutive float32
// values, truncating any existing file. The slice is viewed as raw
// bytes without copying (alignment-validated), so a dump costs one
// write syscall regardless of element count.
//
// The file is synced and closed before WriteFile returns; a failure in
// either step surfaces as ErrCloseFailed. A zero-length values slice
// produces a zero-byte file.
func WriteFile(fsys fs.FileSystem, path string, values []float32) error {
	if fsys == nil {
		fsys = fs.Default
	}

	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCannotOpenFile, path, err)
	}

	if err := writeFloat32s(f, values); err != nil {
		f.Close()
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %w", ErrCloseFailed, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCloseFailed, path, err)
	}

	return nil
}

// writeFloat32s writes the flat byte view of values to w.
func writeFloat32s(w io.Writer, values []float32) error {
	if len(values) == 0 {
		return nil
	}

	if err := validateFloat32SliceAlignment(values); err != nil {
		return err
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), len(values)*ElemSize)
	n, err := w.Write(data)
	if err != nil || n < len(data) {
		if err == nil {
			err = io.ErrShortWrite
		}
		return fmt.Errorf("%w: wrote %d of %d bytes: %w", ErrIncompleteWrite, n, len(data), err)
	}

	return nil
}

// Marshal returns the flat byte encoding of values. Unlike WriteFile it
// allocates; it exists for destinations that take whole byte slices,
// such as blob stores.
func Marshal(values []float32) []byte {
	if len(values) == 0 {
		return nil
	}
	out := make([]byte, len(values)*ElemSize)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), len(out)))
	return out
}
