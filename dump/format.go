package dump

import "errors"

// ElemSize is the on-disk size of one element in bytes.
const ElemSize = 4

var (
	// ErrCannotOpenFile is returned when the destination or source file
	// cannot be opened.
	ErrCannotOpenFile = errors.New("cannot open file")

	// ErrIncompleteWrite is returned when fewer elements than requested
	// reached the file. The destination may hold a partial dump.
	ErrIncompleteWrite = errors.New("incomplete write")

	// ErrCloseFailed is returned when the flush or close step fails after
	// a successful write.
	ErrCloseFailed = errors.New("close failed")

	// ErrBadLength is returned when reading a file whose length is not a
	// multiple of ElemSize.
	ErrBadLength = errors.New("file length is not a multiple of element size")
)
