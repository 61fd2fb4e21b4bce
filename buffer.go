package numbuf

import (
	"github.com/hupe1980/numbuf/internal/mem"
)

// Buffer is a fixed-size array of float32 values backed by a single
// contiguous allocation. The size is immutable after creation and the
// storage is zero-filled, so uninitialized reads return 0.
//
// Set and Get use the 1-based index contract described in the package
// documentation. A Buffer is single-owner: concurrent mutation from
// multiple goroutines is undefined and must be synchronized by the
// caller.
type Buffer struct {
	values   []float32
	size     int
	released bool
}

// NewBuffer allocates a zero-filled buffer holding exactly n floats.
// n must be non-negative; a zero-size buffer is valid and dumps to an
// empty file.
func NewBuffer(n int) (*Buffer, error) {
	if n < 0 {
		return nil, &ErrInvalidArgument{Expected: "non-negative size", Value: n}
	}
	return &Buffer{
		values: mem.AllocAlignedFloat32(n),
		size:   n,
	}, nil
}

// alive reports whether b is a live, un-released buffer.
func (b *Buffer) alive() bool {
	return b != nil && !b.released
}

// Set writes value at the given 1-based index.
// It fails with ErrInvalidHandle if b is not a live buffer and with
// *ErrIndexOutOfRange if index is outside [1, Size]. No storage is
// mutated on failure.
func (b *Buffer) Set(index int, value float32) error {
	if !b.alive() {
		return ErrInvalidHandle
	}
	if index < 1 || index > b.size {
		return &ErrIndexOutOfRange{Index: index, Size: b.size}
	}
	b.values[index-1] = value // 1-based boundary, 0-based storage
	return nil
}

// Get returns the value at the given 1-based index.
// The failure contract matches Set.
func (b *Buffer) Get(index int) (float32, error) {
	if !b.alive() {
		return 0, ErrInvalidHandle
	}
	if index < 1 || index > b.size {
		return 0, &ErrIndexOutOfRange{Index: index, Size: b.size}
	}
	return b.values[index-1], nil
}

// Size returns the number of elements in the buffer.
// It fails with ErrInvalidHandle if b is not a live buffer.
func (b *Buffer) Size() (int, error) {
	if !b.alive() {
		return 0, ErrInvalidHandle
	}
	return b.size, nil
}

// Values returns the backing storage in its internal 0-based layout.
// The slice aliases the buffer; mutating it mutates the buffer.
// It fails with ErrInvalidHandle if b is not a live buffer.
func (b *Buffer) Values() ([]float32, error) {
	if !b.alive() {
		return nil, ErrInvalidHandle
	}
	return b.values, nil
}

// Release drops the backing allocation. Every subsequent operation on
// the buffer fails with ErrInvalidHandle. Release is idempotent and
// safe on a nil receiver.
//
// Releasing is optional: an unreferenced Buffer is reclaimed by the
// garbage collector like any other value.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	b.values = nil
	b.released = true
}
