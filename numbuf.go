package numbuf

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/numbuf/blobstore"
	"github.com/hupe1980/numbuf/dump"
	"github.com/hupe1980/numbuf/fs"
)

// New creates an array buffer from either a size or an ordered sequence.
//
// A non-negative integer (int, int32, int64 or an unsigned variant
// that fits in int) allocates a zero-filled buffer of that size. A recognized sequence type (see FromSequence) is
// copied into a buffer of matching size. Anything else fails with
// *ErrInvalidArgument.
func New(v any, optFns ...Option) (*Buffer, error) {
	switch in := resolveInput(v); in.kind {
	case inputSize:
		if in.size < 0 {
			return nil, &ErrInvalidArgument{Expected: "non-negative size", Value: v}
		}
		return NewBuffer(in.size)
	case inputSequence:
		return FromSequence(in.seq)
	default:
		return nil, &ErrInvalidArgument{Expected: "size or sequence", Value: v}
	}
}

// Dump writes the input to path as a flat run of float32 values in
// native byte order, truncating any existing file.
//
// A *Buffer is dumped from its storage without copying. A sequence is
// staged in a transient scratch array and dumped without creating a
// buffer; both paths produce byte-identical files for the same input.
// Anything else fails with *ErrInvalidArgument.
//
// On failure the destination may hold a partial file; no atomic rename
// is performed. See the dump package for the error kinds.
func Dump(v any, path string, optFns ...Option) error {
	o := applyOptions(optFns)

	switch in := resolveInput(v); in.kind {
	case inputHandle:
		if !in.buf.alive() {
			return ErrInvalidHandle
		}
		err := dump.WriteFile(o.fsys, path, in.buf.values)
		o.logger.LogDump(path, in.buf.size, err)
		return err
	case inputSequence:
		scratch, n, err := toScratch(in.seq)
		if err != nil {
			return err
		}
		err = dump.WriteFile(o.fsys, path, scratch)
		o.logger.LogDump(path, n, err)
		return err
	default:
		return &ErrInvalidArgument{Expected: "array or sequence", Value: v}
	}
}

// Load reads a file written by Dump back into a new Buffer.
//
// The file length must be a multiple of 4; otherwise Load fails with
// dump.ErrBadLength. On the default local filesystem the file is
// memory-mapped for the read; a filesystem injected via WithFileSystem
// is read through its own interface instead.
func Load(path string, optFns ...Option) (*Buffer, error) {
	o := applyOptions(optFns)

	var (
		values []float32
		err    error
	)
	if _, ok := o.fsys.(fs.LocalFS); ok {
		values, err = dump.ReadFileMmap(path)
	} else {
		values, err = dump.ReadFile(o.fsys, path)
	}
	o.logger.LogLoad(path, len(values), err)
	if err != nil {
		return nil, err
	}

	return &Buffer{values: values, size: len(values)}, nil
}

// DumpAll dumps each named buffer to dir/<name>.bin, one file per
// buffer, writing the files concurrently. Every buffer is dumped by a
// single goroutine and every destination is distinct, so the
// single-owner rule holds. The first failure cancels the remaining
// dumps and is returned.
func DumpAll(ctx context.Context, dir string, arrays map[string]*Buffer, optFns ...Option) error {
	o := applyOptions(optFns)

	g, ctx := errgroup.WithContext(ctx)
	for name, buf := range arrays {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !buf.alive() {
				return fmt.Errorf("%s: %w", name, ErrInvalidHandle)
			}
			path := filepath.Join(dir, name+".bin")
			err := dump.WriteFile(o.fsys, path, buf.values)
			o.logger.LogDump(path, buf.size, err)
			return err
		})
	}

	return g.Wait()
}

// DumpTo writes the input to a blob store under the given key, using
// the same dispatch and encoding as Dump. The write is a single Put;
// stores with atomic puts (S3, MinIO, memory) never expose a partial
// object, unlike local file dumps.
func DumpTo(ctx context.Context, store blobstore.Store, name string, v any, optFns ...Option) error {
	o := applyOptions(optFns)

	switch in := resolveInput(v); in.kind {
	case inputHandle:
		if !in.buf.alive() {
			return ErrInvalidHandle
		}
		err := store.Put(ctx, name, dump.Marshal(in.buf.values))
		o.logger.LogDump(name, in.buf.size, err)
		return err
	case inputSequence:
		scratch, n, err := toScratch(in.seq)
		if err != nil {
			return err
		}
		err = store.Put(ctx, name, dump.Marshal(scratch))
		o.logger.LogDump(name, n, err)
		return err
	default:
		return &ErrInvalidArgument{Expected: "array or sequence", Value: v}
	}
}

// LoadFrom reads a blob written by DumpTo back into a new Buffer.
func LoadFrom(ctx context.Context, store blobstore.Store, name string, optFns ...Option) (*Buffer, error) {
	o := applyOptions(optFns)

	blob, err := store.Open(ctx, name)
	if err != nil {
		o.logger.LogLoad(name, 0, err)
		return nil, err
	}
	defer blob.Close()

	data := make([]byte, blob.Size())
	if len(data) > 0 {
		if _, err := blob.ReadAt(ctx, data, 0); err != nil {
			o.logger.LogLoad(name, 0, err)
			return nil, err
		}
	}

	values, err := dump.Unmarshal(data)
	o.logger.LogLoad(name, len(values), err)
	if err != nil {
		return nil, err
	}

	return &Buffer{values: values, size: len(values)}, nil
}
