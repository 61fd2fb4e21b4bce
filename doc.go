// Package numbuf provides fixed-size float32 array buffers backed by
// contiguous memory, with fast flat binary serialization to files and
// object stores.
//
// The package exists for one job: build an array of single-precision
// floats and get it onto disk as raw bytes, orders of magnitude faster
// than writing elements one at a time through higher-level encoders.
//
// # Quick Start
//
// Create a buffer by size or from an existing sequence:
//
//	buf, _ := numbuf.New(1024)                    // zero-filled, size 1024
//	buf, _ := numbuf.New([]float64{1.5, 2.5})     // copied, narrowed to float32
//
//	buf.Set(1, 3.14)     // indexes are 1-based at the API boundary
//	v, _ := buf.Get(1)
//
// Dump it, or dump a sequence directly without materializing a buffer:
//
//	err := numbuf.Dump(buf, "out.bin")
//	err := numbuf.Dump([]float32{1.5, 2.5, 3.5}, "out.bin")
//
// Read a dumped file back:
//
//	buf, err := numbuf.Load("out.bin")
//
// # File Format
//
// A dumped file is a flat run of count IEEE-754 single-precision floats
// in native byte order. No header, no delimiter, no length prefix; the
// file length is exactly count*4 bytes. The [dump] package enforces a
// little-endian platform at startup, so files are little-endian on all
// supported targets. See the dump package for the failure contract.
//
// # Indexing
//
// Set and Get use a 1-based index contract, matching the array
// convention of the embedding hosts this library serves. Storage is
// 0-based internally; the conversion happens exactly once, at the
// Set/Get boundary.
//
// # Concurrency
//
// A Buffer is single-owner. Concurrent mutation of the same Buffer is
// undefined behavior; callers embedding numbuf in a multi-threaded host
// must synchronize externally. Distinct buffers are independent, which
// is what [DumpAll] relies on. File writes take no lock on the
// destination path: two concurrent dumps to the same path race and the
// last writer wins.
//
// # Object Storage
//
// The blobstore package provides dump sinks beyond the local
// filesystem (S3, MinIO, in-memory):
//
//	store := blobstore.NewLocalStore("/data")
//	err := numbuf.DumpTo(ctx, store, "vectors.bin", buf)
package numbuf
