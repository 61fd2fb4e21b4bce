// Package fs provides the filesystem abstraction behind local dumps and
// loads, for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: An open file with read/write/sync capabilities
//   - [FileSystem]: The filesystem operations the dump engine needs
//
// # Implementations
//
//   - [LocalFS]: Production implementation using the standard os package
//   - [FaultyFS]: Test utility for fault injection (simulate I/O errors)
//
// Production code should use fs.Default (which is [LocalFS]):
//
//	file, err := fs.Default.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
//
// Tests inject [FaultyFS] to exercise failure paths:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("out.bin", fs.Fault{FailAfterBytes: 4})
//	err := numbuf.Dump(buf, path, numbuf.WithFileSystem(ffs))
//
// # Design Notes
//
// This package intentionally does NOT include context.Context parameters.
// Local filesystem operations are fast and non-interruptible at the
// syscall level, so context plumbing would add overhead without real
// cancellation capability. Slow destinations (object storage) go through
// the blobstore package, which takes contexts.
package fs
