// Package dump implements the flat binary float32 file format and its
// read/write engine.
//
// # Format
//
// A dump is count consecutive IEEE-754 single-precision floats in
// native byte order. There is no header, no delimiter and no length
// prefix; a valid file is exactly count*4 bytes long and count is
// recovered from the file length. The package refuses to run on
// big-endian or otherwise unsupported platforms (see the init check in
// safety.go), so in practice the bytes are little-endian everywhere.
//
// # Failure Contract
//
// WriteFile reports failures through three error kinds, each wrapping
// the underlying OS error:
//
//   - [ErrCannotOpenFile]: the destination could not be opened
//   - [ErrIncompleteWrite]: fewer than count elements reached the file
//   - [ErrCloseFailed]: the flush or close step reported an error
//
// A failed write may leave a truncated file on disk. The engine does
// not clean it up and performs no atomic rename; callers that need
// all-or-nothing files must stage and rename themselves.
package dump
