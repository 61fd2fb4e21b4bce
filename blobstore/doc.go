// Package blobstore provides destinations for array dumps beyond the
// local filesystem.
//
// A [Store] holds named blobs; a dump is a single atomic Put of the
// flat byte encoding, so object stores never expose a partial dump the
// way an interrupted local file write can.
//
// # Implementations
//
//   - [LocalStore]: files under a root directory
//   - [MemoryStore]: in-memory, for tests
//   - s3.Store: Amazon S3 via aws-sdk-go-v2 (subpackage s3)
//   - minio.Store: MinIO and other S3-compatible stores (subpackage minio)
package blobstore
