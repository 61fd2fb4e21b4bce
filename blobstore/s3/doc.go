// Package s3 implements blobstore.Store for Amazon S3 using
// aws-sdk-go-v2. Uploads go through the transfer manager, reads use
// ranged GETs.
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "arrays/")
//	err := numbuf.DumpTo(ctx, store, "vectors.bin", buf)
package s3
