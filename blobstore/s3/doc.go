// Package s3 provides an Amazon S3 implementation of blobstore.Store.
//
// Reads use ranged GETs so that partial snapshot access never pulls
// the whole object. Writes stream through the s3/manager uploader and
// become visible atomically when Close finalizes the upload.
//
//	store, err := s3.New(ctx, "my-bucket", "clustering/")
//	_ = store.Put(ctx, "snapshots/run1", data)
package s3
