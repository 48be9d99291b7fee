// Package minio provides a MinIO implementation of blobstore.Store,
// usable against MinIO and any S3-compatible object store.
package minio
