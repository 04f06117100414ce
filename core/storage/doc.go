// Package storage provides the object storage client used for event media.
//
// Downloaded event images and their generated thumbnails are kept in an
// S3-compatible bucket (MinIO) rather than on local disk, so multiple
// deployments can share one media store.
//
// The Client interface wraps the subset of minio-go operations the
// application needs; core/storage/mocks provides a testify mock of it.
package storage
