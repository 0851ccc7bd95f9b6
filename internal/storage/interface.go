package storage

import (
	"context"
	"io"
	"time"
)

// StorageInterface abstracts the attachment storage backend. The mock
// implementation uses the local filesystem; a production deployment
// would swap in S3 or similar behind the same presigned-URL flow.
type StorageInterface interface {
	// GeneratePresignedUploadURL returns a URL a client may PUT the
	// file body to before the URL expires.
	GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error)

	// GeneratePresignedDownloadURL returns a URL the file can be
	// fetched from.
	GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists checks if a file exists and returns its size
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes a file from storage
	DeleteFile(ctx context.Context, key string) error

	// SaveFile saves a file (used by the mock storage HTTP handler)
	SaveFile(key string, reader io.Reader) error

	// ReadFile opens a file for reading (used by the mock storage HTTP handler)
	ReadFile(key string) (io.ReadCloser, error)
}
