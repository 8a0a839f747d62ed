package storage

import (
	"context"
	"io"
)

// BlobStore persists uploaded binaries and returns the stored path used for
// Media.FilePath. Consumed, not reimplemented: the backend owns durability.
type BlobStore interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}
