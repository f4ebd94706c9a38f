package model

import (
	"context"
	"io"
)

// KV is the narrow key-value persistence port the client-state stores are built on.
// Get returns ErrNotFound when the key is absent. Delete of an absent key is not an error.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ObjectStorage stores binary objects such as prescription scans.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
