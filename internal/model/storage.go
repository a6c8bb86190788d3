package model

import (
	"context"
	"io"
)

// Storage is an object store for binary content such as cover images.
type Storage interface {
	Upload(ctx context.Context, key string, contentType string, size int64, reader io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
