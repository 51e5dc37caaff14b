package sync

import (
	"context"
	"io"
)

// Destination is a write target for published files.
type Destination interface {
	// Put uploads one object's bytes under the given storage key.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
}
