package contract

import (
	"context"
	"time"
)

// FileStore hands out time-limited read URLs for objects in the blob store.
// expiresAt is the instant the returned URL stops working.
type FileStore interface {
	SignedURL(ctx context.Context, objectPath string, ttl time.Duration) (url string, expiresAt time.Time, err error)
}
