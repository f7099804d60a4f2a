package storage

import (
	"context"
	"io"
	"time"
)

// BlobStore holds produced .h5p packages.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader) (string, error) // returns canonical key
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	// Cleanup removes blobs last written before cutoff and reports how many.
	Cleanup(ctx context.Context, cutoff time.Time) (int, error)
}

// PackageKey is the blob key of a conversion's package.
func PackageKey(userID, conversionID string) string {
	if userID == "" {
		userID = "anonymous"
	}
	return userID + "/" + conversionID + ".h5p"
}
