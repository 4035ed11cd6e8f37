package portfolio

import (
	"context"
	"time"
)

// ObjectStorageService abstracts the object store used for project images.
// Uploads happen directly from the browser against presigned URLs; the
// backend only issues URLs and verifies that objects exist.
type ObjectStorageService interface {
	// GenerateUploadURL returns a presigned PUT URL for the given key.
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// PublicURL returns the stable serving URL for an uploaded object.
	PublicURL(storageKey string) string

	// DeleteObject removes an object from storage.
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks whether an object has been uploaded.
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}
