package portfolio

import (
	"context"
	"path"
	"strings"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// allowedImageExtensions bounds what lands in the projects prefix.
var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// MediaService issues presigned upload slots for project images
type MediaService struct {
	storage ObjectStorageService
	logger  *zap.Logger
}

// NewMediaService creates a new MediaService
func NewMediaService(storage ObjectStorageService, logger *zap.Logger) *MediaService {
	return &MediaService{storage: storage, logger: logger}
}

// RequestUpload returns a presigned PUT URL for a project image.
// Only image content types are accepted; the object key is generated
// server-side so clients cannot overwrite each other's uploads.
func (s *MediaService) RequestUpload(ctx context.Context, input RequestUploadInput) (*UploadTicket, error) {
	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	if !strings.HasPrefix(contentType, "image/") {
		return nil, shared.NewDomainError("INVALID_INPUT", "Field 'content_type' must be an image type")
	}

	ext := strings.ToLower(path.Ext(input.FileName))
	if !allowedImageExtensions[ext] {
		return nil, shared.NewDomainError("INVALID_INPUT", "Field 'file_name' must have an image extension")
	}

	storageKey := "projects/" + uuid.New().String() + ext

	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, storageKey, contentType, 0)
	if err != nil {
		s.logger.Error("Failed to presign upload", zap.Error(err))
		return nil, err
	}

	return &UploadTicket{
		UploadURL:  uploadURL,
		StorageKey: storageKey,
		PublicURL:  s.storage.PublicURL(storageKey),
		ExpiresAt:  expiresAt,
	}, nil
}

// ConfirmUpload verifies that a previously presigned object was uploaded
func (s *MediaService) ConfirmUpload(ctx context.Context, storageKey string) error {
	if !strings.HasPrefix(storageKey, "projects/") {
		return shared.NewDomainError("INVALID_INPUT", "Field 'storage_key' is not a project image key")
	}

	exists, err := s.storage.ObjectExists(ctx, storageKey)
	if err != nil {
		s.logger.Error("Failed to check uploaded object", zap.Error(err))
		return err
	}
	if !exists {
		return shared.NewDomainError("NOT_FOUND", "Uploaded object not found")
	}
	return nil
}
