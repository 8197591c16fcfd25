//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock
package service

import (
	"context"

	"github.com/AbdulSamiEjaz/image-upload-server/models"
)

// FilenameGenerator derives the storage name of an incoming file.
type FilenameGenerator interface {
	// Generate returns a name that is unique with overwhelming probability,
	// even for repeated calls with the same originalName.
	Generate(originalName string) string
}

// ContentFilter decides whether an incoming file is accepted.
type ContentFilter interface {
	// Filter returns nil to accept upload, or an error wrapping
	// [ErrNotAnImage] to reject it. Failing to read the leading bytes is
	// reported as [ErrMalformedRequest]. It may replace upload.Content with
	// an equivalent reader when it needs to look at those bytes.
	Filter(upload *models.Upload) error
}

// UploadService stores accepted uploads.
type UploadService interface {
	// Upload filters, names and persists a single file.
	Upload(ctx context.Context, upload models.Upload) (models.StoredFile, error)

	// Discard removes a file stored earlier in the same request, used when
	// a later part of the request fails.
	Discard(ctx context.Context, file models.StoredFile) error
}
