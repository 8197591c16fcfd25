package store

import (
	"context"
	"fmt"

	"github.com/AbdulSamiEjaz/image-upload-server/internal/config"
)

// NewFileStorage builds the storage backend selected by cfg.Storage.Backend.
func NewFileStorage(ctx context.Context, cfg config.StructuredConfig) (FileStorage, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendDisk, "":
		return NewDiskStorage(cfg.Upload.Dir)
	case config.StorageBackendMinIO:
		return NewMinIOStorage(ctx, cfg.Storage.MinIO, cfg.Upload.Dir)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageBackend, cfg.Storage.Backend)
	}
}
