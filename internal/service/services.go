package service

import (
	"github.com/AbdulSamiEjaz/image-upload-server/internal/config"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/logger"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/store"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/utils"
)

type Services struct {
	UploadService UploadService
}

func NewServices(storage store.FileStorage, cfg config.Upload, logger *logger.Logger) *Services {
	filenames := NewFilenameGenerator(utils.NewUUIDGenerator())
	upload := NewUploadService(storage, filenames, cfg, logger)

	return &Services{
		UploadService: NewContentFilterWrapper(NewImageFilter(cfg.SniffContent)).Wrap(upload),
	}
}
