package http

import (
	"github.com/AbdulSamiEjaz/image-upload-server/internal/config"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/logger"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/service"
)

type Handler struct {
	services *service.Services

	upload         config.Upload
	metricsEnabled bool
	metrics        *uploadMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		upload:         cfg.Upload,
		metricsEnabled: !cfg.Metrics.Disabled,
		metrics:        newUploadMetrics(),
		logger:         logger,
	}
}
