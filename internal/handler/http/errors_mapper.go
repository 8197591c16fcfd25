package http

import (
	"errors"
	"net/http"

	"github.com/AbdulSamiEjaz/image-upload-server/internal/logger"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/service"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/store"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/utils"
	"github.com/AbdulSamiEjaz/image-upload-server/models"
)

type errorResponse struct {
	status  int
	message string
	// outcome labels the uploads_total metric
	outcome string
}

var errorResponseMap = map[error]errorResponse{
	service.ErrFileTooLarge:     {http.StatusRequestEntityTooLarge, "File is too large!", "too_large"},
	service.ErrFileLimitReached: {http.StatusBadRequest, "File limit reached!", "file_limit"},
	service.ErrNotAnImage:       {http.StatusUnsupportedMediaType, "File is not an image type!", "not_an_image"},
	service.ErrUnexpectedField:  {http.StatusBadRequest, "Unexpected file field!", "unexpected_field"},
	service.ErrNoFileProvided:   {http.StatusBadRequest, "No file provided!", "no_file"},
	service.ErrMalformedRequest: {http.StatusBadRequest, "Malformed upload request!", "malformed"},

	store.ErrInvalidFileName: {http.StatusBadRequest, "Invalid file name!", "invalid_name"},
}

// legacyMessages holds the messages the first API version used where they
// differ from errorResponseMap. An unexpected file field shared the
// non-image message there.
var legacyMessages = map[error]string{
	service.ErrUnexpectedField: "File is not an image type!",
}

var internalErrorResponse = errorResponse{http.StatusInternalServerError, "Internal server error!", "internal_error"}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return internalErrorResponse
}

func legacyMessage(err error, fallback string) string {
	for target, message := range legacyMessages {
		if errors.Is(err, target) {
			return message
		}
	}
	return fallback
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	resp := responseFromError(err)

	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Msg("upload failed")
	} else {
		log.Warn().Err(err).Str("outcome", resp.outcome).Msg("upload rejected")
	}
	h.metrics.observeRejected(resp.outcome)

	status, message := resp.status, resp.message
	if h.upload.LegacyWire {
		status, message = http.StatusOK, legacyMessage(err, message)
	}

	if _, werr := utils.WriteJSON(w, models.ErrorResponse{Message: message}, status); werr != nil {
		log.Err(werr).Msg("error writing error response")
	}
}
