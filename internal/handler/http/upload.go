package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/AbdulSamiEjaz/image-upload-server/internal/logger"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/service"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/utils"
	"github.com/AbdulSamiEjaz/image-upload-server/models"
)

const (
	// maxFieldSize caps non-file form fields, which are read and dropped.
	maxFieldSize = 1 << 20

	defaultPartContentType = "application/octet-stream"
)

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	stored, err := h.receiveFile(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.metrics.observeStored(stored.Size)

	var body any = models.UploadResponse{Success: models.UploadedMessage}
	if h.upload.LegacyWire {
		body = models.LegacyUploadResponse{Sucess: models.UploadedMessage}
	}

	if _, err = utils.WriteJSON(w, body, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing upload response")
	}
}

// receiveFile walks the multipart body part by part. Exactly one file on the
// configured field is accepted and streamed to the upload service; plain
// form fields are dropped. When any later part fails, the already stored
// file is discarded so a failed request leaves nothing behind.
func (h *Handler) receiveFile(r *http.Request) (models.StoredFile, error) {
	ctx := r.Context()

	reader, err := r.MultipartReader()
	if err != nil {
		return models.StoredFile{}, fmt.Errorf("%w: %w", service.ErrMalformedRequest, err)
	}

	var (
		stored *models.StoredFile
		files  int
	)
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return h.abort(ctx, stored, fmt.Errorf("%w: %w", service.ErrMalformedRequest, err))
		}

		if part.FileName() == "" {
			err = dropField(part)
			_ = part.Close()
			if err != nil {
				return h.abort(ctx, stored, err)
			}
			continue
		}

		files++
		if files > h.upload.MaxFiles {
			_ = part.Close()
			return h.abort(ctx, stored, service.ErrFileLimitReached)
		}
		if part.FormName() != h.upload.FieldName || stored != nil {
			_ = part.Close()
			return h.abort(ctx, stored, fmt.Errorf("%w: %q", service.ErrUnexpectedField, part.FormName()))
		}

		file, err := h.services.UploadService.Upload(ctx, uploadFromPart(part))
		_ = part.Close()
		if err != nil {
			return models.StoredFile{}, err
		}
		stored = &file
	}

	if stored == nil {
		return models.StoredFile{}, service.ErrNoFileProvided
	}
	return *stored, nil
}

func (h *Handler) abort(ctx context.Context, stored *models.StoredFile, cause error) (models.StoredFile, error) {
	if stored != nil {
		// the request context may already be cancelled by a disconnected client
		if err := h.services.UploadService.Discard(context.WithoutCancel(ctx), *stored); err != nil {
			logger.FromContext(ctx).Err(err).Str("stored_name", stored.StoredName).Msg("error rolling back stored file")
		}
	}
	return models.StoredFile{}, cause
}

func uploadFromPart(part *multipart.Part) models.Upload {
	mimeType := part.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = defaultPartContentType
	}

	return models.Upload{
		OriginalName: part.FileName(),
		MimeType:     mimeType,
		Content:      part,
	}
}

func dropField(part *multipart.Part) error {
	n, err := io.Copy(io.Discard, io.LimitReader(part, maxFieldSize+1))
	if err != nil {
		return fmt.Errorf("%w: %w", service.ErrMalformedRequest, err)
	}
	if n > maxFieldSize {
		return fmt.Errorf("%w: %w: %q", service.ErrMalformedRequest, errFieldValueTooLong, part.FormName())
	}
	return nil
}
