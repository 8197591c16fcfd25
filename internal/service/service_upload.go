package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AbdulSamiEjaz/image-upload-server/internal/config"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/logger"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/store"
	"github.com/AbdulSamiEjaz/image-upload-server/models"
)

type uploadService struct {
	storage   store.FileStorage
	filenames FilenameGenerator

	maxFileSize int64

	logger *logger.Logger
}

func NewUploadService(storage store.FileStorage, filenames FilenameGenerator, cfg config.Upload, logger *logger.Logger) UploadService {
	return &uploadService{
		storage:     storage,
		filenames:   filenames,
		maxFileSize: cfg.MaxFileSize,
		logger:      logger,
	}
}

func (u *uploadService) Upload(ctx context.Context, upload models.Upload) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	storedName := u.filenames.Generate(upload.OriginalName)
	content := &limitedReader{r: upload.Content, n: u.maxFileSize}

	written, err := u.storage.Save(ctx, storedName, upload.MimeType, content)
	if err != nil {
		// storage removes partial writes itself
		if content.exceeded() || errors.Is(err, ErrFileTooLarge) {
			log.Warn().Str("name", upload.OriginalName).Int64("limit", u.maxFileSize).Msg("file exceeds size limit")
			return models.StoredFile{}, ErrFileTooLarge
		}
		if errors.Is(err, store.ErrInvalidFileName) {
			return models.StoredFile{}, err
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			// body ended in the middle of the file
			return models.StoredFile{}, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
		}
		log.Err(err).Str("stored_name", storedName).Msg("error saving file")
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrStoringFile, err)
	}

	log.Info().Str("stored_name", storedName).Int64("size", written).Msg("file stored")

	return models.StoredFile{
		StoredName:   storedName,
		Directory:    u.storage.Location(),
		Size:         written,
		OriginalName: upload.OriginalName,
		MimeType:     upload.MimeType,
	}, nil
}

func (u *uploadService) Discard(ctx context.Context, file models.StoredFile) error {
	if err := u.storage.Remove(ctx, file.StoredName); err != nil {
		return fmt.Errorf("error discarding %s: %w", file.StoredName, err)
	}

	logger.FromContext(ctx).Info().Str("stored_name", file.StoredName).Msg("stored file discarded")
	return nil
}

// limitedReader yields at most n bytes of r and fails with ErrFileTooLarge
// as soon as r turns out to hold more.
type limitedReader struct {
	r io.Reader
	n int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.n < 0 {
		return 0, ErrFileTooLarge
	}

	// read one byte past the limit to tell "exactly n" from "more than n"
	if int64(len(p)) > l.n+1 {
		p = p[:l.n+1]
	}

	n, err := l.r.Read(p)
	l.n -= int64(n)
	if l.n < 0 {
		return 0, ErrFileTooLarge
	}

	return n, err
}

// exceeded reports whether more than the limit was read. Some backends do
// not keep the reader's error in their error chain.
func (l *limitedReader) exceeded() bool {
	return l.n < 0
}
