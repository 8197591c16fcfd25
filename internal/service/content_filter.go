// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The image-upload-server Authors

package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AbdulSamiEjaz/image-upload-server/models"
	"github.com/gabriel-vasile/mimetype"
)

// sniffLen matches the number of bytes mimetype inspects by default.
const sniffLen = 3072

const imageTopLevelType = "image"

// imageFilter accepts images only.
//
// The declared MIME type is always checked: it is split on "/" and the first
// segment must equal "image". When sniff is set the leading bytes of the
// content are also inspected, so a renamed executable declared as image/png
// is rejected as well.
type imageFilter struct {
	sniff bool
}

// NewImageFilter constructs the [ContentFilter] used by the upload route.
func NewImageFilter(sniff bool) ContentFilter {
	return &imageFilter{sniff: sniff}
}

func (f *imageFilter) Filter(upload *models.Upload) error {
	if strings.Split(upload.MimeType, "/")[0] != imageTopLevelType {
		return fmt.Errorf("%w: declared type %q", ErrNotAnImage, upload.MimeType)
	}

	if !f.sniff {
		return nil
	}

	buffered := bufio.NewReaderSize(upload.Content, sniffLen)
	upload.Content = buffered

	head, err := buffered.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) {
		// body ended or broke before the head could be read
		return fmt.Errorf("%w: reading file head: %w", ErrMalformedRequest, err)
	}

	detected := mimetype.Detect(head)
	if !strings.HasPrefix(detected.String(), imageTopLevelType+"/") {
		return fmt.Errorf("%w: detected type %q", ErrNotAnImage, detected.String())
	}

	return nil
}

// UploadServiceWrapper defines middleware composition for UploadService.
// Implementations wrap an existing UploadService to add behavior such as
// filtering.
type UploadServiceWrapper interface {
	Wrap(UploadService) UploadService // returns a decorated UploadService applying additional behavior
}

type contentFilterService struct {
	inner  UploadService
	filter ContentFilter
}

// NewContentFilterWrapper returns a wrapper that runs filter before the
// wrapped service sees the upload. Rejected uploads never reach storage.
func NewContentFilterWrapper(filter ContentFilter) UploadServiceWrapper {
	return &contentFilterService{filter: filter}
}

func (c *contentFilterService) Wrap(inner UploadService) UploadService {
	return &contentFilterService{
		inner:  inner,
		filter: c.filter,
	}
}

func (c *contentFilterService) Upload(ctx context.Context, upload models.Upload) (models.StoredFile, error) {
	if err := c.filter.Filter(&upload); err != nil {
		return models.StoredFile{}, err
	}

	return c.inner.Upload(ctx, upload)
}

func (c *contentFilterService) Discard(ctx context.Context, file models.StoredFile) error {
	return c.inner.Discard(ctx, file)
}
