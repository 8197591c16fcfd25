// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The image-upload-server Authors

package models

import "io"

// Upload is a single incoming file taken from a multipart request.
// Every field except Content is client-supplied and untrusted.
type Upload struct {
	// OriginalName is the filename declared by the client.
	OriginalName string

	// MimeType is the Content-Type declared for the file part.
	MimeType string

	// Content streams the file bytes.
	Content io.Reader
}

// StoredFile describes an Upload that was accepted and persisted.
type StoredFile struct {
	// StoredName is the generated name, unique within the storage namespace.
	StoredName string

	// Directory is the configured location the file was written to
	// (a directory for disk storage, "bucket/prefix" for object storage).
	Directory string

	// Size is the number of bytes received, known only once the upload
	// content has been consumed.
	Size int64

	// OriginalName and MimeType refer back to the source Upload.
	OriginalName string
	MimeType     string
}
