package service

import "errors"

// Upload failures recognised by the transport layer. Every error returned by
// an [UploadService] or by the multipart reader either is, or wraps, one of
// these values; anything else is treated as an internal error.
var (
	// ErrFileTooLarge is returned when a file exceeds the configured size
	// limit. Nothing of the file remains in storage.
	ErrFileTooLarge = errors.New("file is too large")

	// ErrFileLimitReached is returned when a request carries more file parts
	// than the configured maximum.
	ErrFileLimitReached = errors.New("file limit reached")

	// ErrNotAnImage is returned by the content filter for anything that is
	// not an image.
	ErrNotAnImage = errors.New("file is not an image")

	// ErrUnexpectedField is returned for a file sent under a field other than
	// the upload field, or for a second file on the upload field.
	ErrUnexpectedField = errors.New("unexpected file field")

	// ErrNoFileProvided is returned when a well-formed request has no file part.
	ErrNoFileProvided = errors.New("no file provided")

	// ErrMalformedRequest is returned when the body is not a readable
	// multipart/form-data stream.
	ErrMalformedRequest = errors.New("malformed upload request")

	// ErrStoringFile wraps storage failures that are not caused by the client.
	ErrStoringFile = errors.New("error storing file")
)
