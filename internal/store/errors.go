package store

import "errors"

// File storage errors.
var (
	// ErrInvalidFileName is returned by [FileStorage.Save] for names that are
	// empty or would leave the storage location (path separators, "." or "..").
	ErrInvalidFileName = errors.New("invalid file name")

	// ErrCreatingStorage is returned when the storage location cannot be
	// prepared (directory creation, bucket lookup).
	ErrCreatingStorage = errors.New("error creating file storage")

	// ErrUnknownStorageBackend is returned for a backend name other than
	// "disk" or "minio".
	ErrUnknownStorageBackend = errors.New("unknown storage backend")
)

// Backing-store connection errors.
var (
	// ErrEmptyDatabaseURL is returned by [Connect] when no URL is configured.
	ErrEmptyDatabaseURL = errors.New("database url is empty")

	// ErrInvalidDatabaseURL is returned by [Connect] when the URL cannot be parsed.
	ErrInvalidDatabaseURL = errors.New("database url is invalid")

	// ErrUnsupportedDatabaseScheme is returned by [Connect] for URL schemes
	// other than mongodb, mongodb+srv, postgres and postgresql.
	ErrUnsupportedDatabaseScheme = errors.New("unsupported database url scheme")
)
