//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock
package store

import (
	"context"
	"io"
)

// FileStorage persists accepted uploads. Names are chosen by the caller and
// are never reused, so implementations do not need to handle overwrites.
type FileStorage interface {
	// Save streams r into a new object called name and returns the number
	// of bytes written. On any error nothing of the object remains.
	Save(ctx context.Context, name, contentType string, r io.Reader) (int64, error)

	// Remove deletes an object previously written by Save.
	Remove(ctx context.Context, name string) error

	// Location describes where objects land: a directory or bucket/prefix.
	Location() string
}

// BackingStore is an open database handle held by the server for the
// lifetime of the process.
type BackingStore interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	// Kind names the driver, e.g. "mongodb" or "postgres".
	Kind() string
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
