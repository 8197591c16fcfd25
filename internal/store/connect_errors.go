// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The image-upload-server Authors

package store

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It indicates whether a failed connection attempt may succeed later.
type ErrorClassification int

const (
	// NonRetryable indicates that the failure will not go away by itself:
	// bad credentials, an unknown database, a malformed URL.
	NonRetryable ErrorClassification = iota

	// Retryable indicates a transient failure such as a refused connection,
	// a timeout or a server that is still starting.
	Retryable
)

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// server errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err as a *pgconn.PgError and delegates to
// [ClassifyPgError]. Other errors are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}
	return NonRetryable
}

// ClassifyPgError maps a PostgreSQL error code seen while connecting.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Retryable codes:
//   - Class 08: connection exceptions
//   - Class 53: too many connections, out of memory
//   - Class 57: cannot connect now, admin shutdown
//
// Everything else, notably class 28 (invalid authorization) and 3D000
// (unknown database), is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection:
		return Retryable

	case pgerrcode.TooManyConnections,
		pgerrcode.InsufficientResources,
		pgerrcode.OutOfMemory:
		return Retryable

	case pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown:
		return Retryable
	}

	return NonRetryable
}

// MongoErrorClassifier implements [ErrorClassificator] using the driver's
// error labels.
type MongoErrorClassifier struct{}

func NewMongoErrorClassifier() *MongoErrorClassifier {
	return &MongoErrorClassifier{}
}

func (c *MongoErrorClassifier) Classify(err error) ErrorClassification {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return Retryable
	}
	return NonRetryable
}

var connectClassifiers = []ErrorClassificator{
	NewPostgresErrorClassifier(),
	NewMongoErrorClassifier(),
}

// ClassifyConnectError classifies an error returned by [Connect]. Missing or
// malformed configuration is never retryable; network failures and
// timeouts of either driver are.
func ClassifyConnectError(err error) ErrorClassification {
	if err == nil ||
		errors.Is(err, ErrEmptyDatabaseURL) ||
		errors.Is(err, ErrInvalidDatabaseURL) ||
		errors.Is(err, ErrUnsupportedDatabaseScheme) {
		return NonRetryable
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Retryable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Retryable
	}

	for _, c := range connectClassifiers {
		if c.Classify(err) == Retryable {
			return Retryable
		}
	}

	return NonRetryable
}
