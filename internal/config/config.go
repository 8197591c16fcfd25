// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The image-upload-server Authors

package config

import (
	"strconv"
	"time"
)

// Storage backends understood by [Storage.Backend].
const (
	StorageBackendDisk  = "disk"
	StorageBackendMinIO = "minio"
)

// Defaults applied to every field left empty by all other sources.
const (
	DefaultPort              = 7000
	DefaultUploadDir         = "uploads/"
	DefaultMaxFileSize       = int64(1_000_000_000)
	DefaultMaxFiles          = 3
	DefaultFieldName         = "file"
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultConnectTimeout    = 10 * time.Second
)

// StructuredConfig is the top-level configuration container of the upload
// server. It is populated by merging command-line flags, environment
// variables (including a local .env file), an optional JSON file and
// finally the package defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the listener settings.
	Server Server

	// Database holds the backing-store connection settings.
	Database Database

	// Storage selects where accepted files are written.
	Storage Storage `envPrefix:"STORAGE_"`

	// Upload holds the limits and rules applied to incoming files.
	Upload Upload `envPrefix:"UPLOAD_"`

	// Metrics controls the Prometheus endpoint.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the HTTP listener.
type Server struct {
	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT"`

	// ReadHeaderTimeout bounds the time spent reading request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"SERVER_READ_HEADER_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// Address returns the listen address for Port on all interfaces.
func (s Server) Address() string {
	return ":" + strconv.Itoa(s.Port)
}

// Database holds the backing-store connection settings.
type Database struct {
	// URL is the connection string. The scheme selects the driver:
	// mongodb:// and mongodb+srv:// use MongoDB, postgres:// and
	// postgresql:// use PostgreSQL.
	// Env: MONGO_URL
	URL string `env:"MONGO_URL"`

	// ConnectTimeout bounds the initial connection handshake.
	// Env: DATABASE_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"DATABASE_CONNECT_TIMEOUT"`
}

// Storage selects and configures the file storage backend.
type Storage struct {
	// Backend is either "disk" (default) or "minio".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// MinIO is used when Backend is "minio".
	MinIO MinIO `envPrefix:"MINIO_"`
}

// MinIO holds S3-compatible object storage settings.
type MinIO struct {
	// Endpoint accepts "host:port" or a full http(s) URL.
	// Env: STORAGE_MINIO_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Env: STORAGE_MINIO_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY"`

	// Env: STORAGE_MINIO_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// Env: STORAGE_MINIO_BUCKET
	Bucket string `env:"BUCKET"`
}

// Upload holds the rules applied to every incoming file.
type Upload struct {
	// Dir is the directory accepted files are written to (disk backend)
	// or the object key prefix (minio backend).
	// Env: UPLOAD_DIR
	Dir string `env:"DIR"`

	// MaxFileSize is the largest accepted file in bytes.
	// Env: UPLOAD_MAX_FILE_SIZE
	MaxFileSize int64 `env:"MAX_FILE_SIZE"`

	// MaxFiles is the number of file parts a single request may carry.
	// Env: UPLOAD_MAX_FILES
	MaxFiles int `env:"MAX_FILES"`

	// FieldName is the multipart form field the file is read from.
	// Env: UPLOAD_FIELD_NAME
	FieldName string `env:"FIELD_NAME"`

	// SniffContent makes the content filter inspect the leading bytes of
	// the file in addition to the declared MIME type.
	// Env: UPLOAD_SNIFF_CONTENT
	SniffContent bool `env:"SNIFF_CONTENT"`

	// LegacyWire restores the first API version's responses: the
	// misspelled "sucess" key, status 200 for every outcome and the
	// non-image message for unexpected file fields.
	// Env: UPLOAD_LEGACY_WIRE
	LegacyWire bool `env:"LEGACY_WIRE"`
}

// Metrics controls the Prometheus endpoint.
type Metrics struct {
	// Disabled removes the /metrics route.
	// Env: METRICS_DISABLED
	Disabled bool `env:"DISABLED"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. For every field the first non-zero value wins, in this
// order:
//  1. Command-line flags
//  2. Environment variables (a .env file fills unset variables)
//  3. JSON file (path resolved from sources 1 and 2, or config/default.json)
//  4. Package defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			Port:              DefaultPort,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			ShutdownTimeout:   DefaultShutdownTimeout,
		},
		Database: Database{
			ConnectTimeout: DefaultConnectTimeout,
		},
		Storage: Storage{
			Backend: StorageBackendDisk,
		},
		Upload: Upload{
			Dir:         DefaultUploadDir,
			MaxFileSize: DefaultMaxFileSize,
			MaxFiles:    DefaultMaxFiles,
			FieldName:   DefaultFieldName,
		},
	}
}
