package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates an unusable listener setting
	// (for example, a port outside 1..65535).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidUploadConfigs indicates invalid upload limits
	// (for example, a non-positive size limit or an empty field name).
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
	// ErrInvalidStorageConfigs indicates an unknown storage backend or an
	// incomplete MinIO configuration.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
