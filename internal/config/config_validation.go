// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The image-upload-server Authors

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] can be used at
// startup. The database URL is not checked: an empty or
// unreachable backing store is logged at runtime and does not stop the
// server.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d is out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("%w: max file size must be positive", ErrInvalidUploadConfigs)
	}
	if cfg.Upload.MaxFiles < 1 {
		return fmt.Errorf("%w: max files must be at least 1", ErrInvalidUploadConfigs)
	}
	if cfg.Upload.FieldName == "" {
		return fmt.Errorf("%w: empty field name", ErrInvalidUploadConfigs)
	}

	switch cfg.Storage.Backend {
	case StorageBackendDisk:
		if cfg.Upload.Dir == "" {
			return fmt.Errorf("%w: empty upload directory", ErrInvalidStorageConfigs)
		}
	case StorageBackendMinIO:
		m := cfg.Storage.MinIO
		if m.Endpoint == "" || m.AccessKey == "" || m.SecretKey == "" || m.Bucket == "" {
			return fmt.Errorf("%w: minio configuration incomplete", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	return nil
}
