// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The image-upload-server Authors

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"PORT":                       "8081",
		"SERVER_READ_HEADER_TIMEOUT": "3s",
		"SERVER_SHUTDOWN_TIMEOUT":    "20s",

		"MONGO_URL":                "mongodb://localhost:27017/uploads",
		"DATABASE_CONNECT_TIMEOUT": "4s",

		"STORAGE_BACKEND":          "minio",
		"STORAGE_MINIO_ENDPOINT":   "http://minio:9000",
		"STORAGE_MINIO_ACCESS_KEY": "access",
		"STORAGE_MINIO_SECRET_KEY": "secret",
		"STORAGE_MINIO_BUCKET":     "images",

		"UPLOAD_DIR":           "/var/uploads",
		"UPLOAD_MAX_FILE_SIZE": "2048",
		"UPLOAD_MAX_FILES":     "5",
		"UPLOAD_FIELD_NAME":    "image",
		"UPLOAD_SNIFF_CONTENT": "true",
		"UPLOAD_LEGACY_WIRE":   "true",

		"METRICS_DISABLED": "true",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 20*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "mongodb://localhost:27017/uploads", cfg.Database.URL)
	assert.Equal(t, 4*time.Second, cfg.Database.ConnectTimeout)

	assert.Equal(t, StorageBackendMinIO, cfg.Storage.Backend)
	assert.Equal(t, "http://minio:9000", cfg.Storage.MinIO.Endpoint)
	assert.Equal(t, "access", cfg.Storage.MinIO.AccessKey)
	assert.Equal(t, "secret", cfg.Storage.MinIO.SecretKey)
	assert.Equal(t, "images", cfg.Storage.MinIO.Bucket)

	assert.Equal(t, "/var/uploads", cfg.Upload.Dir)
	assert.Equal(t, int64(2048), cfg.Upload.MaxFileSize)
	assert.Equal(t, 5, cfg.Upload.MaxFiles)
	assert.Equal(t, "image", cfg.Upload.FieldName)
	assert.True(t, cfg.Upload.SniffContent)
	assert.True(t, cfg.Upload.LegacyWire)

	assert.True(t, cfg.Metrics.Disabled)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_OnlyPortAndMongoURL(t *testing.T) {
	setEnvVars(t, map[string]string{
		"PORT":      "7001",
		"MONGO_URL": "mongodb://db",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, 7001, cfg.Server.Port)
	assert.Equal(t, "mongodb://db", cfg.Database.URL)
	assert.Empty(t, cfg.Upload.Dir)
}

func TestParseEnv_InvalidPort(t *testing.T) {
	setEnvVars(t, map[string]string{"PORT": "seven-thousand"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_SHUTDOWN_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	err := loadDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestLoadDotEnv_FillsUnsetVariables(t *testing.T) {
	clearEnvVars(t)

	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("MONGO_URL=mongodb://from-dotenv\nPORT=7100\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("MONGO_URL")
		_ = os.Unsetenv("PORT")
	})

	require.NoError(t, loadDotEnv(p))

	assert.Equal(t, "mongodb://from-dotenv", os.Getenv("MONGO_URL"))
	assert.Equal(t, "7100", os.Getenv("PORT"))
}

func TestLoadDotEnv_DoesNotOverrideExisting(t *testing.T) {
	setEnvVars(t, map[string]string{"PORT": "7200"})

	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("PORT=7100\n"), 0o600))

	require.NoError(t, loadDotEnv(p))

	assert.Equal(t, "7200", os.Getenv("PORT"))
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every variable the config reads; t.Setenv restores
// the original values once the test finishes.
func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"PORT",
		"SERVER_READ_HEADER_TIMEOUT",
		"SERVER_SHUTDOWN_TIMEOUT",

		"MONGO_URL",
		"DATABASE_CONNECT_TIMEOUT",

		"STORAGE_BACKEND",
		"STORAGE_MINIO_ENDPOINT",
		"STORAGE_MINIO_ACCESS_KEY",
		"STORAGE_MINIO_SECRET_KEY",
		"STORAGE_MINIO_BUCKET",

		"UPLOAD_DIR",
		"UPLOAD_MAX_FILE_SIZE",
		"UPLOAD_MAX_FILES",
		"UPLOAD_FIELD_NAME",
		"UPLOAD_SNIFF_CONTENT",
		"UPLOAD_LEGACY_WIRE",

		"METRICS_DISABLED",
	}
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
