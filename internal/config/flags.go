package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses all configuration flags from args (without the
// program name).
//
// Flags:
//
//	-p listening port
//	-d backing store URL
//	-u upload directory
//	-c/-config json file path with configs
//	-storage-backend storage backend (disk or minio)
//	-max-file-size maximum file size in bytes
//	-max-files maximum number of files per request
//	-field upload form field name
//	-sniff inspect file bytes in addition to the declared type
//	-legacy-wire answer with the first API version's wire format
//	-metrics-disabled do not expose /metrics
//	-read-header-timeout request header read timeout (e.g., "5s")
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("upload-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var port int
	var databaseURL string
	var uploadDir string
	var jsonConfigPath string
	var storageBackend string
	var maxFileSize int64
	var maxFiles int
	var fieldName string
	var sniff bool
	var legacyWire bool
	var metricsDisabled bool
	var readHeaderTimeout time.Duration
	var shutdownTimeout time.Duration

	fs.IntVar(&port, "p", 0, "Listening port")
	fs.StringVar(&databaseURL, "d", "", "Backing store URL")
	fs.StringVar(&uploadDir, "u", "", "Upload directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&storageBackend, "storage-backend", "", "Storage backend (disk or minio)")
	fs.Int64Var(&maxFileSize, "max-file-size", 0, "Maximum file size in bytes")
	fs.IntVar(&maxFiles, "max-files", 0, "Maximum number of files per request")
	fs.StringVar(&fieldName, "field", "", "Upload form field name")
	fs.BoolVar(&sniff, "sniff", false, "Inspect file bytes in addition to the declared type")
	fs.BoolVar(&legacyWire, "legacy-wire", false, "Answer with the first API version's wire format")
	fs.BoolVar(&metricsDisabled, "metrics-disabled", false, "Do not expose /metrics")
	fs.DurationVar(&readHeaderTimeout, "read-header-timeout", 0, "Request header read timeout (e.g., 5s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			Port:              port,
			ReadHeaderTimeout: readHeaderTimeout,
			ShutdownTimeout:   shutdownTimeout,
		},
		Database: Database{
			URL: databaseURL,
		},
		Storage: Storage{
			Backend: storageBackend,
		},
		Upload: Upload{
			Dir:          uploadDir,
			MaxFileSize:  maxFileSize,
			MaxFiles:     maxFiles,
			FieldName:    fieldName,
			SniffContent: sniff,
			LegacyWire:   legacyWire,
		},
		Metrics: Metrics{
			Disabled: metricsDisabled,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
