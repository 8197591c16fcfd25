package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	Server struct {
		Port              int      `json:"port"`
		ReadHeaderTimeout Duration `json:"read_header_timeout"`
		ShutdownTimeout   Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Database struct {
		URL            string   `json:"url"`
		ConnectTimeout Duration `json:"connect_timeout"`
	} `json:"database,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		MinIO   struct {
			Endpoint  string `json:"endpoint"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			Bucket    string `json:"bucket"`
		} `json:"minio,omitempty"`
	} `json:"storage,omitempty"`

	Upload struct {
		Dir          string `json:"dir"`
		MaxFileSize  int64  `json:"max_file_size"`
		MaxFiles     int    `json:"max_files"`
		FieldName    string `json:"field_name"`
		SniffContent bool   `json:"sniff_content"`
		LegacyWire   bool   `json:"legacy_wire"`
	} `json:"upload,omitempty"`

	Metrics struct {
		Disabled bool `json:"disabled"`
	} `json:"metrics,omitempty"`

	// Port mirrors the flat "PORT" key used by earlier deployments.
	Port int `json:"PORT,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	port := jsonCfg.Server.Port
	if port == 0 {
		port = jsonCfg.Port
	}

	cfg := &StructuredConfig{
		Server: Server{
			Port:              port,
			ReadHeaderTimeout: time.Duration(jsonCfg.Server.ReadHeaderTimeout),
			ShutdownTimeout:   time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Database: Database{
			URL:            jsonCfg.Database.URL,
			ConnectTimeout: time.Duration(jsonCfg.Database.ConnectTimeout),
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			MinIO: MinIO{
				Endpoint:  jsonCfg.Storage.MinIO.Endpoint,
				AccessKey: jsonCfg.Storage.MinIO.AccessKey,
				SecretKey: jsonCfg.Storage.MinIO.SecretKey,
				Bucket:    jsonCfg.Storage.MinIO.Bucket,
			},
		},
		Upload: Upload{
			Dir:          jsonCfg.Upload.Dir,
			MaxFileSize:  jsonCfg.Upload.MaxFileSize,
			MaxFiles:     jsonCfg.Upload.MaxFiles,
			FieldName:    jsonCfg.Upload.FieldName,
			SniffContent: jsonCfg.Upload.SniffContent,
			LegacyWire:   jsonCfg.Upload.LegacyWire,
		},
		Metrics: Metrics{
			Disabled: jsonCfg.Metrics.Disabled,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
