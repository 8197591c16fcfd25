package main

import (
	"context"
	"fmt"
	"os"

	"github.com/AbdulSamiEjaz/image-upload-server/internal/config"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/handler/http"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/logger"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/server"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/service"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/store"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/workers"
	"github.com/AbdulSamiEjaz/image-upload-server/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("image-upload-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// secrets (database url, minio keys) stay out of the log
	log.Debug().
		Int("port", cfg.Server.Port).
		Str("storage_backend", cfg.Storage.Backend).
		Str("upload_dir", cfg.Upload.Dir).
		Int64("max_file_size", cfg.Upload.MaxFileSize).
		Int("max_files", cfg.Upload.MaxFiles).
		Bool("sniff_content", cfg.Upload.SniffContent).
		Bool("legacy_wire", cfg.Upload.LegacyWire).
		Msg("received configs")

	ctx := context.Background()

	storage, err := store.NewFileStorage(ctx, *cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating file storage")
	}

	services := service.NewServices(storage, cfg.Upload, log)
	handler := http.NewHandler(services, *cfg, log)
	backgroundWorkers := workers.NewWorkers(workers.NewStoreConnector(cfg.Database, log))

	srv := server.NewServer(handler, backgroundWorkers, cfg.Server, log)
	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
