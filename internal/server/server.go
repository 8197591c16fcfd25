package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/AbdulSamiEjaz/image-upload-server/internal/config"
	myHTTP "github.com/AbdulSamiEjaz/image-upload-server/internal/handler/http"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/logger"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers

	address         string
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func NewServer(handler *myHTTP.Handler, workers *workers.Workers, cfg config.Server, logger *logger.Logger) Server {
	logger.Info().Msg("creating new server...")

	return &server{
		httpServer:      newHTTPServer(handler.Init(), cfg),
		workers:         workers,
		address:         cfg.Address(),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

func (s *server) RunServer(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("%w on %s: %w", ErrListen, s.address, err)
	}

	port := ln.Addr().(*net.TCPAddr).Port
	s.logger.Info().Int("port", port).Msgf("server started on http://localhost:%d", port)

	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.workers.Run(ctx)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(ln)
	}()

	select {
	case err = <-serveErr:
		// stop workers before reporting
		stop()
		s.workers.Wait()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrServe, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	if err = s.httpServer.shutdown(shutdownCtx); err != nil {
		s.logger.Err(err).Msg("error shutting down http server")
	}
	s.workers.Wait()

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}
