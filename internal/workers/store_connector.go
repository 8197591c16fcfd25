package workers

import (
	"context"
	"time"

	"github.com/AbdulSamiEjaz/image-upload-server/internal/config"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/logger"
	"github.com/AbdulSamiEjaz/image-upload-server/internal/store"
)

const storeCloseTimeout = 5 * time.Second

// ConnectFunc opens a backing store; store.Connect in production.
type ConnectFunc func(ctx context.Context, url string, log *logger.Logger) (store.BackingStore, error)

// StoreConnector establishes the backing-store connection once and holds
// the handle until its context is done. Failures are logged, never fatal:
// the upload path does not depend on the backing store.
type StoreConnector struct {
	url     string
	timeout time.Duration
	connect ConnectFunc

	logger *logger.Logger
}

func NewStoreConnector(cfg config.Database, logger *logger.Logger) *StoreConnector {
	return &StoreConnector{
		url:     cfg.URL,
		timeout: cfg.ConnectTimeout,
		connect: store.Connect,
		logger:  logger,
	}
}

func (c *StoreConnector) Run(ctx context.Context) {
	connectCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	bs, err := c.connect(connectCtx, c.url, c.logger)
	if err != nil {
		c.logger.Err(err).
			Str("classification", store.ClassifyConnectError(err).String()).
			Msg("error connecting backing store")
		return
	}
	c.logger.Info().Str("kind", bs.Kind()).Msg("backing store connected")

	<-ctx.Done()

	closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storeCloseTimeout)
	defer cancel()

	if err = bs.Close(closeCtx); err != nil {
		c.logger.Err(err).Str("kind", bs.Kind()).Msg("error closing backing store")
		return
	}
	c.logger.Info().Str("kind", bs.Kind()).Msg("backing store closed")
}
