package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/AbdulSamiEjaz/image-upload-server/internal/logger"
)

// Connect opens the backing store addressed by rawURL. The scheme picks the
// driver: mongodb and mongodb+srv for MongoDB, postgres and postgresql for
// PostgreSQL. The returned store has answered a ping.
func Connect(ctx context.Context, rawURL string, log *logger.Logger) (BackingStore, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, ErrEmptyDatabaseURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		// url errors echo the input, which may carry credentials
		return nil, ErrInvalidDatabaseURL
	}

	driverLog := &logger.Logger{Logger: log.With().Str("driver", u.Scheme).Str("host", u.Host).Logger()}

	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		return NewConnectMongo(ctx, rawURL, driverLog)
	case "postgres", "postgresql":
		return NewConnectPostgres(ctx, rawURL, driverLog)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDatabaseScheme, u.Scheme)
	}
}
