package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AbdulSamiEjaz/image-upload-server/internal/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	postgresMaxOpenConns = 4
	postgresMaxIdleConns = 2
)

// DB is a PostgreSQL backing store opened through the pgx stdlib driver.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxIdleConns)

	return newPostgresStore(ctx, conn, log)
}

func newPostgresStore(ctx context.Context, conn *sql.DB, log *logger.Logger) (*DB, error) {
	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Msg("connected to postgres successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

func (db *DB) Close(_ context.Context) error {
	return db.DB.Close()
}

func (db *DB) Kind() string {
	return "postgres"
}
