package store

import (
	"context"
	"fmt"

	"github.com/AbdulSamiEjaz/image-upload-server/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore is a MongoDB backing store.
type MongoStore struct {
	client *mongo.Client
	logger *logger.Logger
}

func NewConnectMongo(ctx context.Context, uri string, log *logger.Logger) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Err(err).Msg("error occurred during mongodb connection")
		return nil, fmt.Errorf("error occurred during mongodb connection: %w", err)
	}

	// Connect does not dial; ping forces server selection
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Msg("error connecting mongodb (ping)")
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}
	log.Info().Msg("connected to mongodb successfully")

	return &MongoStore{client: client, logger: log}, nil
}

func (m *MongoStore) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoStore) Kind() string {
	return "mongodb"
}
