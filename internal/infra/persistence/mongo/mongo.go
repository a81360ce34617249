// Package mongo implements the persistence layer on a MongoDB document store.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	ordersCollection      = "orders"
	orderEventsCollection = "order_events"
	rolesCollection       = "roles"
	usersCollection       = "users"

	defaultConnectTimeout  = 10 * time.Second
	serverSelectionTimeout = 5 * time.Second
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB, pings and ensures indexes on start, disconnects on stop
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil {
		return nil, errors.New("mongo configuration is missing")
	}

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(serverSelectionTimeout)
	if cfg.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.MinPoolSize > 0 {
		clientOpts.SetMinPoolSize(cfg.MinPoolSize)
	}

	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}
	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}
			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}
			params.Logger.Info("MongoDB connected", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// EnsureIndexes creates the collections' indexes; existing indexes are left untouched.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		ordersCollection: {
			{Keys: bson.D{{Key: "order_number", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "return_exchange.status", Value: 1}}},
		},
		orderEventsCollection: {
			{Keys: bson.D{{Key: "order_id", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		rolesCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", collection)
		}
	}

	return nil
}
