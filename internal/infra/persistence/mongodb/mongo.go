// Package mongodb contains the concrete implementation of the persistence layer using the MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"

	"workbench/config"
	"workbench/internal/domain/lifecycle"
	"workbench/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.uber.org/fx"
)

const defaultDatabase = "workbench"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the process-wide MongoDB handle. Connect does no I/O; the
// lifecycle pings on start and disconnects on stop. An unreachable server
// only logs a warning so the store is dialed again on first use.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo uri must be provided")
	}

	dbName, err := databaseName(cfg)
	if err != nil {
		return nil, err
	}

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = lifecycle.DefaultTimeout
	}

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout).
		SetMonitor(newCommandLogger(params.Logger, params.Config))

	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}
	db := client.Database(dbName)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				params.Logger.Warn("MongoDB not reachable at startup",
					slog.String("database", dbName),
					slog.Any("error", err),
				)

				return nil
			}

			if err := EnsureCommentIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB", slog.String("database", dbName))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}

// EnsureCommentIndexes creates the index backing the newest-first listing.
func EnsureCommentIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(model.CommentCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_desc"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create comment indexes")
	}

	return nil
}

// databaseName prefers the explicit setting, then the URI path, then a fixed default.
func databaseName(cfg *config.MongoConfig) (string, error) {
	if cfg.Database != "" {
		return cfg.Database, nil
	}

	cs, err := connstring.ParseAndValidate(cfg.URI)
	if err != nil {
		return "", errors.Wrap(err, "invalid mongo uri")
	}
	if cs.Database != "" {
		return cs.Database, nil
	}

	return defaultDatabase, nil
}
