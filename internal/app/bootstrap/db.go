// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	listingstore "github.com/dalemusser/aidhub/internal/app/store/listings"
	"github.com/dalemusser/aidhub/internal/app/system/indexes"
	"github.com/dalemusser/aidhub/internal/app/system/timeouts"
	"github.com/dalemusser/aidhub/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB builds the dataset source. A Mongo client is opened only for
// the mongo source; file and http sources need no connection.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	var deps DBDeps

	if appCfg.DatasetSource == listingstore.KindMongo {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
		if err != nil {
			return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
		defer cancel()
		if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
			_ = client.Disconnect(ctx)
			return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
		}
		deps.MongoClient = client
		deps.MongoDatabase = client.Database(appCfg.MongoDatabase)
		logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	}

	src, err := listingstore.New(sourceConfig(appCfg, deps, logger))
	if err != nil {
		if deps.MongoClient != nil {
			_ = deps.MongoClient.Disconnect(ctx)
		}
		return DBDeps{}, err
	}
	deps.Listings = src
	logger.Info("dataset source ready",
		zap.String("kind", appCfg.DatasetSource),
		zap.String("source", src.Name()))
	return deps, nil
}

func sourceConfig(appCfg AppConfig, deps DBDeps, logger *zap.Logger) listingstore.Config {
	return listingstore.Config{
		Kind:   appCfg.DatasetSource,
		Logger: logger,
		Path:   appCfg.DatasetPath,
		URL:    appCfg.DatasetURL,
		OAuth: listingstore.OAuthConfig{
			TokenURL:     appCfg.DatasetOAuthTokenURL,
			ClientID:     appCfg.DatasetOAuthClientID,
			ClientSecret: appCfg.DatasetOAuthClientSecret,
		},
		DB:         deps.MongoDatabase,
		Collection: appCfg.MongoCollection,
	}
}

// EnsureSchema attaches the listings validator and indexes for the mongo
// source. Other sources have no schema.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}
	coll := appCfg.MongoCollection
	if coll == "" {
		coll = listingstore.DefaultCollection
	}
	if err := validators.EnsureAll(ctx, deps.MongoDatabase, coll); err != nil {
		logger.Error("ensure validators failed", zap.Error(err))
		return err
	}
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase, coll); err != nil {
		logger.Error("ensure indexes failed", zap.Error(err))
		return err
	}
	return nil
}
