package cmd

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"next-target-mock/bootstrap"
	"next-target-mock/config"
	"next-target-mock/database"
	repo "next-target-mock/internal/repository"
)

type closeFunc func(ctx context.Context) error

// openStore builds the store selected by store.driver. The returned close
// function releases the Mongo client, if any.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (repo.ManpowerStore, closeFunc, error) {
	if cfg.Store.Driver == config.DriverMemory {
		store, err := repo.NewMemoryManpowerStore(cfg.Mongo.Database + "." + cfg.Mongo.Collection)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open memory store")
		}
		log.Warn("using in-memory store, data is lost on exit")
		return store, func(context.Context) error { return nil }, nil
	}

	client, err := database.ConnectMongo(ctx, cfg.Mongo, log)
	if err != nil {
		return nil, nil, err
	}
	col := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
	if err := bootstrap.EnsureManpowerIndexes(ctx, col); err != nil {
		_ = database.DisconnectMongo(ctx, client)
		return nil, nil, err
	}
	closer := func(ctx context.Context) error { return database.DisconnectMongo(ctx, client) }
	return repo.NewMongoManpowerStore(col), closer, nil
}
