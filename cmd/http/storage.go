package main

import (
	"context"
	"fmt"

	"github.com/rafaelleal24/commerce/internal/adapters/config"
	"github.com/rafaelleal24/commerce/internal/adapters/http/controllers"
	"github.com/rafaelleal24/commerce/internal/adapters/mongo"
	mongorepo "github.com/rafaelleal24/commerce/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/commerce/internal/adapters/outbox"
	"github.com/rafaelleal24/commerce/internal/adapters/postgres"
	pgrepo "github.com/rafaelleal24/commerce/internal/adapters/postgres/repository"
	"github.com/rafaelleal24/commerce/internal/core/logger"
	"github.com/rafaelleal24/commerce/internal/core/port"
)

// storage is the set of repositories backed by the configured driver.
type storage struct {
	users     port.UserPort
	points    port.PointPort
	brands    port.BrandPort
	products  port.ProductPort
	likes     port.LikePort
	orders    port.OrderPort
	outbox    outbox.Repository
	txManager port.TransactionManager
	health    controllers.HealthChecker
	close     func()
}

func newStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageMongo:
		return newMongoStorage(ctx, cfg.Mongo)
	case config.StoragePostgres:
		return newPostgresStorage(ctx, cfg.Postgres)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func newMongoStorage(ctx context.Context, cfg config.MongoConfig) (*storage, error) {
	client, err := mongo.NewConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Database})

	database := client.Database(cfg.Database)
	outboxRepository := mongorepo.NewOutboxRepository(database)
	return &storage{
		users:     mongorepo.NewUserRepository(database),
		points:    mongorepo.NewPointRepository(database),
		brands:    mongorepo.NewBrandRepository(database),
		products:  mongorepo.NewProductRepository(database),
		likes:     mongorepo.NewLikeRepository(database),
		orders:    mongorepo.NewOrderRepository(database, outboxRepository),
		outbox:    outboxRepository,
		txManager: mongo.NewTransactionManager(client),
		health: controllers.HealthChecker{
			Name:  "mongodb",
			Check: func(ctx context.Context) error { return client.Ping(ctx, nil) },
		},
		close: func() { _ = mongo.Disconnect(context.Background(), client) },
	}, nil
}

func newPostgresStorage(ctx context.Context, cfg config.PostgresConfig) (*storage, error) {
	db, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.RunMigrations {
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info(ctx, "Postgres migrations applied", nil)
	}
	logger.Info(ctx, "Connected to Postgres", nil)

	outboxRepository := pgrepo.NewOutboxRepository(db)
	return &storage{
		users:     pgrepo.NewUserRepository(db),
		points:    pgrepo.NewPointRepository(db),
		brands:    pgrepo.NewBrandRepository(db),
		products:  pgrepo.NewProductRepository(db),
		likes:     pgrepo.NewLikeRepository(db),
		orders:    pgrepo.NewOrderRepository(db, outboxRepository),
		outbox:    outboxRepository,
		txManager: postgres.NewTransactionManager(db),
		health: controllers.HealthChecker{
			Name:  "postgres",
			Check: func(ctx context.Context) error { return db.Ping(ctx) },
		},
		close: db.Close,
	}, nil
}
