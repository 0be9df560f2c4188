// Package app wires configuration into a ready cart store.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nikolayk812/rocketcart/internal/catalog"
	"github.com/nikolayk812/rocketcart/internal/config"
	"github.com/nikolayk812/rocketcart/internal/logger"
	"github.com/nikolayk812/rocketcart/internal/notify"
	"github.com/nikolayk812/rocketcart/internal/port"
	"github.com/nikolayk812/rocketcart/internal/repository"
	"github.com/nikolayk812/rocketcart/internal/service"
)

type App struct {
	Cart    *service.CartStore
	Catalog *catalog.Client

	closers []func(context.Context) error
}

// New builds the catalog client and storage backend named in cfg and loads
// the cart. A nil log is built from cfg.LogLevel and a nil notifier logs
// notifications.
func New(ctx context.Context, cfg config.Config, log *slog.Logger, notifier port.Notifier) (_ *App, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cfg.Validate: %w", err)
	}

	if log == nil {
		log = logger.New(logger.Options{
			Level:  cfg.LogLevel,
			Output: cfg.LogOutput,
		})
	}
	if notifier == nil {
		notifier = notify.NewLog(log)
	}

	unit, err := cfg.Catalog.ParseCurrency()
	if err != nil {
		return nil, err
	}

	catalogClient, err := catalog.New(catalog.Options{
		BaseURL:  cfg.Catalog.BaseURL,
		Timeout:  cfg.Catalog.Timeout,
		Currency: unit,
		Logger:   log,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.New: %w", err)
	}

	a := &App{Catalog: catalogClient}

	defer func() {
		if err != nil {
			err = errors.Join(err, a.Close(ctx))
		}
	}()

	storage, err := a.openStorage(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("openStorage: %w", err)
	}

	a.Cart, err = service.LoadCartStore(ctx, storage, catalogClient, notifier, log)
	if err != nil {
		return nil, fmt.Errorf("service.LoadCartStore: %w", err)
	}

	log.InfoContext(ctx, "cart store ready",
		"storage", cfg.Storage.Driver,
		"catalog", cfg.Catalog.BaseURL)

	return a, nil
}

func (a *App) openStorage(ctx context.Context, cfg config.StorageConfig) (port.CartStorage, error) {
	switch cfg.Driver {
	case config.StoragePostgres:
		if cfg.Migrate {
			if err := repository.Migrate(cfg.PostgresDSN); err != nil {
				return nil, fmt.Errorf("repository.Migrate: %w", err)
			}
		}

		pool, err := repository.ConnectPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("repository.ConnectPostgres: %w", err)
		}
		a.closers = append(a.closers, func(context.Context) error {
			pool.Close()
			return nil
		})

		return repository.NewPostgresStorage(pool, cfg.Key)

	case config.StorageRedis:
		client, err := repository.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, fmt.Errorf("repository.ConnectRedis: %w", err)
		}
		a.closers = append(a.closers, func(context.Context) error {
			return client.Close()
		})

		return repository.NewRedisStorage(client, cfg.Key)

	case config.StorageMongo:
		database, err := repository.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("repository.ConnectMongo: %w", err)
		}
		a.closers = append(a.closers, func(ctx context.Context) error {
			return database.Client().Disconnect(ctx)
		})

		return repository.NewMongoStorage(database, cfg.Key)
	}

	return nil, fmt.Errorf("driver[%s] is not supported", cfg.Driver)
}

// Close releases storage connections.
func (a *App) Close(ctx context.Context) error {
	var errs []error

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil

	return errors.Join(errs...)
}
