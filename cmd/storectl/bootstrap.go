package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/mongo"
	"storefront/internal/infra/persistence/postgres"

	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// stores is what a command gets from the storage module.
type stores struct {
	Orders repository.OrderRepository
	Roles  repository.RoleRepository
	Users  repository.UserRepository
}

// env is a started storage stack with a matching stop func.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	stores stores
	db     *gorm.DB // nil on mongo
	stop   func()
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadWithEnv[config.Config](c.String("env"), "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = config.StorageDriverPostgres
	}

	return cfg, nil
}

// start boots the configured storage module. Schema migration on start is left to the caller.
func start(c *cli.Context, autoMigrate bool) (*env, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	cfg.Storage.AutoMigrate = autoMigrate

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, logger: logger}
	opts := []fx.Option{
		fx.NopLogger,
		fx.Supply(cfg, logger),
		fx.Populate(&e.stores.Orders, &e.stores.Roles, &e.stores.Users),
	}
	if cfg.Storage.Driver == config.StorageDriverMongo {
		opts = append(opts, mongo.Module)
	} else {
		opts = append(opts, postgres.Module, fx.Populate(&e.db))
	}

	app := fx.New(opts...)
	if err := app.Err(); err != nil {
		return nil, errors.Wrap(err, "build storage")
	}

	startCtx, cancel := context.WithTimeout(c.Context, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return nil, errors.Wrap(err, "start storage")
	}

	e.stop = func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			logger.Warn("Failed to stop storage", slog.Any("error", err))
		}
	}

	return e, nil
}
