package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/authz"
	"storefront/internal/infra/cache"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/mongo"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/pubsub"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// The storage driver decides which repository module is wired, so config is loaded up front.
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(cfg.Storage.Driver),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
	)
}

func injectRepo(driver string) fx.Option {
	if driver == config.StorageDriverMongo {
		return mongo.Module
	}

	return postgres.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			authz.New,
			cache.NewOrderCache,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOrderService,
			impl.NewRoleService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOrderHandler,
			handler.NewRoleHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, srv := range params.Deliveries {
		go func() {
			if err := srv.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
