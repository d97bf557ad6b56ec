package main

import (
	"context"
	"log/slog"
	"os"

	"pabw/config"
	"pabw/internal/delivery"
	"pabw/internal/delivery/api"
	"pabw/internal/delivery/api/middleware"
	"pabw/internal/delivery/api/router/handler"
	"pabw/internal/infra/auth"
	"pabw/internal/infra/backend"
	logs "pabw/internal/infra/log"
	"pabw/internal/infra/qrcode"
	"pabw/internal/infra/storage"
	"pabw/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		storage.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.NewHTTPBackend,
			auth.NewJWTInspector,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionStore,
			impl.NewSessionRefresher,
			impl.NewResourceCache,
			impl.NewProfileCache,
			impl.NewRouteGuard,
			impl.NewAuthService,
			impl.NewActionService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewGuardMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProductHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewDeliveryHandler,
			handler.NewAccountHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
