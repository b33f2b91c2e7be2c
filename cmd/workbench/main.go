package main

import (
	"context"
	"log/slog"
	"os"

	"workbench/config"
	"workbench/internal/delivery"
	"workbench/internal/delivery/api"
	"workbench/internal/delivery/api/middleware"
	"workbench/internal/delivery/api/router/handler"
	"workbench/internal/infra/auth"
	"workbench/internal/infra/llm"
	logs "workbench/internal/infra/log"
	"workbench/internal/infra/metrics"
	"workbench/internal/infra/persistence/mongodb"
	"workbench/internal/infra/pinning"
	"workbench/internal/infra/qrcode"
	"workbench/internal/infra/xaman"
	"workbench/internal/usecase/impl"

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
		injectRepo(),
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
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		mongodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewCommentRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewCredentialStore,
			qrcode.NewQRCodeServiceFromConfig,
			llm.NewOpenAIEvaluator,
			xaman.NewClient,
		),
		pinning.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCommentService,
			impl.NewEvaluationService,
			impl.NewWalletService,
			impl.NewPinningService,
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
			handler.NewAuthHandler,
			handler.NewCommentHandler,
			handler.NewEvaluationHandler,
			handler.NewWalletHandler,
			handler.NewPinningHandler,
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
