package main

import (
	"context"
	"log/slog"
	"os"

	"wrench/config"
	"wrench/internal/delivery"
	"wrench/internal/delivery/http"
	"wrench/internal/delivery/http/middleware"
	"wrench/internal/delivery/http/router/handler"
	"wrench/internal/delivery/ws"
	"wrench/internal/infra/auth"
	logs "wrench/internal/infra/log"
	"wrench/internal/infra/notification"
	"wrench/internal/infra/payment"
	"wrench/internal/infra/persistence/postgres"
	"wrench/internal/infra/presence"
	"wrench/internal/infra/pubsub"
	"wrench/internal/infra/qrcode"
	"wrench/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		presence.Module,
		pubsub.Module,
		notification.Module,
		payment.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewJobRepository,
			postgres.NewQuoteRepository,
			postgres.NewReviewRepository,
			postgres.NewNotificationRepository,
			postgres.NewMessageRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatcher,
			impl.NewUserService,
			impl.NewJobService,
			impl.NewQuoteService,
			impl.NewReviewService,
			impl.NewMessageService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewJobHandler,
			handler.NewQuoteHandler,
			handler.NewReviewHandler,
			handler.NewNotificationHandler,
			handler.NewPaymentHandler,
		),
		ws.Module,
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
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
