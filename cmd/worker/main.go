package main

import (
	"context"
	"log/slog"
	"os"

	"tiffin/config"
	"tiffin/internal/delivery"
	"tiffin/internal/delivery/worker"
	"tiffin/internal/delivery/worker/handler"
	"tiffin/internal/domain/service"
	"tiffin/internal/errors"
	logs "tiffin/internal/infra/log"
	"tiffin/internal/infra/notification"
	"tiffin/internal/infra/persistence/postgres"
	"tiffin/internal/infra/pubsub"
	"tiffin/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewSubscriptionRepository,
			postgres.NewNotificationRepository,
			postgres.NewDeviceRepository,
			postgres.NewAnnouncementRepository,
			postgres.NewCustomerRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newFirebaseService,
			pubsub.NewEventPublisher,
		),
	)
}

// newFirebaseService returns nil when push delivery is not configured; notifications are still stored.
func newFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase is not configured, push delivery disabled")

		return nil, nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEventService,
			impl.NewAnnouncementService,
			impl.NewSweepService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewRabbitConsumer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewSweeper,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
