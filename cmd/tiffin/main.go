package main

import (
	"context"
	"log/slog"
	"os"

	"tiffin/config"
	"tiffin/internal/delivery"
	"tiffin/internal/delivery/api"
	"tiffin/internal/delivery/api/middleware"
	"tiffin/internal/delivery/api/router/handler"
	"tiffin/internal/domain/service"
	"tiffin/internal/infra/auth"
	"tiffin/internal/infra/export"
	"tiffin/internal/infra/geo"
	logs "tiffin/internal/infra/log"
	"tiffin/internal/infra/persistence/postgres"
	"tiffin/internal/infra/pubsub"
	"tiffin/internal/infra/qrcode"
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewStudentRepository,
			postgres.NewVendorRepository,
			postgres.NewSubscriptionRequestRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewHolidayRepository,
			postgres.NewVendorHolidayRepository,
			postgres.NewOrderRepository,
			postgres.NewNotificationRepository,
			postgres.NewMessageRepository,
			postgres.NewPaymentRepository,
			postgres.NewCustomerRepository,
			postgres.NewAnnouncementRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			geo.NewDistanceCalculator,
			export.NewXLSXExporter,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewStudentService,
			impl.NewVendorService,
			impl.NewSubscriptionRequestService,
			impl.NewSubscriptionService,
			impl.NewHolidayService,
			impl.NewVendorHolidayService,
			impl.NewOrderService,
			impl.NewNotificationService,
			impl.NewMessageService,
			impl.NewPaymentService,
			impl.NewCustomerService,
			impl.NewAnnouncementService,
			impl.NewDeviceService,
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
			handler.NewStudentHandler,
			handler.NewVendorHandler,
			handler.NewSubscriptionRequestHandler,
			handler.NewSubscriptionHandler,
			handler.NewHolidayHandler,
			handler.NewOrderHandler,
			handler.NewNotificationHandler,
			handler.NewMessageHandler,
			handler.NewPaymentHandler,
			handler.NewCustomerHandler,
			handler.NewAnnouncementHandler,
			handler.NewDeviceHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
