package main

import (
	"context"
	"log/slog"
	"os"

	"descya/config"
	"descya/internal/delivery"
	"descya/internal/delivery/http"
	"descya/internal/delivery/http/middleware"
	"descya/internal/delivery/http/router/handler"
	"descya/internal/domain/repository"
	"descya/internal/domain/service"
	"descya/internal/infra/auth"
	logs "descya/internal/infra/log"
	"descya/internal/infra/persistence/memory"
	"descya/internal/infra/persistence/postgres"
	"descya/internal/infra/pubsub"
	"descya/internal/infra/qrcode"
	"descya/internal/usecase/impl"

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
	)
}

type storageParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type storageResult struct {
	fx.Out

	Businesses    repository.BusinessRepository
	Deals         repository.DealRepository
	Coupons       repository.CouponRepository
	Notifications repository.NotificationRepository
	Users         repository.UserRepository
	TxManager     repository.TransactionManager
}

// newStorage selects the persistence backend: PostgreSQL when configured,
// otherwise the in-memory store.
func newStorage(params storageParams) (storageResult, error) {
	if params.Config.Postgres == nil {
		params.Logger.Info("No database configured, using in-memory storage")
		store := memory.NewStore()

		return storageResult{
			Businesses:    memory.NewBusinessRepository(store),
			Deals:         memory.NewDealRepository(store),
			Coupons:       memory.NewCouponRepository(store),
			Notifications: memory.NewNotificationRepository(store),
			Users:         memory.NewUserRepository(store),
			TxManager:     memory.NewTransactionManager(store),
		}, nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return storageResult{}, err
	}

	return storageResult{
		Businesses:    postgres.NewBusinessRepository(db),
		Deals:         postgres.NewDealRepository(db),
		Coupons:       postgres.NewCouponRepository(db),
		Notifications: postgres.NewNotificationRepository(db),
		Users:         postgres.NewUserRepository(db),
		TxManager:     postgres.NewTransactionManager(db),
	}, nil
}

func injectRepo() fx.Option {
	return fx.Provide(
		newStorage,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
			pubsub.NewEventPublisher,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewApprovalService,
			impl.NewCouponService,
			impl.NewCatalogService,
			impl.NewBusinessService,
			impl.NewNotificationService,
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
			handler.NewDealHandler,
			handler.NewCouponHandler,
			handler.NewBusinessHandler,
			handler.NewNotificationHandler,
			handler.NewStatsHandler,
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
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
