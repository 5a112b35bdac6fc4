package main

import (
	"context"
	"log/slog"
	"os"

	"matrimony/config"
	"matrimony/internal/delivery"
	"matrimony/internal/delivery/http"
	"matrimony/internal/delivery/http/middleware"
	"matrimony/internal/delivery/http/router/handler"
	"matrimony/internal/domain/service"
	"matrimony/internal/infra/auth"
	logs "matrimony/internal/infra/log"
	"matrimony/internal/infra/payment/aggregator"
	"matrimony/internal/infra/payment/card"
	"matrimony/internal/infra/persistence/postgres"
	"matrimony/internal/infra/qrcode"
	"matrimony/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewBiodataRepository,
			postgres.NewUserRepository,
			postgres.NewFavoriteRepository,
			postgres.NewPaymentRepository,
			postgres.NewReviewRepository,
			postgres.NewCounterRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
			fx.Annotate(
				card.NewProvider,
				fx.ResultTags(`name:"cardGateway"`),
			),
			fx.Annotate(
				aggregator.NewProvider,
				fx.ResultTags(`name:"checkoutGateway"`),
			),
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
			impl.NewBiodataService,
			impl.NewUserService,
			impl.NewFavoriteService,
			impl.NewPaymentService,
			impl.NewReviewService,
			impl.NewStatsService,
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
			handler.NewAuthHandler,
			handler.NewBiodataHandler,
			handler.NewFavoriteHandler,
			handler.NewUserHandler,
			handler.NewReviewHandler,
			handler.NewPaymentHandler,
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
