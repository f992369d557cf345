package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/food-supply/internal/api/http"
	"github.com/spec-kit/food-supply/internal/api/http/handlers"
	"github.com/spec-kit/food-supply/internal/auth"
	"github.com/spec-kit/food-supply/internal/config"
	"github.com/spec-kit/food-supply/internal/events"
	"github.com/spec-kit/food-supply/internal/observability"
	"github.com/spec-kit/food-supply/internal/persistence"
	"github.com/spec-kit/food-supply/internal/repository"
	"github.com/spec-kit/food-supply/internal/service"
	"github.com/spec-kit/food-supply/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	sellerRepo := repository.NewSellerRepository(pool)
	vendorRepo := repository.NewVendorRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		SellerRepo: sellerRepo,
		VendorRepo: vendorRepo,
		Dispatcher: dispatcher,
	})

	tokens := authService.TokenManager()
	authenticator := auth.NewAuthenticator(tokens, sellerRepo, vendorRepo)
	authMiddleware := auth.NewAuthMiddleware(authenticator, logger)

	sellerGuard := auth.NewRouteGuard(tokens, auth.GuardConfig{
		CookieName:      auth.SellerCookie,
		AuthEntryPath:   "/seller",
		ProtectedPrefix: "/seller/dashboard",
		DashboardPath:   "/seller/dashboard",
	}, logger)
	vendorGuard := auth.NewRouteGuard(tokens, auth.GuardConfig{
		CookieName:      auth.VendorCookie,
		AuthEntryPath:   "/vendor",
		ProtectedPrefix: "/vendor/dashboard",
		DashboardPath:   "/vendor/dashboard",
	}, logger)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Sellers:        handlers.NewSellersHandler(authService),
		Vendors:        handlers.NewVendorsHandler(authService),
		Pages:          handlers.NewPagesHandler(),
		AuthMiddleware: authMiddleware,
		SellerGuard:    sellerGuard,
		VendorGuard:    vendorGuard,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
