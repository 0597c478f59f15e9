package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	httptransport "github.com/Fatenkh7/CODSOFT-T2-Backend/internal/api/http"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/api/http/handlers"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/auth"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/config"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/events"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/observability"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/persistence"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/repository"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/service"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.IsDevelopment())
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	userCodec, err := auth.NewTokenCodec(cfg.Auth.UserTokenSecret, cfg.Auth.TokenTTL())
	if err != nil {
		logger.Fatal("failed to build user token codec", zap.Error(err))
	}
	adminCodec, err := auth.NewTokenCodec(cfg.Auth.AdminTokenSecret, cfg.Auth.TokenTTL())
	if err != nil {
		logger.Fatal("failed to build admin token codec", zap.Error(err))
	}

	dependencies := map[string]handlers.Pinger{"postgres": pg}
	var userAuth auth.Binding
	switch cfg.Auth.UserBinding {
	case config.BindingSession:
		redis := persistence.NewRedis(ctx, cfg.Redis, logger)
		defer redis.Close()
		dependencies["redis"] = redis
		userAuth = auth.NewSessionAuth(
			persistence.NewSessionStore(redis.Client),
			cfg.Auth.SessionCookie,
			cfg.Auth.SessionTTL(),
			!cfg.App.IsDevelopment(),
		)
	default:
		userAuth = auth.NewUserAuth(userCodec)
	}
	adminAuth := auth.NewAdminAuth(adminCodec)
	logger.Info("user binding selected", zap.String("binding", cfg.Auth.UserBinding))

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	inboxRepo := repository.NewInboxRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger, cfg.Notification))

	catalogService := service.NewCatalogService(productRepo, categoryRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httptransport.ErrorHandler(logger, metrics),
	})
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:      logger,
		Metrics:     metrics,
		Timeout:     cfg.App.RequestTimeout(),
		CORSOrigins: cfg.App.CORSOrigins,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, dependencies),
		Users:      handlers.NewUsersHandler(service.NewUserService(userRepo, cfg.Auth.BcryptCost), userAuth),
		Admins:     handlers.NewAdminsHandler(service.NewAdminService(adminRepo, cfg.Auth.BcryptCost), adminAuth),
		Products:   handlers.NewProductsHandler(catalogService),
		Categories: handlers.NewCategoriesHandler(catalogService),
		Orders:     handlers.NewOrdersHandler(service.NewOrderService(orderRepo, dispatcher, logger)),
		Inbox:      handlers.NewInboxHandler(service.NewInboxService(inboxRepo, dispatcher, logger)),
		Metrics:    metrics,
		UserAuth:   userAuth,
		AdminAuth:  adminAuth,
	})

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return app.Listen(cfg.App.Addr())
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	})

	if err := group.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}
