package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/pet-adoption/internal/api/http"
	"github.com/spec-kit/pet-adoption/internal/api/http/handlers"
	"github.com/spec-kit/pet-adoption/internal/auth"
	"github.com/spec-kit/pet-adoption/internal/cache"
	"github.com/spec-kit/pet-adoption/internal/config"
	"github.com/spec-kit/pet-adoption/internal/events"
	"github.com/spec-kit/pet-adoption/internal/observability"
	"github.com/spec-kit/pet-adoption/internal/persistence"
	"github.com/spec-kit/pet-adoption/internal/repository"
	"github.com/spec-kit/pet-adoption/internal/repository/memory"
	"github.com/spec-kit/pet-adoption/internal/service"
	"github.com/spec-kit/pet-adoption/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Env)
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

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	responsibleRepo, petRepo := buildRepositories(pg)

	var listings cache.PetListingCache = cache.NopPetCache{}
	if redis.Enabled() && cfg.Cache.Enabled {
		listings = cache.NewRedisPetCache(redis.Client, cfg.Cache.TTL())
	}

	if cfg.Auth.JWTSecret == "" {
		logger.Warn("JWT_SECRET is not set; login and authenticated routes will fail until it is configured")
	}
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())

	dispatcher := events.NewInMemoryDispatcher(logger)
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger, cfg.Notification))
	worker.StartListingInvalidation(service.NewListingInvalidator(dispatcher, listings, logger))

	authService, err := service.NewAuthService(responsibleRepo, tokens, cfg.Auth.BcryptCost, logger)
	if err != nil {
		logger.Fatal("failed to init auth service", zap.Error(err))
	}
	responsibleService := service.NewResponsibleService(service.ResponsibleDependencies{
		ResponsibleRepo: responsibleRepo,
		Dispatcher:      dispatcher,
		BcryptCost:      cfg.Auth.BcryptCost,
		Logger:          logger,
	})
	petService := service.NewPetService(service.PetDependencies{
		PetRepo:    petRepo,
		Listings:   listings,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httptransport.ErrorHandler(cfg.App.LegacyErrorStatus),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, httptransport.MiddlewareConfig{
		Timeout:           cfg.App.RequestTimeout(),
		LegacyErrorStatus: cfg.App.LegacyErrorStatus,
	})

	authHandler := handlers.NewAuthHandler(authService, handlers.CookieConfig{
		Secure:   cfg.Auth.CookieSecure,
		SameSite: cfg.Auth.CookieSameSite,
	})
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:         authHandler,
		Responsibles: handlers.NewResponsibleHandler(responsibleService, authHandler),
		Pets:         handlers.NewPetsHandler(petService),
		Guard:        auth.NewGuard(tokens, logger),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

// buildRepositories picks Postgres when a DSN is configured and process memory otherwise.
func buildRepositories(pg *persistence.Postgres) (repository.ResponsibleRepository, repository.PetRepository) {
	if pg.Enabled() {
		pool := pg.PoolHandle()
		return repository.NewResponsibleRepository(pool), repository.NewPetRepository(pool)
	}
	owners := memory.NewResponsibleRepo()
	return owners, memory.NewPetRepo(owners)
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
