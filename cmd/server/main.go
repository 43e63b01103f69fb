// Command server runs the yacht rental HTTP API.
//
// @title           Marina Caribe Yacht Rental API
// @version         1.0
// @description     Rental management for the Marina Caribe fleet: accounts, clients, yacht inventory, reservations with server-side pricing, and an audit log.
// @BasePath        /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token obtained from POST /auth/login.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/marinacaribe/yacht-rental-system/internal/api"
	"github.com/marinacaribe/yacht-rental-system/internal/core/service"
	"github.com/marinacaribe/yacht-rental-system/internal/infrastructure/config"
	mongodb "github.com/marinacaribe/yacht-rental-system/internal/infrastructure/db/mongo"
	redisdb "github.com/marinacaribe/yacht-rental-system/internal/infrastructure/db/redis"
	"github.com/marinacaribe/yacht-rental-system/internal/infrastructure/queue"
	"github.com/marinacaribe/yacht-rental-system/pkg/logger"
)

func main() {
	// .env overlays the real environment in development; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("error disconnecting mongodb")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	yachtRepo := mongodb.NewYachtRepository(db)
	reservationRepo := mongodb.NewReservationRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure user indexes")
	}
	if err := clientRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure client indexes")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("error closing redis")
		}
	}()

	sessionStore := redisdb.NewSessionStore(rdb, cfg.SessionTimeout())

	// --- Audit pipeline ---
	dispatcher := queue.NewDispatcher(0, activityRepo, log)
	dispatcher.Start(ctx)
	activityService := service.NewActivityService(dispatcher, activityRepo)

	// --- Services ---
	authService := service.NewAuthService(userRepo, sessionStore, activityService, cfg.JWTSecret, cfg.SessionTimeout(), log)
	userService := service.NewUserService(userRepo, activityService, cfg.BcryptCost, log)
	clientService := service.NewClientService(clientRepo, log)
	yachtService := service.NewYachtService(yachtRepo, log)
	reservationService := service.NewReservationService(reservationRepo, clientRepo, yachtRepo, activityService, log)

	if cfg.SeedOnStart {
		seeder := service.NewSeeder(
			userService, clientService, yachtService, reservationService,
			userRepo, clientRepo, yachtRepo, reservationRepo,
			log,
		)
		if err := seeder.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("database seeding failed")
		}
	}

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		JWTSecret:    cfg.JWTSecret,
		Log:          log,
		Mongo:        db,
		Redis:        rdb,
		Auth:         authService,
		Users:        userService,
		Clients:      clientService,
		Yachts:       yachtService,
		Reservations: reservationService,
		Activity:     activityService,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
