package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wanderstay/travel-api/internal/api"
	"github.com/wanderstay/travel-api/internal/infrastructure/config"
	mongorepo "github.com/wanderstay/travel-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/wanderstay/travel-api/internal/infrastructure/db/redis"
	"github.com/wanderstay/travel-api/pkg/logger"

	_ "github.com/wanderstay/travel-api/docs" // swagger docs
)

// @title        Wanderstay Travel API
// @version      1.0
// @description  Travel booking backend: hotels, bookings, reviews, favorites and third-party availability search.

// @securityDefinitions.apikey BearerAuth
// @in    header
// @name  Authorization
// @description Type "Bearer" followed by a space and the JWT token.

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// The real logger needs the config, and config loading needs a logger to
	// report failures. Bootstrap a bare one for the load, then configure.
	bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
	cfg := config.Load(bootLog)

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	e := api.NewRouter(cfg, db, mongoClient, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
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
	log.Info().Msg("server stopped")
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongorepo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongorepo.NewBookingRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongorepo.NewReviewRepository(db).EnsureIndexes(ctx)
}
