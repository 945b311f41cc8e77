package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"pokemonreview/docs"
	"pokemonreview/internal/cache"
	"pokemonreview/internal/config"
	"pokemonreview/internal/database"
	"pokemonreview/internal/database/migration"
	handlers "pokemonreview/internal/http/handler"
	"pokemonreview/internal/http/middleware"
	"pokemonreview/internal/logger"
	"pokemonreview/internal/model"
	"pokemonreview/internal/otel"
	"pokemonreview/internal/repository"
	"pokemonreview/internal/repository/cached"
	"pokemonreview/internal/repository/postgres"
	"pokemonreview/internal/service"
	"pokemonreview/internal/storage"
)

// @title Pokemon Review API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.New(os.Stdout, cfg.Location(), cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize tracing")
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			log.WithError(err).Fatal("failed to migrate database")
		}
	}

	var pokemonRepo repository.PokemonRepository = postgres.NewPokemonPostgres(db)
	reviewRepo := postgres.NewReviewPostgres(db)

	var rdb redis.Cmdable
	if cfg.Redis.Enabled() {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to redis")
		}
		defer client.Close()
		rdb = client
		views := cache.NewViewCache[model.Pokemon](client, cached.PokemonKeyPrefix, cfg.Redis.CacheTTL(), log)
		pokemonRepo = cached.NewPokemonRepository(pokemonRepo, views)
	}

	var store storage.Storage
	var sprites service.SpriteService
	if cfg.MinIO.Enabled() {
		store, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.WithError(err).Fatal("failed to initialize object storage")
		}
		sprites = service.NewSpriteService(store, pokemonRepo, cfg.MinIO.SpriteURLExpiry(), log)
	}

	svcs := handlers.Services{
		Pokemon: service.NewPokemonService(pokemonRepo, store, log),
		Review:  service.NewReviewService(reviewRepo, pokemonRepo),
		Sprites: sprites,
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.WithError(err).Fatal("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(log),
	})

	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, db, rdb, svcs)

	// Swagger UI with dynamic host and scheme; APP_HOST is the fallback host.
	docs.SwaggerInfo.Host = cfg.AppHost
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		if host := c.Get("Host"); host != "" {
			docs.SwaggerInfo.Host = host
		}
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.WithError(err).Error("server shutdown failed")
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.WithError(err).Error("tracing shutdown failed")
		}
	}()

	addr := ":" + cfg.Port
	log.WithField("addr", addr).Info("server starting")
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
