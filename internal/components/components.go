package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/drone-project-m2gla/project-repository/internal/api"
	"github.com/drone-project-m2gla/project-repository/internal/config"
	"github.com/drone-project-m2gla/project-repository/internal/geocode"
	"github.com/drone-project-m2gla/project-repository/internal/redis"
	"github.com/drone-project-m2gla/project-repository/internal/service"
	"github.com/drone-project-m2gla/project-repository/internal/storage/postgres"
	"github.com/drone-project-m2gla/project-repository/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	PushSender *service.PushSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	registry := redis.NewPushRegistry(redisClient)
	queue := redis.NewNotificationQueue(redisClient.Client, "notifications:queue")

	geocoder := newGeocoder(cfg, logger)

	interventionSvc := service.NewInterventionService(
		storage.Interventions(),
		geocoder,
		queue,
		logger,
		cfg.Repo.SaveRetries,
	)
	pushSvc := service.NewPushService(registry, logger)

	srv := service.NewService(interventionSvc, pushSvc)

	var sender *service.PushSender
	if !cfg.Push.Disabled {
		sender = service.NewPushSender(logger, cfg.Push, queue, registry)
	}

	if cfg.APIKey == "" {
		logger.Warn("API_KEY empty, intervention routes are unauthenticated")
	}

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		PushSender: sender,
	}, nil
}

// newGeocoder falls back to the no-op geocoder when no api key is
// configured, so local setups run without external calls.
func newGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	if cfg.Geocoder.APIKey == "" {
		logger.Warn("GEOCODER_API_KEY empty, interventions will be created without coordinates")
		return geocode.Noop{}
	}

	g, err := geocode.NewGoogleGeocoder(cfg.Geocoder.APIKey)
	if err != nil {
		logger.Error("Geocoder init failed, falling back to noop", slog.Any("error", err))
		return geocode.Noop{}
	}
	return g
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components shut down",
		slog.Duration("latency", time.Since(start)))
}
