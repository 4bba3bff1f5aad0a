package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/drone-project-m2gla/project-repository/internal/config"
	"github.com/drone-project-m2gla/project-repository/pkg/e"
)

type Postgres struct {
	Pool         *pgxpool.Pool
	Intervention InterventionRepository
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	if err := EnsureSchema(ctx, pool); err != nil {
		logger.Error("Failed to ensure schema", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.EnsureSchema", err)
	}

	pg := &Postgres{
		Pool:         pool,
		Intervention: NewInterventionRepo(pool, logger, cfg.Repo.OpTimeout),
	}

	logger.Info("Postgres repositories created")
	return pg, nil
}

// EnsureSchema creates the aggregate table. One row per intervention; the
// means roster travels in the jsonb column and revision backs the
// optimistic lock.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS interventions (
			id            uuid PRIMARY KEY,
			name          text NOT NULL,
			address       text NOT NULL,
			post_code     text NOT NULL,
			city          text NOT NULL,
			disaster_code text NOT NULL,
			latitude      double precision NOT NULL,
			longitude     double precision NOT NULL,
			altitude      double precision NOT NULL,
			means         jsonb NOT NULL,
			revision      bigint NOT NULL,
			created_at    timestamptz NOT NULL
		);
	`)
	return err
}
