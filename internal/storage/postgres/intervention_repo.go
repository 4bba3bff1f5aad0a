package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/drone-project-m2gla/project-repository/internal/domain"
	"github.com/drone-project-m2gla/project-repository/pkg/e"
)

type InterventionRepo struct {
	pool      *pgxpool.Pool
	logger    *slog.Logger
	opTimeout time.Duration
}

func NewInterventionRepo(pool *pgxpool.Pool, logger *slog.Logger, opTimeout time.Duration) *InterventionRepo {
	if opTimeout <= 0 {
		opTimeout = 5 * time.Second
	}
	return &InterventionRepo{pool: pool, logger: logger, opTimeout: opTimeout}
}

func (r *InterventionRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.opTimeout)
}

func (r *InterventionRepo) Create(ctx context.Context, itv *domain.Intervention) error {
	const op = "postgres.Intervention.Create"

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if itv.ID == uuid.Nil {
		itv.ID = uuid.New()
	}
	if itv.CreatedAt.IsZero() {
		itv.CreatedAt = time.Now().UTC()
	}
	itv.Revision = 1

	means, err := json.Marshal(itv.Means)
	if err != nil {
		return e.Wrap(op, err)
	}

	const query = `
		INSERT INTO interventions
			(id, name, address, post_code, city, disaster_code, latitude, longitude, altitude, means, revision, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = r.pool.Exec(ctx, query,
		itv.ID,
		itv.Name,
		itv.Address,
		itv.PostCode,
		itv.City,
		itv.DisasterCode,
		itv.Coordinates.Latitude,
		itv.Coordinates.Longitude,
		itv.Coordinates.Altitude,
		means,
		itv.Revision,
		itv.CreatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (r *InterventionRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Intervention, error) {
	const op = "postgres.Intervention.Get"

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const query = `
		SELECT id, name, address, post_code, city, disaster_code,
		       latitude, longitude, altitude, means, revision, created_at
		FROM interventions
		WHERE id = $1
	`

	itv, err := scanIntervention(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return itv, nil
}

// Save rewrites the whole aggregate row. The WHERE clause carries the
// revision the caller loaded; zero rows affected on an existing id means the
// row advanced underneath us and the caller must redo its load-apply-save
// cycle.
func (r *InterventionRepo) Save(ctx context.Context, itv *domain.Intervention) error {
	const op = "postgres.Intervention.Save"

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	means, err := json.Marshal(itv.Means)
	if err != nil {
		return e.Wrap(op, err)
	}

	const query = `
		UPDATE interventions
		SET name = $2, address = $3, post_code = $4, city = $5, disaster_code = $6,
		    latitude = $7, longitude = $8, altitude = $9, means = $10,
		    revision = revision + 1
		WHERE id = $1 AND revision = $11
	`

	cmd, err := r.pool.Exec(ctx, query,
		itv.ID,
		itv.Name,
		itv.Address,
		itv.PostCode,
		itv.City,
		itv.DisasterCode,
		itv.Coordinates.Latitude,
		itv.Coordinates.Longitude,
		itv.Coordinates.Altitude,
		means,
		itv.Revision,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", itv.ID.String()))
		return e.WrapError(ctx, op, err)
	}

	if cmd.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM interventions WHERE id = $1)`, itv.ID).Scan(&exists); err != nil {
			r.logger.Error("db existence probe failed", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
		if !exists {
			return fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Warn("stale write rejected",
			slog.String("op", op),
			slog.String("id", itv.ID.String()),
			slog.Int64("revision", itv.Revision),
		)
		return fmt.Errorf("%s: %w", op, e.ErrConflict)
	}

	itv.Revision++
	return nil
}

func (r *InterventionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Intervention.Delete"

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cmd, err := r.pool.Exec(ctx, `DELETE FROM interventions WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (r *InterventionRepo) List(ctx context.Context) ([]*domain.Intervention, error) {
	const op = "postgres.Intervention.List"

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const query = `
		SELECT id, name, address, post_code, city, disaster_code,
		       latitude, longitude, altitude, means, revision, created_at
		FROM interventions
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var interventions []*domain.Intervention
	for rows.Next() {
		itv, err := scanIntervention(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		interventions = append(interventions, itv)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return interventions, nil
}

func scanIntervention(row pgx.Row) (*domain.Intervention, error) {
	var (
		itv   domain.Intervention
		means []byte
	)
	if err := row.Scan(
		&itv.ID,
		&itv.Name,
		&itv.Address,
		&itv.PostCode,
		&itv.City,
		&itv.DisasterCode,
		&itv.Coordinates.Latitude,
		&itv.Coordinates.Longitude,
		&itv.Coordinates.Altitude,
		&means,
		&itv.Revision,
		&itv.CreatedAt,
	); err != nil {
		return nil, err
	}

	itv.Means = []domain.Mean{}
	if len(means) > 0 {
		if err := json.Unmarshal(means, &itv.Means); err != nil {
			return nil, err
		}
	}
	if itv.Means == nil {
		itv.Means = []domain.Mean{}
	}
	return &itv, nil
}
