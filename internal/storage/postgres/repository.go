package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/drone-project-m2gla/project-repository/internal/domain"
)

// InterventionRepository stores and retrieves the aggregate as one
// indivisible unit; means never travel without their intervention.
type InterventionRepository interface {
	Create(ctx context.Context, itv *domain.Intervention) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Intervention, error)
	// Save rejects writes based on a stale read with e.ErrConflict; on
	// success the in-memory revision is advanced with the row's.
	Save(ctx context.Context, itv *domain.Intervention) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*domain.Intervention, error)
}

func (p *Postgres) Interventions() InterventionRepository { return p.Intervention }
