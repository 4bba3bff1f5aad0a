package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/drone-project-m2gla/project-repository/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// InterventionService is the REST-facing surface: aggregate CRUD plus the
// mean lifecycle operations. Every mutating mean operation follows the same
// contract: load the aggregate, locate the mean by identity, run the
// transition engine, persist the whole aggregate only on success.
type InterventionService interface {
	Create(ctx context.Context, req domain.CreateInterventionRequest) (*domain.Intervention, error)
	List(ctx context.Context) ([]*domain.Intervention, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Intervention, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetMeans(ctx context.Context, id uuid.UUID) ([]domain.Mean, error)
	GetMean(ctx context.Context, id, meanID uuid.UUID) (*domain.Mean, error)
	AddMean(ctx context.Context, id uuid.UUID, mean domain.Mean) (*domain.Mean, error)

	ConfirmArrival(ctx context.Context, id, meanID uuid.UUID) (*domain.Mean, error)
	UpdatePosition(ctx context.Context, id, meanID uuid.UUID, pos domain.Position) (*domain.Mean, error)
	ValidatePosition(ctx context.Context, id, meanID uuid.UUID) (*domain.Mean, error)
	SendBackToCRM(ctx context.Context, id, meanID uuid.UUID) (*domain.Mean, error)
	Release(ctx context.Context, id, meanID uuid.UUID) (*domain.Mean, error)
}

type PushService interface {
	Register(ctx context.Context, reg domain.PushRegistration) error
	Unregister(ctx context.Context, id string) error
}

type InterventionRepository interface {
	Create(ctx context.Context, itv *domain.Intervention) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Intervention, error)
	Save(ctx context.Context, itv *domain.Intervention) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*domain.Intervention, error)
}

type Geocoder interface {
	Locate(ctx context.Context, address, postCode, city string) (domain.Position, error)
}

type PushRegistry interface {
	Register(ctx context.Context, reg domain.PushRegistration) error
	Unregister(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.PushRegistration, error)
}

type NotificationQueue interface {
	Enqueue(ctx context.Context, n domain.PushNotification) error
}

type Service struct {
	Interventions InterventionService
	Push          PushService
}

func NewService(interventions InterventionService, push PushService) *Service {
	return &Service{
		Interventions: interventions,
		Push:          push,
	}
}
