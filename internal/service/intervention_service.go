package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/drone-project-m2gla/project-repository/internal/domain"
	"github.com/drone-project-m2gla/project-repository/pkg/e"
)

type interventionService struct {
	repo        InterventionRepository
	geocoder    Geocoder
	queue       NotificationQueue
	logger      *slog.Logger
	saveRetries int
}

func NewInterventionService(
	repo InterventionRepository,
	geocoder Geocoder,
	queue NotificationQueue,
	logger *slog.Logger,
	saveRetries int,
) InterventionService {
	if saveRetries < 1 {
		saveRetries = 3
	}
	return &interventionService{
		repo:        repo,
		geocoder:    geocoder,
		queue:       queue,
		logger:      logger,
		saveRetries: saveRetries,
	}
}

func (s *interventionService) Create(ctx context.Context, req domain.CreateInterventionRequest) (*domain.Intervention, error) {
	now := time.Now().UTC()
	itv := domain.NewIntervention(req.Name, req.Address, req.PostCode, req.City, req.DisasterCode, now)
	if req.Means != nil {
		itv.Means = make([]domain.Mean, 0, len(*req.Means))
		for _, m := range *req.Means {
			itv.AddMean(m, now)
		}
	}

	pos, err := s.geocoder.Locate(ctx, req.Address, req.PostCode, req.City)
	if err != nil {
		// Geocoding is best effort: the intervention is created anyway,
		// with the unset position.
		s.logger.Warn("geocoding failed",
			slog.String("address", req.Address),
			slog.String("city", req.City),
			slog.Any("error", err),
		)
		pos = domain.UnsetPosition()
	}
	itv.Coordinates = pos

	if err := s.repo.Create(ctx, itv); err != nil {
		return nil, err
	}

	s.logger.Info("intervention created",
		slog.String("id", itv.ID.String()),
		slog.String("disaster_code", string(itv.DisasterCode)),
		slog.Int("means", len(itv.Means)),
	)
	return itv, nil
}

func (s *interventionService) List(ctx context.Context) ([]*domain.Intervention, error) {
	return s.repo.List(ctx)
}

func (s *interventionService) Get(ctx context.Context, id uuid.UUID) (*domain.Intervention, error) {
	return s.repo.Get(ctx, id)
}

func (s *interventionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("intervention deleted", slog.String("id", id.String()))
	return nil
}

func (s *interventionService) GetMeans(ctx context.Context, id uuid.UUID) ([]domain.Mean, error) {
	itv, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	// RELEASED and REFUSED means stay in the roster.
	return itv.Means, nil
}

func (s *interventionService) GetMean(ctx context.Context, id, meanID uuid.UUID) (*domain.Mean, error) {
	itv, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	idx, ok := itv.FindMean(meanID)
	if !ok {
		return nil, fmt.Errorf("intervention %s: %w", id, e.ErrMeanNotFound)
	}
	m := itv.Means[idx]
	return &m, nil
}

// AddMean appends a caller-supplied mean, retrying the load-append-save cycle
// on a write conflict or storage timeout like every other aggregate mutation.
func (s *interventionService) AddMean(ctx context.Context, id uuid.UUID, mean domain.Mean) (*domain.Mean, error) {
	var lastErr error

	for attempt := 1; attempt <= s.saveRetries; attempt++ {
		itv, err := s.repo.Get(ctx, id)
		if err != nil {
			if s.retryStorage(err, attempt, id) {
				lastErr = err
				continue
			}
			return nil, err
		}

		added := itv.AddMean(mean, time.Now().UTC())

		if err := s.repo.Save(ctx, itv); err != nil {
			if s.retryStorage(err, attempt, id) {
				lastErr = err
				continue
			}
			return nil, err
		}

		s.logger.Info("extra mean added",
			slog.String("intervention_id", id.String()),
			slog.String("mean_id", added.ID.String()),
			slog.String("vehicle", string(added.Vehicle)),
		)
		return &added, nil
	}

	return nil, lastErr
}
