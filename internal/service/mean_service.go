package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/drone-project-m2gla/project-repository/internal/domain"
	"github.com/drone-project-m2gla/project-repository/pkg/e"
)

func (s *interventionService) ConfirmArrival(ctx context.Context, id, meanID uuid.UUID) (*domain.Mean, error) {
	return s.applyMeanOp(ctx, id, meanID, domain.OpConfirmArrival, domain.Position{})
}

func (s *interventionService) UpdatePosition(ctx context.Context, id, meanID uuid.UUID, pos domain.Position) (*domain.Mean, error) {
	return s.applyMeanOp(ctx, id, meanID, domain.OpUpdatePosition, pos)
}

func (s *interventionService) ValidatePosition(ctx context.Context, id, meanID uuid.UUID) (*domain.Mean, error) {
	return s.applyMeanOp(ctx, id, meanID, domain.OpValidatePosition, domain.Position{})
}

func (s *interventionService) SendBackToCRM(ctx context.Context, id, meanID uuid.UUID) (*domain.Mean, error) {
	return s.applyMeanOp(ctx, id, meanID, domain.OpSendBackToCRM, domain.Position{})
}

func (s *interventionService) Release(ctx context.Context, id, meanID uuid.UUID) (*domain.Mean, error) {
	return s.applyMeanOp(ctx, id, meanID, domain.OpRelease, domain.Position{})
}

// applyMeanOp runs one load-apply-save cycle per attempt. A transition
// rejection returns immediately without touching storage; a stale-write
// conflict or a storage timeout redoes the whole cycle against a fresh
// load, up to saveRetries.
func (s *interventionService) applyMeanOp(ctx context.Context, id, meanID uuid.UUID, op domain.MeanOp, pos domain.Position) (*domain.Mean, error) {
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

		idx, ok := itv.FindMean(meanID)
		if !ok {
			return nil, fmt.Errorf("intervention %s: %w", id, e.ErrMeanNotFound)
		}

		updated, err := domain.ApplyMeanOp(itv.Means[idx], op, pos, time.Now().UTC())
		if err != nil {
			s.logger.Info("mean transition rejected",
				slog.String("intervention_id", id.String()),
				slog.String("mean_id", meanID.String()),
				slog.String("operation", string(op)),
				slog.String("state", string(itv.Means[idx].State)),
			)
			return nil, err
		}
		itv.Means[idx] = updated

		if err := s.repo.Save(ctx, itv); err != nil {
			if s.retryStorage(err, attempt, id) {
				lastErr = err
				continue
			}
			return nil, err
		}

		s.logger.Info("mean transition committed",
			slog.String("intervention_id", id.String()),
			slog.String("mean_id", meanID.String()),
			slog.String("operation", string(op)),
			slog.String("state", string(updated.State)),
		)
		s.notify(ctx, itv.ID, updated, op)
		return &updated, nil
	}

	return nil, lastErr
}

// retryBackoff paces the retries after a storage timeout; conflicts retry
// immediately against a fresh load.
const retryBackoff = 100 * time.Millisecond

// retryStorage reports whether the load-apply-save cycle should run again.
// Stale-write conflicts and storage timeouts are both worth a fresh attempt;
// everything else surfaces to the caller as is.
func (s *interventionService) retryStorage(err error, attempt int, id uuid.UUID) bool {
	if attempt >= s.saveRetries {
		return false
	}
	switch {
	case errors.Is(err, e.ErrConflict):
		s.logger.Warn("write conflict, retrying",
			slog.String("intervention_id", id.String()),
			slog.Int("attempt", attempt),
		)
		return true
	case errors.Is(err, e.ErrDeadline):
		s.logger.Warn("storage timeout, retrying",
			slog.String("intervention_id", id.String()),
			slog.Int("attempt", attempt),
		)
		time.Sleep(time.Duration(attempt) * retryBackoff)
		return true
	}
	return false
}

// notify enqueues the fan-out payload for the sender worker. The transition
// is already committed; a queue failure is logged and nothing is rolled back.
func (s *interventionService) notify(ctx context.Context, interventionID uuid.UUID, m domain.Mean, op domain.MeanOp) {
	if s.queue == nil {
		return
	}

	n := domain.PushNotification{
		InterventionID: interventionID,
		MeanID:         m.ID,
		Operation:      op,
		State:          m.State,
		SentAt:         time.Now().UTC(),
	}
	if err := s.queue.Enqueue(ctx, n); err != nil {
		s.logger.Error("enqueue push notification failed",
			slog.String("intervention_id", interventionID.String()),
			slog.Any("error", err),
		)
		return
	}
	s.logger.Debug("push notification enqueued",
		slog.String("intervention_id", interventionID.String()),
		slog.String("operation", string(op)),
	)
}
