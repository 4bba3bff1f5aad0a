package service

import (
	"context"
	"log/slog"

	"github.com/drone-project-m2gla/project-repository/internal/domain"
)

type pushService struct {
	registry PushRegistry
	logger   *slog.Logger
}

func NewPushService(registry PushRegistry, logger *slog.Logger) PushService {
	return &pushService{registry: registry, logger: logger}
}

func (s *pushService) Register(ctx context.Context, reg domain.PushRegistration) error {
	if err := s.registry.Register(ctx, reg); err != nil {
		s.logger.Error("push register failed", slog.String("client_id", reg.ID), slog.Any("error", err))
		return err
	}
	s.logger.Info("client registered for push",
		slog.String("client_id", reg.ID),
		slog.String("type", string(reg.Type)),
	)
	return nil
}

func (s *pushService) Unregister(ctx context.Context, id string) error {
	if err := s.registry.Unregister(ctx, id); err != nil {
		s.logger.Error("push unregister failed", slog.String("client_id", id), slog.Any("error", err))
		return err
	}
	s.logger.Info("client unregistered from push", slog.String("client_id", id))
	return nil
}
