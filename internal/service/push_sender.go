package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"github.com/drone-project-m2gla/project-repository/internal/config"
	"github.com/drone-project-m2gla/project-repository/internal/domain"
	goredis "github.com/drone-project-m2gla/project-repository/internal/redis"
	"github.com/drone-project-m2gla/project-repository/pkg/e"
)

// PushSender drains the notification queue and posts each payload, together
// with the currently registered clients, to the push gateway. Delivery is
// best effort: failures are logged, never replayed into storage.
type PushSender struct {
	logger   *slog.Logger
	cfg      config.PushConfig
	queue    *goredis.NotificationQueue
	registry PushRegistry
	http     *http.Client
}

func NewPushSender(logger *slog.Logger, cfg config.PushConfig, q *goredis.NotificationQueue, registry PushRegistry) *PushSender {
	return &PushSender{
		logger:   logger,
		cfg:      cfg,
		queue:    q,
		registry: registry,
		http:     &http.Client{Timeout: 5 * time.Second},
	}
}

type gatewayPayload struct {
	Notification domain.PushNotification   `json:"notification"`
	Clients      []domain.PushRegistration `json:"clients"`
}

func (s *PushSender) Run(ctx context.Context) {
	s.logger.Info("pushSender STARTED", slog.String("gateway", s.cfg.GatewayURL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("pushSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		n, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		clients, err := s.registry.List(ctx)
		if err != nil {
			s.logger.Error("list push clients failed", slog.Any("error", err))
			clients = nil
		}
		if len(clients) == 0 {
			s.logger.Debug("no push clients registered, dropping notification",
				slog.String("intervention_id", n.InterventionID.String()))
			continue
		}

		s.sendWithRetry(ctx, gatewayPayload{Notification: n, Clients: clients})
	}
}

func (s *PushSender) sendWithRetry(ctx context.Context, p gatewayPayload) {
	const maxRetries = 3

	body, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("marshal push payload failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.GatewayURL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create push request failed", slog.String("error", err.Error()))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("push delivery failed",
			slog.Int("attempt", attempt),
			slog.String("gateway", s.cfg.GatewayURL),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
