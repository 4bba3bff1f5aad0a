package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/drone-project-m2gla/project-repository/internal/api/handlers/http/intervention"
	"github.com/drone-project-m2gla/project-repository/internal/api/handlers/http/push"
	"github.com/drone-project-m2gla/project-repository/internal/api/handlers/http/system"
	"github.com/drone-project-m2gla/project-repository/internal/config"
	"github.com/drone-project-m2gla/project-repository/internal/middleware"
	"github.com/drone-project-m2gla/project-repository/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	interventionHandler := intervention.NewHandler(logger, svc.Interventions)
	pushHandler := push.NewHandler(logger, svc.Push)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, interventionHandler, pushHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, interventionHandler *intervention.Handler, pushHandler *push.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/interventions", func(ir chi.Router) {
			ir.Use(middleware.APIKey(cfg.APIKey, logger))
			ir.Use(middleware.Limit(10, 20, 10*time.Minute, logger))

			ir.Post("/", interventionHandler.InterventionCreate)
			ir.Get("/", interventionHandler.InterventionList)

			ir.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", interventionHandler.InterventionGet)
				rr.Delete("/", interventionHandler.InterventionDelete)

				rr.Route("/means", func(mr chi.Router) {
					mr.Get("/", interventionHandler.MeanList)
					mr.Post("/", interventionHandler.MeanAdd)

					mr.Route("/{meanId}", func(or chi.Router) {
						or.Get("/", interventionHandler.MeanGet)
						or.Post("/confirmArrival", interventionHandler.MeanConfirmArrival)
						or.Post("/position", interventionHandler.MeanUpdatePosition)
						or.Post("/validatePosition", interventionHandler.MeanValidatePosition)
						or.Post("/sendBackToCRM", interventionHandler.MeanSendBackToCRM)
						or.Post("/release", interventionHandler.MeanRelease)
					})
				})
			})
		})

		api.Route("/push", func(pr chi.Router) {
			pr.Use(middleware.Limit(20, 40, 5*time.Minute, logger))
			pr.Post("/register", pushHandler.Register)
			pr.Delete("/register/{id}", pushHandler.Unregister)
		})

		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
