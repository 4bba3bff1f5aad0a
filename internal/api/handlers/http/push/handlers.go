package push

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/drone-project-m2gla/project-repository/internal/domain"
	"github.com/drone-project-m2gla/project-repository/pkg/e"
	"github.com/drone-project-m2gla/project-repository/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Registrar interface {
	Register(ctx context.Context, reg domain.PushRegistration) error
	Unregister(ctx context.Context, clientID string) error
}

type Handler struct {
	logger    *slog.Logger
	Registrar Registrar
}

func NewHandler(logger *slog.Logger, registrar Registrar) *Handler {
	return &Handler{logger: logger, Registrar: registrar}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var reg domain.PushRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(reg); err != nil {
		l.Warn("invalid registration", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Registrar.Register(r.Context(), reg); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("push client registered",
		slog.String("client_id", reg.ID),
		slog.String("type", string(reg.Type)),
	)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Unregister(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	clientID := chi.URLParam(r, "id")
	if clientID == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing client id"})
		return
	}

	if err := h.Registrar.Unregister(r.Context(), clientID); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("push client unregistered", slog.String("client_id", clientID))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	h.log(r).Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
