package intervention

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/drone-project-m2gla/project-repository/internal/domain"
	"github.com/drone-project-m2gla/project-repository/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Interventions interface {
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

type Handler struct {
	logger        *slog.Logger
	Interventions Interventions
}

func NewHandler(logger *slog.Logger, interventions Interventions) *Handler {
	return &Handler{
		logger:        logger,
		Interventions: interventions,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) InterventionCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("InterventionCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateInterventionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	l.Info("creating intervention",
		slog.String("name", req.Name),
		slog.String("city", req.City),
		slog.String("disaster_code", string(req.DisasterCode)),
	)

	itv, err := h.Interventions.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("intervention created", slog.String("id", itv.ID.String()))
	h.writeJSON(w, http.StatusCreated, itv)
}

func (h *Handler) InterventionList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("InterventionList", slog.String("remote", r.RemoteAddr))

	interventions, err := h.Interventions.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("interventions listed", slog.Int("count", len(interventions)))
	h.writeJSON(w, http.StatusOK, interventions)
}

func (h *Handler) InterventionGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	itv, err := h.Interventions.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("intervention fetched", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, itv)
}

func (h *Handler) InterventionDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Interventions.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("intervention deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MeanList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	means, err := h.Interventions.GetMeans(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("means listed", slog.String("id", id.String()), slog.Int("count", len(means)))
	h.writeJSON(w, http.StatusOK, means)
}

// MeanGet answers 204 (not 404) when the mean id is absent from an
// existing intervention; clients poll this endpoint for means that may
// not have been assigned yet.
func (h *Handler) MeanGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	meanID, ok := h.pathID(w, r, "meanId")
	if !ok {
		return
	}

	mean, err := h.Interventions.GetMean(r.Context(), id, meanID)
	if err != nil {
		h.handleMeanReadError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, mean)
}

func (h *Handler) MeanAdd(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var mean domain.Mean
	if err := json.NewDecoder(r.Body).Decode(&mean); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	added, err := h.Interventions.AddMean(r.Context(), id, mean)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("mean added",
		slog.String("intervention_id", id.String()),
		slog.String("mean_id", added.ID.String()),
		slog.String("vehicle", string(added.Vehicle)),
	)
	h.writeJSON(w, http.StatusOK, added)
}

func (h *Handler) MeanConfirmArrival(w http.ResponseWriter, r *http.Request) {
	h.meanOp(w, r, "confirmArrival", func(ctx context.Context, id, meanID uuid.UUID) (*domain.Mean, error) {
		return h.Interventions.ConfirmArrival(ctx, id, meanID)
	})
}

func (h *Handler) MeanUpdatePosition(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	meanID, ok := h.pathID(w, r, "meanId")
	if !ok {
		return
	}

	var req domain.UpdateMeanPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid position", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	mean, err := h.Interventions.UpdatePosition(r.Context(), id, meanID, req.Position())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, mean)
}

func (h *Handler) MeanValidatePosition(w http.ResponseWriter, r *http.Request) {
	h.meanOp(w, r, "validatePosition", func(ctx context.Context, id, meanID uuid.UUID) (*domain.Mean, error) {
		return h.Interventions.ValidatePosition(ctx, id, meanID)
	})
}

func (h *Handler) MeanSendBackToCRM(w http.ResponseWriter, r *http.Request) {
	h.meanOp(w, r, "sendBackToCRM", func(ctx context.Context, id, meanID uuid.UUID) (*domain.Mean, error) {
		return h.Interventions.SendBackToCRM(ctx, id, meanID)
	})
}

func (h *Handler) MeanRelease(w http.ResponseWriter, r *http.Request) {
	h.meanOp(w, r, "release", func(ctx context.Context, id, meanID uuid.UUID) (*domain.Mean, error) {
		return h.Interventions.Release(ctx, id, meanID)
	})
}

// meanOp factors the body-less lifecycle endpoints: resolve both path
// ids, delegate, answer 200 with the updated mean.
func (h *Handler) meanOp(w http.ResponseWriter, r *http.Request, name string, op func(ctx context.Context, id, meanID uuid.UUID) (*domain.Mean, error)) {
	l := h.log(r)

	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	meanID, ok := h.pathID(w, r, "meanId")
	if !ok {
		return
	}

	mean, err := op(r.Context(), id, meanID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("mean operation applied",
		slog.String("operation", name),
		slog.String("intervention_id", id.String()),
		slog.String("mean_id", meanID.String()),
		slog.String("state", string(mean.State)),
	)
	h.writeJSON(w, http.StatusOK, mean)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, param)
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("param", param), slog.String("value", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid " + param})
		return uuid.Nil, false
	}
	return id, true
}
