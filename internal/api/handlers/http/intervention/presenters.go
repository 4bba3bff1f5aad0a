package intervention

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/drone-project-m2gla/project-repository/pkg/e"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrMeanReleaseDenied):
		// The reason string is part of the contract; clients match on it.
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": e.ErrMeanReleaseDenied.Error()})
	case errors.Is(err, e.ErrInvalidTransition):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, e.ErrMeanNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "mean not found"})
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	case errors.Is(err, e.ErrConflict):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "conflict, retry the request"})
	case errors.Is(err, e.ErrDeadline):
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "storage timeout"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

// handleMeanReadError differs from handleError in one case only: a
// missing mean on the read endpoint is 204, not 404.
func (h *Handler) handleMeanReadError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, e.ErrMeanNotFound) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.handleError(w, r, err)
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
