package httptransport

import (
	"context"
	"net/http"
)

// HealthChecker is satisfied by every game repository.
type HealthChecker interface {
	Ping(ctx context.Context) error
	CountGames(ctx context.Context) (int, error)
}

type AdminHandlers struct {
	store HealthChecker
}

func NewAdminHandlers(st HealthChecker) *AdminHandlers {
	return &AdminHandlers{store: st}
}

func (h *AdminHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.store.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"ok": false, "db": "down"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "db": "up"})
	}
}

func (h *AdminHandlers) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := h.store.CountGames(r.Context())
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"games": n})
	}
}
