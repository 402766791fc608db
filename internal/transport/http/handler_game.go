package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	appbj "blackjack-table/internal/app/blackjack"
	"blackjack-table/internal/game/viewmodel"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var errInvalidJSON = errors.New("invalid_json")

type GameHandlers struct {
	svc *appbj.Service
}

func NewGameHandlers(svc *appbj.Service) *GameHandlers {
	return &GameHandlers{svc: svc}
}

// legacyGameRequest is the body of /game/hit and /game/stand.
type legacyGameRequest struct {
	GameID string `json:"gameId"`
}

type gameAction func(ctx context.Context, id string) (*viewmodel.GameView, error)

type gameIDSource func(r *http.Request) (string, error)

// gameRender picks the response body for a view.
type gameRender func(v *viewmodel.GameView) any

func renderView(v *viewmodel.GameView) any { return v }

func renderLegacy(v *viewmodel.GameView) any { return viewmodel.BuildLegacyGameView(*v) }

func (h *GameHandlers) Start() http.HandlerFunc {
	return startHandler(h.svc, renderView)
}

func (h *GameHandlers) LegacyStart() http.HandlerFunc {
	return startHandler(h.svc, renderLegacy)
}

func startHandler(svc *appbj.Service, render gameRender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricStartTotal.Add(1)
		view, err := svc.Start(r.Context())
		if err != nil {
			metricRequestErrors.Add(1)
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, render(view))
	}
}

func (h *GameHandlers) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.svc.Get(r.Context(), chi.URLParam(r, "game_id"))
		if err != nil {
			metricRequestErrors.Add(1)
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func (h *GameHandlers) Hit() http.HandlerFunc {
	return actionHandler(h.svc.Hit, pathGameID, renderView, metricHitTotal.Add)
}

func (h *GameHandlers) Stand() http.HandlerFunc {
	return actionHandler(h.svc.Stand, pathGameID, renderView, metricStandTotal.Add)
}

func (h *GameHandlers) LegacyHit() http.HandlerFunc {
	return actionHandler(h.svc.Hit, bodyGameID, renderLegacy, metricHitTotal.Add)
}

func (h *GameHandlers) LegacyStand() http.HandlerFunc {
	return actionHandler(h.svc.Stand, bodyGameID, renderLegacy, metricStandTotal.Add)
}

func actionHandler(fn gameAction, idFrom gameIDSource, render gameRender, count func(int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count(1)
		id, err := idFrom(r)
		if err != nil {
			metricRequestErrors.Add(1)
			writeGameError(w, err)
			return
		}
		view, err := fn(r.Context(), id)
		if err != nil {
			metricRequestErrors.Add(1)
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, render(view))
	}
}

func pathGameID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "game_id")
	if id == "" {
		return "", appbj.ErrInvalidRequest
	}
	return id, nil
}

func bodyGameID(r *http.Request) (string, error) {
	var req legacyGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return "", appbj.ErrInvalidRequest
		}
		return "", errInvalidJSON
	}
	if req.GameID == "" {
		return "", appbj.ErrInvalidRequest
	}
	return req.GameID, nil
}

func MapGameError(err error) (int, string) {
	switch {
	case errors.Is(err, errInvalidJSON):
		return http.StatusBadRequest, "invalid_json"
	case errors.Is(err, appbj.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, appbj.ErrGameNotFound):
		return http.StatusNotFound, "game_not_found"
	case errors.Is(err, appbj.ErrDeckExhausted):
		return http.StatusConflict, "deck_exhausted"
	case errors.Is(err, appbj.ErrConflict):
		return http.StatusConflict, "conflict"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeGameError(w http.ResponseWriter, err error) {
	status, code := MapGameError(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("game request failed")
	}
	WriteHTTPError(w, status, code)
}
