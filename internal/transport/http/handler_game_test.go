package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appbj "blackjack-table/internal/app/blackjack"
	"blackjack-table/internal/config"
	"blackjack-table/internal/game"
	"blackjack-table/internal/game/viewmodel"
	"blackjack-table/internal/store"
)

func newTestRouter(t *testing.T, cfg config.ServerConfig) (http.Handler, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	svc := appbj.NewService(mem, game.NewEngine(rand.New(rand.NewSource(17))))
	return NewRouter(svc, mem, cfg), mem
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) viewmodel.GameView {
	t.Helper()
	var v viewmodel.GameView
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode view: %v body=%s", err, w.Body.String())
	}
	return v
}

func TestGameLifecycleOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t, config.ServerConfig{})

	w := doJSON(t, router, http.MethodPost, "/api/games", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("start status=%d body=%s", w.Code, w.Body.String())
	}
	started := decodeView(t, w)
	if started.ID == "" || started.DeckRemaining != 48 {
		t.Fatalf("unexpected start view: %+v", started)
	}
	if strings.Contains(w.Body.String(), `"deck":`) {
		t.Fatalf("response leaks the deck: %s", w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/api/games/"+started.ID+"/hit", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("hit status=%d body=%s", w.Code, w.Body.String())
	}
	hit := decodeView(t, w)
	if hit.DeckRemaining != 47 || len(hit.Player.Hand) != 3 || hit.Winner == nil {
		t.Fatalf("unexpected hit view: %+v", hit)
	}

	w = doJSON(t, router, http.MethodPost, "/api/games/"+started.ID+"/stand", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stand status=%d body=%s", w.Code, w.Body.String())
	}
	stood := decodeView(t, w)
	if !stood.Terminal || stood.Dealer.Score < game.DealerStandsOn {
		t.Fatalf("unexpected stand view: %+v", stood)
	}

	w = doJSON(t, router, http.MethodGet, "/api/games/"+started.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d body=%s", w.Code, w.Body.String())
	}
	if got := decodeView(t, w); got.Version != 3 {
		t.Fatalf("expected version 3, got %d", got.Version)
	}
}

func decodeLegacy(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode legacy doc: %v body=%s", err, w.Body.String())
	}
	return doc
}

func TestLegacyRoutesAddressGamesByUnderscoreID(t *testing.T) {
	router, _ := newTestRouter(t, config.ServerConfig{})

	w := doJSON(t, router, http.MethodPost, "/game/start", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("start status=%d body=%s", w.Code, w.Body.String())
	}
	started := decodeLegacy(t, w)
	id, _ := started["_id"].(string)
	if id == "" {
		t.Fatalf("start document has no _id: %s", w.Body.String())
	}
	if _, ok := started["winner"]; ok {
		t.Fatalf("fresh game must not carry a winner: %s", w.Body.String())
	}
	player := started["player"].(map[string]any)
	if player["name"] != "Player" || len(player["hand"].([]any)) != 2 {
		t.Fatalf("unexpected player: %v", player)
	}

	w = doJSON(t, router, http.MethodPost, "/game/hit", map[string]string{"gameId": id})
	if w.Code != http.StatusOK {
		t.Fatalf("hit status=%d body=%s", w.Code, w.Body.String())
	}
	hit := decodeLegacy(t, w)
	if hit["_id"] != id || len(hit["player"].(map[string]any)["hand"].([]any)) != 3 {
		t.Fatalf("unexpected hit document: %s", w.Body.String())
	}
	if hit["winner"] == nil {
		t.Fatalf("hit must set a winner: %s", w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/game/stand", map[string]string{"gameId": hit["_id"].(string)})
	if w.Code != http.StatusOK {
		t.Fatalf("stand status=%d body=%s", w.Code, w.Body.String())
	}
	switch decodeLegacy(t, w)["winner"] {
	case "Player", "Dealer", "Draw":
	default:
		t.Fatalf("unexpected stand winner: %s", w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/games/"+id, nil)
	if got := decodeView(t, w); got.Version != 3 {
		t.Fatalf("expected version 3 after legacy hit and stand, got %d", got.Version)
	}
}

func TestGameErrorsOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t, config.ServerConfig{})
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{name: "unknown game hit", method: http.MethodPost, path: "/api/games/missing/hit", status: http.StatusNotFound, code: "game_not_found"},
		{name: "unknown game get", method: http.MethodGet, path: "/api/games/missing", status: http.StatusNotFound, code: "game_not_found"},
		{name: "legacy bad json", method: http.MethodPost, path: "/game/hit", body: "{", status: http.StatusBadRequest, code: "invalid_json"},
		{name: "legacy empty body", method: http.MethodPost, path: "/game/stand", body: "", status: http.StatusBadRequest, code: "invalid_request"},
		{name: "legacy missing id", method: http.MethodPost, path: "/game/hit", body: `{}`, status: http.StatusBadRequest, code: "invalid_request"},
		{name: "legacy unknown id", method: http.MethodPost, path: "/game/stand", body: `{"gameId":"missing"}`, status: http.StatusNotFound, code: "game_not_found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Fatalf("status=%d want %d body=%s", w.Code, tt.status, w.Body.String())
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body["error"] != tt.code {
				t.Fatalf("error=%q want %q", body["error"], tt.code)
			}
		})
	}
}

func TestDeckExhaustedMapsToConflict(t *testing.T) {
	router, mem := newTestRouter(t, config.ServerConfig{})
	cards := game.BuildDeck()
	sess := game.Session{
		ID:     "empty-deck",
		Player: game.Participant{Name: game.PlayerName, Hand: cards[:30]},
		Dealer: game.Participant{Name: game.DealerName, Hand: cards[30:]},
	}
	sess.Normalize()
	if _, err := mem.CreateGame(context.Background(), sess); err != nil {
		t.Fatalf("create: %v", err)
	}
	w := doJSON(t, router, http.MethodPost, "/api/games/empty-deck/hit", nil)
	if w.Code != http.StatusConflict || !strings.Contains(w.Body.String(), "deck_exhausted") {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestMapGameError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{appbj.ErrGameNotFound, http.StatusNotFound, "game_not_found"},
		{appbj.ErrInvalidRequest, http.StatusBadRequest, "invalid_request"},
		{appbj.ErrDeckExhausted, http.StatusConflict, "deck_exhausted"},
		{appbj.ErrConflict, http.StatusConflict, "conflict"},
		{context.DeadlineExceeded, http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		status, code := MapGameError(tt.err)
		if status != tt.status || code != tt.code {
			t.Fatalf("MapGameError(%v) = %d %q, want %d %q", tt.err, status, code, tt.status, tt.code)
		}
	}
}
