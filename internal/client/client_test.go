package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appbj "blackjack-table/internal/app/blackjack"
	"blackjack-table/internal/config"
	"blackjack-table/internal/game"
	"blackjack-table/internal/game/viewmodel"
	"blackjack-table/internal/store"
	httptransport "blackjack-table/internal/transport/http"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo := store.NewMemory()
	svc := appbj.NewService(repo, game.NewEngine(game.NewRand(42)))
	srv := httptest.NewServer(httptransport.NewRouter(svc, repo, config.ServerConfig{}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientLifecycle(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL+"/", time.Second)
	ctx := context.Background()

	view, err := c.Start(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if view.DeckRemaining != 48 || len(view.Player.Hand) != 2 || len(view.Dealer.Hand) != 2 {
		t.Fatalf("unexpected deal: %+v", view)
	}
	if view.Winner != nil {
		t.Fatalf("winner set after deal: %s", *view.Winner)
	}

	view, err = c.Hit(ctx, view.ID)
	if err != nil {
		t.Fatalf("hit: %v", err)
	}
	if len(view.Player.Hand) != 3 || view.DeckRemaining != 47 {
		t.Fatalf("unexpected hit result: %+v", view)
	}

	view, err = c.Stand(ctx, view.ID)
	if err != nil {
		t.Fatalf("stand: %v", err)
	}
	if view.Winner == nil || !view.Terminal {
		t.Fatalf("stand did not settle: %+v", view)
	}

	got, err := c.Get(ctx, view.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Version != view.Version {
		t.Fatalf("get version=%d want %d", got.Version, view.Version)
	}
}

func TestClientAPIError(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, time.Second)

	_, err := c.Hit(context.Background(), "missing")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Code != "game_not_found" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}

func TestAutoDecider(t *testing.T) {
	d := AutoDecider{HitBelow: 17}
	cases := []struct {
		score int
		want  Action
	}{
		{12, ActionHit},
		{16, ActionHit},
		{17, ActionStand},
		{21, ActionStand},
	}
	for _, tc := range cases {
		var v viewmodel.GameView
		v.Player.Score = tc.score
		got, err := d.Decide(v)
		if err != nil || got != tc.want {
			t.Fatalf("score %d: got %q err=%v want %q", tc.score, got, err, tc.want)
		}
	}
}

func TestPromptDecider(t *testing.T) {
	var out bytes.Buffer
	d := NewPromptDecider(strings.NewReader("x\nH\ns\nq\n"), &out)

	if a, err := d.Decide(viewmodel.GameView{}); err != nil || a != ActionHit {
		t.Fatalf("first: %q %v", a, err)
	}
	if a, err := d.Decide(viewmodel.GameView{}); err != nil || a != ActionStand {
		t.Fatalf("second: %q %v", a, err)
	}
	if _, err := d.Decide(viewmodel.GameView{}); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected quit, got %v", err)
	}
	if _, err := d.Decide(viewmodel.GameView{}); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected quit on EOF, got %v", err)
	}
	if strings.Count(out.String(), "[h]it") != 5 {
		t.Fatalf("unexpected prompts: %q", out.String())
	}
}

func TestRunAutoRounds(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, time.Second)
	var out bytes.Buffer

	played, err := Run(context.Background(), c, AutoDecider{HitBelow: 17}, &out, RunOptions{Rounds: 3})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if played != 3 {
		t.Fatalf("played=%d want 3", played)
	}
	if n := strings.Count(out.String(), "Winner: "); n < 3 {
		t.Fatalf("expected 3 winner lines, got %d:\n%s", n, out.String())
	}
}

// countingDecider records how many decisions each game asked for.
type countingDecider struct {
	inner Decider
	calls map[string]int
}

func (d *countingDecider) Decide(v viewmodel.GameView) (Action, error) {
	d.calls[v.ID]++
	return d.inner.Decide(v)
}

func TestRunEndsHandOnFirstWinner(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, time.Second)
	d := &countingDecider{inner: AutoDecider{HitBelow: 100}, calls: map[string]int{}}

	played, err := Run(context.Background(), c, d, io.Discard, RunOptions{Rounds: 4})
	if err != nil || played != 4 {
		t.Fatalf("played=%d err=%v", played, err)
	}
	for id, n := range d.calls {
		if n != 1 {
			t.Fatalf("game %s asked %d times; a hit sets the winner and ends the hand", id, n)
		}
	}
}

func TestRunPlayOnAfterHitKeepsHandOpen(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, time.Second)
	d := &countingDecider{inner: AutoDecider{HitBelow: 100}, calls: map[string]int{}}

	played, err := Run(context.Background(), c, d, io.Discard, RunOptions{Rounds: 2, PlayOnAfterHit: true})
	if err != nil || played != 2 {
		t.Fatalf("played=%d err=%v", played, err)
	}
	if len(d.calls) != 2 {
		t.Fatalf("expected 2 games, got %d", len(d.calls))
	}
	for id, n := range d.calls {
		final, err := c.Get(context.Background(), id)
		if err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
		if !final.Player.Bust || len(final.Player.Hand) != 2+n {
			t.Fatalf("game %s ended before a bust: hits=%d player=%+v", id, n, final.Player)
		}
	}
}

func TestRunQuit(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, time.Second)
	var out bytes.Buffer

	played, err := Run(context.Background(), c, NewPromptDecider(strings.NewReader("q\n"), &out), &out, RunOptions{})
	if err != nil || played != 0 {
		t.Fatalf("played=%d err=%v", played, err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	out := &cancelOnWinner{cancel: cancel}

	played, err := Run(ctx, c, AutoDecider{HitBelow: 0}, out, RunOptions{RestartDelay: time.Hour})
	if err != nil || played != 1 {
		t.Fatalf("played=%d err=%v", played, err)
	}
}

// cancelOnWinner cancels once a settled game has been rendered.
type cancelOnWinner struct {
	bytes.Buffer
	cancel context.CancelFunc
}

func (w *cancelOnWinner) Write(p []byte) (int, error) {
	if strings.Contains(string(p), "Winner: ") {
		w.cancel()
	}
	return w.Buffer.Write(p)
}
