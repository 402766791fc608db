package blackjack

import (
	"context"
	"errors"
	"fmt"

	"blackjack-table/internal/game"
	"blackjack-table/internal/game/viewmodel"
	"blackjack-table/internal/store"

	"github.com/rs/zerolog/log"
)

// Repository loads and saves whole sessions. UpdateGame must reject a write
// whose Version no longer matches the stored one.
type Repository interface {
	CreateGame(ctx context.Context, sess game.Session) (game.Session, error)
	GetGame(ctx context.Context, id string) (game.Session, error)
	UpdateGame(ctx context.Context, sess game.Session) (game.Session, error)
}

type Service struct {
	repo   Repository
	engine *game.Engine
	locks  *keyedLocks
	newID  func() string
}

func NewService(repo Repository, engine *game.Engine) *Service {
	return &Service{
		repo:   repo,
		engine: engine,
		locks:  newKeyedLocks(),
		newID:  store.NewID,
	}
}

func (s *Service) Start(ctx context.Context) (*viewmodel.GameView, error) {
	sess, err := s.engine.Start(s.newID())
	if err != nil {
		return nil, mapError(err)
	}
	created, err := s.repo.CreateGame(ctx, sess)
	if err != nil {
		return nil, mapError(err)
	}
	metricGamesStarted.Add(1)
	log.Info().
		Str("game_id", created.ID).
		Int("player_score", created.Player.Score).
		Int("dealer_score", created.Dealer.Score).
		Msg("game started")
	view := viewmodel.BuildGameView(created)
	return &view, nil
}

func (s *Service) Get(ctx context.Context, id string) (*viewmodel.GameView, error) {
	if id == "" {
		return nil, ErrInvalidRequest
	}
	sess, err := s.repo.GetGame(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	view := viewmodel.BuildGameView(sess)
	return &view, nil
}

func (s *Service) Hit(ctx context.Context, id string) (*viewmodel.GameView, error) {
	view, err := s.apply(ctx, id, "hit", game.Hit)
	if err == nil {
		metricHits.Add(1)
	}
	return view, err
}

func (s *Service) Stand(ctx context.Context, id string) (*viewmodel.GameView, error) {
	view, err := s.apply(ctx, id, "stand", game.Stand)
	if err == nil {
		metricStands.Add(1)
	}
	return view, err
}

// apply runs one load-mutate-save cycle under the game's lock. Nothing is
// written when fn fails.
func (s *Service) apply(ctx context.Context, id, action string, fn func(game.Session) (game.Session, error)) (*viewmodel.GameView, error) {
	if id == "" {
		return nil, ErrInvalidRequest
	}
	unlock, err := s.locks.lock(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	defer unlock()

	cur, err := s.repo.GetGame(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if cur.Terminal() {
		log.Debug().Str("game_id", id).Str("action", action).Str("winner", string(cur.Winner)).Msg("action on settled game")
	}
	next, err := fn(cur)
	if err != nil {
		log.Warn().Err(err).Str("game_id", id).Str("action", action).Msg("game action rejected")
		return nil, mapError(err)
	}
	saved, err := s.repo.UpdateGame(ctx, next)
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			metricConflicts.Add(1)
		}
		return nil, mapError(err)
	}
	if saved.Terminal() {
		metricOutcomes.Add(string(saved.Winner), 1)
	}
	log.Info().
		Str("game_id", saved.ID).
		Str("action", action).
		Int("player_score", saved.Player.Score).
		Int("dealer_score", saved.Dealer.Score).
		Int("deck_remaining", saved.Deck.Len()).
		Str("winner", string(saved.Winner)).
		Msg("game action applied")
	view := viewmodel.BuildGameView(saved)
	return &view, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrGameNotFound
	case errors.Is(err, store.ErrVersionConflict):
		return ErrConflict
	case errors.Is(err, game.ErrDeckExhausted):
		return ErrDeckExhausted
	default:
		return fmt.Errorf("blackjack: %w", err)
	}
}
