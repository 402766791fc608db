package store

import (
	"context"
	"sync"

	"blackjack-table/internal/game"
)

// Memory keeps sessions in process, with the same version semantics as Store.
type Memory struct {
	mu    sync.Mutex
	games map[string]game.Session
}

func NewMemory() *Memory {
	return &Memory{games: map[string]game.Session{}}
}

func (m *Memory) CreateGame(_ context.Context, sess game.Session) (game.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess.Version = 1
	m.games[sess.ID] = sess.Clone()
	return sess, nil
}

func (m *Memory) GetGame(_ context.Context, id string) (game.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.games[id]
	if !ok {
		return game.Session{}, ErrNotFound
	}
	return sess.Clone(), nil
}

func (m *Memory) UpdateGame(_ context.Context, sess game.Session) (game.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.games[sess.ID]
	if !ok {
		return game.Session{}, ErrNotFound
	}
	if cur.Version != sess.Version {
		return game.Session{}, ErrVersionConflict
	}
	sess.Version++
	m.games[sess.ID] = sess.Clone()
	return sess, nil
}

func (m *Memory) CountGames(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.games), nil
}

func (m *Memory) Ping(context.Context) error { return nil }

// GameRepository is implemented by both Store and Memory.
type GameRepository interface {
	CreateGame(ctx context.Context, sess game.Session) (game.Session, error)
	GetGame(ctx context.Context, id string) (game.Session, error)
	UpdateGame(ctx context.Context, sess game.Session) (game.Session, error)
	CountGames(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

var (
	_ GameRepository = (*Store)(nil)
	_ GameRepository = (*Memory)(nil)
)
