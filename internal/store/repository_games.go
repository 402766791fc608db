package store

import (
	"context"

	"blackjack-table/internal/game"
)

// CreateGame inserts a new session at version 1.
func (s *Store) CreateGame(ctx context.Context, sess game.Session) (game.Session, error) {
	sess.Version = 1
	row, err := encodeGame(sess)
	if err != nil {
		return game.Session{}, err
	}
	_, err = s.Pool.Exec(ctx, `INSERT INTO blackjack_games (id, deck, player, dealer, winner, version) VALUES ($1,$2,$3,$4,$5,$6)`,
		row.ID, row.Deck, row.Player, row.Dealer, row.Winner, row.Version)
	if err != nil {
		return game.Session{}, err
	}
	return sess, nil
}

func (s *Store) GetGame(ctx context.Context, id string) (game.Session, error) {
	var row gameRow
	err := s.Pool.QueryRow(ctx, `SELECT id, deck, player, dealer, winner, version, created_at, updated_at FROM blackjack_games WHERE id = $1`, id).
		Scan(&row.ID, &row.Deck, &row.Player, &row.Dealer, &row.Winner, &row.Version, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return game.Session{}, mapNotFound(err)
	}
	return row.decode()
}

// UpdateGame writes the whole session if the stored version still equals
// sess.Version, and returns it with the version bumped.
func (s *Store) UpdateGame(ctx context.Context, sess game.Session) (game.Session, error) {
	row, err := encodeGame(sess)
	if err != nil {
		return game.Session{}, err
	}
	tag, err := s.Pool.Exec(ctx, `UPDATE blackjack_games SET deck = $2, player = $3, dealer = $4, winner = $5, version = version + 1, updated_at = now() WHERE id = $1 AND version = $6`,
		row.ID, row.Deck, row.Player, row.Dealer, row.Winner, row.Version)
	if err != nil {
		return game.Session{}, err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := s.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM blackjack_games WHERE id = $1)`, row.ID).Scan(&exists); err != nil {
			return game.Session{}, err
		}
		if !exists {
			return game.Session{}, ErrNotFound
		}
		return game.Session{}, ErrVersionConflict
	}
	sess.Version++
	return sess, nil
}

// CountGames is used by the health endpoint and tests.
func (s *Store) CountGames(ctx context.Context) (int, error) {
	var n int
	err := s.Pool.QueryRow(ctx, `SELECT count(*) FROM blackjack_games`).Scan(&n)
	return n, err
}
