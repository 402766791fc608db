package store

import (
	"encoding/json"
	"fmt"
	"time"

	"blackjack-table/internal/game"

	"github.com/jackc/pgx/v5/pgtype"
)

// gameRow mirrors one blackjack_games row.
type gameRow struct {
	ID        string
	Deck      []byte
	Player    []byte
	Dealer    []byte
	Winner    pgtype.Text
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func encodeGame(s game.Session) (gameRow, error) {
	deck, err := json.Marshal(s.Deck)
	if err != nil {
		return gameRow{}, fmt.Errorf("encode deck: %w", err)
	}
	player, err := json.Marshal(s.Player)
	if err != nil {
		return gameRow{}, fmt.Errorf("encode player: %w", err)
	}
	dealer, err := json.Marshal(s.Dealer)
	if err != nil {
		return gameRow{}, fmt.Errorf("encode dealer: %w", err)
	}
	return gameRow{
		ID:      s.ID,
		Deck:    deck,
		Player:  player,
		Dealer:  dealer,
		Winner:  textParam(string(s.Winner)),
		Version: s.Version,
	}, nil
}

func (r gameRow) decode() (game.Session, error) {
	s := game.Session{
		ID:      r.ID,
		Winner:  game.Outcome(textVal(r.Winner)),
		Version: r.Version,
	}
	if err := json.Unmarshal(r.Deck, &s.Deck); err != nil {
		return game.Session{}, fmt.Errorf("decode deck: %w", err)
	}
	if err := json.Unmarshal(r.Player, &s.Player); err != nil {
		return game.Session{}, fmt.Errorf("decode player: %w", err)
	}
	if err := json.Unmarshal(r.Dealer, &s.Dealer); err != nil {
		return game.Session{}, fmt.Errorf("decode dealer: %w", err)
	}
	s.Normalize()
	if err := s.Validate(); err != nil {
		return game.Session{}, err
	}
	return s, nil
}
