package game

import (
	"errors"
	"fmt"
)

var ErrInvalidSession = errors.New("invalid_session")

const (
	PlayerName = "Player"
	DealerName = "Dealer"
)

type Participant struct {
	Name  string `json:"name"`
	Hand  []Card `json:"hand"`
	Score int    `json:"score"`
}

func (p Participant) clone() Participant {
	p.Hand = append([]Card(nil), p.Hand...)
	return p
}

func (p *Participant) take(c Card) {
	p.Hand = append(p.Hand, c)
	p.Score = Score(p.Hand)
}

// Session is the full state of one game. Operations take a Session by value
// and return the updated copy; callers persist the result.
type Session struct {
	ID      string      `json:"id"`
	Deck    Deck        `json:"deck"`
	Player  Participant `json:"player"`
	Dealer  Participant `json:"dealer"`
	Winner  Outcome     `json:"winner"`
	Version int64       `json:"version"`
}

func (s Session) Clone() Session {
	s.Deck = s.Deck.Clone()
	s.Player = s.Player.clone()
	s.Dealer = s.Dealer.clone()
	return s
}

func (s Session) Terminal() bool {
	return s.Winner != OutcomeNone
}

// Normalize recomputes both scores from the hands.
func (s *Session) Normalize() {
	s.Player.Score = Score(s.Player.Hand)
	s.Dealer.Score = Score(s.Dealer.Hand)
}

// Validate checks that deck and hands together hold each card of the
// 52-card deck exactly once.
func (s Session) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidSession)
	}
	if !s.Winner.Valid() {
		return fmt.Errorf("%w: winner %q", ErrInvalidSession, s.Winner)
	}
	seen := make(map[Card]struct{}, DeckSize)
	groups := [][]Card{s.Deck.cards, s.Player.Hand, s.Dealer.Hand}
	for _, g := range groups {
		for _, c := range g {
			if !c.Valid() {
				return fmt.Errorf("%w: %w", ErrInvalidSession, ErrInvalidCard)
			}
			if _, ok := seen[c]; ok {
				return fmt.Errorf("%w: %w: %s", ErrInvalidSession, ErrDuplicateCard, c)
			}
			seen[c] = struct{}{}
		}
	}
	if len(seen) != DeckSize {
		return fmt.Errorf("%w: %d cards accounted for", ErrInvalidSession, len(seen))
	}
	return nil
}
