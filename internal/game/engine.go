package game

import (
	"errors"
	"sync"
)

// Engine deals new sessions from a shared random source. Hit and Stand need
// no randomness and are plain functions.
type Engine struct {
	mu  sync.Mutex
	rng Rand
}

func NewEngine(rng Rand) *Engine {
	if rng == nil {
		rng = NewRand(0)
	}
	return &Engine{rng: rng}
}

// Start shuffles a fresh deck and deals the opening hands.
func (e *Engine) Start(id string) (Session, error) {
	deck := NewDeck()
	e.mu.Lock()
	deck.Shuffle(e.rng)
	e.mu.Unlock()
	return Deal(id, deck)
}

// Deal gives two cards each from the top of deck, player first.
func Deal(id string, deck Deck) (Session, error) {
	s := Session{
		ID:     id,
		Deck:   deck.Clone(),
		Player: Participant{Name: PlayerName, Hand: []Card{}},
		Dealer: Participant{Name: DealerName, Hand: []Card{}},
	}
	for i := 0; i < 2; i++ {
		for _, p := range []*Participant{&s.Player, &s.Dealer} {
			c, err := s.Deck.Draw()
			if err != nil {
				return Session{}, err
			}
			p.take(c)
		}
	}
	return s, nil
}

// Hit draws one card for the player and settles the winner against the
// dealer's current total straight away.
func Hit(s Session) (Session, error) {
	next := s.Clone()
	c, err := next.Deck.Draw()
	if err != nil {
		return Session{}, err
	}
	next.Player.take(c)
	next.Winner = DetermineWinner(next.Player.Score, next.Dealer.Score)
	return next, nil
}

// Stand plays the dealer out until it reaches DealerStandsOn or the deck
// runs dry, then settles the winner.
func Stand(s Session) (Session, error) {
	next := s.Clone()
	for next.Dealer.Score < DealerStandsOn {
		c, err := next.Deck.Draw()
		if errors.Is(err, ErrDeckExhausted) {
			break
		}
		if err != nil {
			return Session{}, err
		}
		next.Dealer.take(c)
	}
	next.Winner = DetermineWinner(next.Player.Score, next.Dealer.Score)
	return next, nil
}
