package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
)

var (
	ErrDeckExhausted = errors.New("deck_exhausted")
	ErrInvalidCard   = errors.New("invalid_card")
	ErrDuplicateCard = errors.New("duplicate_card")
)

type Suit int

type Rank int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

const DeckSize = 52

var suitNames = map[Suit]string{Hearts: "Hearts", Diamonds: "Diamonds", Clubs: "Clubs", Spades: "Spades"}

var suitSymbols = map[Suit]string{Hearts: "♥", Diamonds: "♦", Clubs: "♣", Spades: "♠"}

var rankNames = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8", Nine: "9", Ten: "10",
	Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

func (s Suit) String() string {
	if n, ok := suitNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

func (s Suit) Symbol() string { return suitSymbols[s] }

func (s Suit) Valid() bool {
	_, ok := suitNames[s]
	return ok
}

func (s Suit) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, ErrInvalidCard
	}
	return json.Marshal(s.String())
}

func (s *Suit) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	for k, v := range suitNames {
		if v == name {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("%w: suit %q", ErrInvalidCard, name)
}

func (r Rank) String() string {
	if n, ok := rankNames[r]; ok {
		return n
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

func (r Rank) Valid() bool {
	_, ok := rankNames[r]
	return ok
}

// Value is the rank's Blackjack value with an ace counted high.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Jack:
		return 10
	default:
		return int(r)
	}
}

func (r Rank) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, ErrInvalidCard
	}
	return json.Marshal(r.String())
}

func (r *Rank) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	for k, v := range rankNames {
		if v == name {
			*r = k
			return nil
		}
	}
	return fmt.Errorf("%w: rank %q", ErrInvalidCard, name)
}

type Card struct {
	Suit  Suit `json:"suit"`
	Rank  Rank `json:"rank"`
	Value int  `json:"value"`
}

func NewCard(r Rank, s Suit) Card {
	return Card{Suit: s, Rank: r, Value: r.Value()}
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid() && c.Value == c.Rank.Value()
}

// BuildDeck returns the 52 cards in suit-major, rank-minor order.
func BuildDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for s := Hearts; s <= Spades; s++ {
		for r := Two; r <= Ace; r++ {
			cards = append(cards, NewCard(r, s))
		}
	}
	return cards
}

// Rand is the random source used for shuffling. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed is replaced by one read from crypto/rand.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err == nil {
			seed = int64(binary.LittleEndian.Uint64(b[:]))
		}
	}
	return rand.New(rand.NewSource(seed))
}

// Shuffle is a Fisher-Yates permutation of cards in place.
func Shuffle(cards []Card, rng Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Deck is drawn from the top, which is the end of the slice.
type Deck struct {
	cards []Card
}

func NewDeck() Deck {
	return Deck{cards: BuildDeck()}
}

// DeckFromCards rebuilds a deck, rejecting invalid or repeated cards.
func DeckFromCards(cards []Card) (Deck, error) {
	seen := make(map[Card]struct{}, len(cards))
	for _, c := range cards {
		if !c.Valid() {
			return Deck{}, fmt.Errorf("%w: %+v", ErrInvalidCard, c)
		}
		if _, ok := seen[c]; ok {
			return Deck{}, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = struct{}{}
	}
	return Deck{cards: append([]Card(nil), cards...)}, nil
}

func (d *Deck) Shuffle(rng Rand) {
	Shuffle(d.cards, rng)
}

func (d *Deck) Draw() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, ErrDeckExhausted
	}
	c := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return c, nil
}

func (d Deck) Len() int { return len(d.cards) }

func (d Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

func (d Deck) Clone() Deck {
	return Deck{cards: d.Cards()}
}

func (d Deck) MarshalJSON() ([]byte, error) {
	if d.cards == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.cards)
}

func (d *Deck) UnmarshalJSON(b []byte) error {
	var cards []Card
	if err := json.Unmarshal(b, &cards); err != nil {
		return err
	}
	deck, err := DeckFromCards(cards)
	if err != nil {
		return err
	}
	*d = deck
	return nil
}
