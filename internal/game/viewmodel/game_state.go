package viewmodel

import "blackjack-table/internal/game"

type CardView struct {
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Value int    `json:"value"`
	Label string `json:"label"`
}

type ParticipantView struct {
	Name  string     `json:"name"`
	Hand  []CardView `json:"hand"`
	Score int        `json:"score"`
	Bust  bool       `json:"bust"`
}

// GameView is what clients see of a session. The remaining deck is reduced
// to its size.
type GameView struct {
	ID            string          `json:"id"`
	Player        ParticipantView `json:"player"`
	Dealer        ParticipantView `json:"dealer"`
	Winner        *string         `json:"winner"`
	Terminal      bool            `json:"terminal"`
	DeckRemaining int             `json:"deck_remaining"`
	Version       int64           `json:"version"`
}

func BuildGameView(s game.Session) GameView {
	var winner *string
	if s.Terminal() {
		w := string(s.Winner)
		winner = &w
	}
	return GameView{
		ID:            s.ID,
		Player:        buildParticipant(s.Player),
		Dealer:        buildParticipant(s.Dealer),
		Winner:        winner,
		Terminal:      s.Terminal(),
		DeckRemaining: s.Deck.Len(),
		Version:       s.Version,
	}
}

func buildParticipant(p game.Participant) ParticipantView {
	hand := make([]CardView, 0, len(p.Hand))
	for _, c := range p.Hand {
		hand = append(hand, CardView{
			Suit:  c.Suit.String(),
			Rank:  c.Rank.String(),
			Value: c.Value,
			Label: c.String(),
		})
	}
	return ParticipantView{
		Name:  p.Name,
		Hand:  hand,
		Score: p.Score,
		Bust:  game.Busted(p.Score),
	}
}
