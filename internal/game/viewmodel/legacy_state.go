package viewmodel

// LegacyGameView is the document shape served on the /game routes, where
// clients address a game by "_id" and read the winner as a bare string.
type LegacyGameView struct {
	ID     string                `json:"_id"`
	Player LegacyParticipantView `json:"player"`
	Dealer LegacyParticipantView `json:"dealer"`
	Winner string                `json:"winner,omitempty"`
}

type LegacyCardView struct {
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Value int    `json:"value"`
}

type LegacyParticipantView struct {
	Name  string           `json:"name"`
	Hand  []LegacyCardView `json:"hand"`
	Score int              `json:"score"`
}

func BuildLegacyGameView(v GameView) LegacyGameView {
	out := LegacyGameView{
		ID:     v.ID,
		Player: buildLegacyParticipant(v.Player),
		Dealer: buildLegacyParticipant(v.Dealer),
	}
	if v.Winner != nil {
		out.Winner = *v.Winner
	}
	return out
}

func buildLegacyParticipant(p ParticipantView) LegacyParticipantView {
	hand := make([]LegacyCardView, 0, len(p.Hand))
	for _, c := range p.Hand {
		hand = append(hand, LegacyCardView{Suit: c.Suit, Rank: c.Rank, Value: c.Value})
	}
	return LegacyParticipantView{Name: p.Name, Hand: hand, Score: p.Score}
}
