package client

import (
	"fmt"
	"io"
	"strings"

	"blackjack-table/internal/game/viewmodel"
)

func Render(w io.Writer, v viewmodel.GameView) {
	fmt.Fprintf(w, "Game %s (%d cards left)\n", v.ID, v.DeckRemaining)
	renderHand(w, v.Player)
	renderHand(w, v.Dealer)
	if v.Winner != nil {
		fmt.Fprintf(w, "Winner: %s\n", *v.Winner)
	}
}

func renderHand(w io.Writer, p viewmodel.ParticipantView) {
	labels := make([]string, 0, len(p.Hand))
	for _, c := range p.Hand {
		labels = append(labels, c.Rank+" of "+c.Suit)
	}
	bust := ""
	if p.Bust {
		bust = " (bust)"
	}
	fmt.Fprintf(w, "  %s: %s, score %d%s\n", p.Name, strings.Join(labels, ", "), p.Score, bust)
}
