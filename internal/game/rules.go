package game

// Outcome is the settled result of a session. The empty value means unresolved.
type Outcome string

const (
	OutcomeNone   Outcome = ""
	OutcomePlayer Outcome = "Player"
	OutcomeDealer Outcome = "Dealer"
	OutcomeDraw   Outcome = "Draw"
)

// DealerStandsOn is the total at or above which the dealer stops drawing,
// soft totals included.
const DealerStandsOn = 17

func (o Outcome) Valid() bool {
	switch o {
	case OutcomeNone, OutcomePlayer, OutcomeDealer, OutcomeDraw:
		return true
	default:
		return false
	}
}

// DetermineWinner checks the player bust first, so a busted player loses even
// when the dealer has also busted.
func DetermineWinner(playerScore, dealerScore int) Outcome {
	if Busted(playerScore) {
		return OutcomeDealer
	}
	if Busted(dealerScore) {
		return OutcomePlayer
	}
	switch {
	case playerScore > dealerScore:
		return OutcomePlayer
	case playerScore < dealerScore:
		return OutcomeDealer
	default:
		return OutcomeDraw
	}
}
