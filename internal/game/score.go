package game

const BustLimit = 21

// Score is the hand total with aces counted as 11 and dropped to 1, one per
// ace, while the total is over 21.
func Score(hand []Card) int {
	total := 0
	for _, c := range hand {
		total += c.Value
	}
	for _, c := range hand {
		if c.Rank == Ace && total > BustLimit {
			total -= 10
		}
	}
	return total
}

func Busted(score int) bool { return score > BustLimit }
