package blackjack

import "expvar"

var (
	metricGamesStarted = expvar.NewInt("blackjack_games_started_total")
	metricHits         = expvar.NewInt("blackjack_hits_total")
	metricStands       = expvar.NewInt("blackjack_stands_total")
	metricConflicts    = expvar.NewInt("blackjack_conflicts_total")
	metricOutcomes     = expvar.NewMap("blackjack_outcomes_total")
)
