package httptransport

import "expvar"

var (
	metricStartTotal    = expvar.NewInt("http_game_start_total")
	metricHitTotal      = expvar.NewInt("http_game_hit_total")
	metricStandTotal    = expvar.NewInt("http_game_stand_total")
	metricRequestErrors = expvar.NewInt("http_game_errors_total")
)
