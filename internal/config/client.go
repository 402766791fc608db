package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	ClientModeInteractive = "interactive"
	ClientModeAuto        = "auto"
)

type ClientConfig struct {
	ServerURL      string        `env:"SERVER_URL" envDefault:"http://localhost:5000"`
	Mode           string        `env:"CLIENT_MODE" envDefault:"interactive"`
	Rounds         int           `env:"CLIENT_ROUNDS" envDefault:"0"`
	RestartDelay   time.Duration `env:"CLIENT_RESTART_DELAY" envDefault:"5s"`
	// AutoHitBelow is the total under which auto mode keeps hitting.
	AutoHitBelow   int           `env:"CLIENT_AUTO_HIT_BELOW" envDefault:"17"`
	Timeout        time.Duration `env:"CLIENT_HTTP_TIMEOUT" envDefault:"5s"`
	// PlayOnAfterHit keeps a hand open after a hit that did not bust,
	// ignoring the winner the server reports for it.
	PlayOnAfterHit bool          `env:"CLIENT_PLAY_ON_HIT" envDefault:"false"`
}

func LoadClient() (ClientConfig, error) {
	var cfg ClientConfig
	err := env.Parse(&cfg)
	return cfg, err
}
