package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"blackjack-table/internal/client"
	"blackjack-table/internal/config"
	"blackjack-table/internal/logging"

	"github.com/rs/zerolog/log"
)

func main() {
	logCfg, logErr := config.LoadLog()
	if err := logging.Init(logCfg); err != nil {
		panic(err)
	}
	defer logging.Close()
	if logErr != nil {
		log.Fatal().Err(logErr).Msg("load log config failed")
	}

	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatal().Err(err).Msg("load client config failed")
	}

	var decider client.Decider
	switch cfg.Mode {
	case config.ClientModeAuto:
		decider = client.AutoDecider{HitBelow: cfg.AutoHitBelow}
	case config.ClientModeInteractive:
		decider = client.NewPromptDecider(os.Stdin, os.Stdout)
	default:
		log.Fatal().Str("mode", cfg.Mode).Msg("unknown CLIENT_MODE")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := client.New(cfg.ServerURL, cfg.Timeout)
	played, err := client.Run(ctx, c, decider, os.Stdout, client.RunOptions{
		Rounds:         cfg.Rounds,
		RestartDelay:   cfg.RestartDelay,
		PlayOnAfterHit: cfg.PlayOnAfterHit,
	})
	if err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Int("played", played).Str("server", cfg.ServerURL).Msg("client stopped")
	}
	log.Info().Int("played", played).Msg("client done")
}
