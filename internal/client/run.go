package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
)

type RunOptions struct {
	// Rounds stops after this many settled games; 0 plays until ctx ends.
	Rounds         int
	RestartDelay   time.Duration
	// PlayOnAfterHit treats the winner set by a non-busting hit as
	// provisional and keeps asking the decider.
	PlayOnAfterHit bool
}

// Run plays games back to back: render, ask the decider, act, and once the
// server reports a winner wait RestartDelay and deal again. It returns the
// number of finished games.
func Run(ctx context.Context, c *Client, d Decider, out io.Writer, opts RunOptions) (int, error) {
	played := 0
	for opts.Rounds == 0 || played < opts.Rounds {
		view, err := c.Start(ctx)
		if err != nil {
			return played, fmt.Errorf("start game: %w", err)
		}
		log.Debug().Str("game_id", view.ID).Msg("game started")
		for {
			Render(out, *view)
			action, err := d.Decide(*view)
			if errors.Is(err, ErrQuit) {
				return played, nil
			}
			if err != nil {
				return played, err
			}
			if action == ActionHit {
				view, err = c.Hit(ctx, view.ID)
			} else {
				view, err = c.Stand(ctx, view.ID)
			}
			if err != nil {
				return played, fmt.Errorf("%s: %w", action, err)
			}
			if !view.Terminal {
				continue
			}
			if action == ActionStand || view.Player.Bust || !opts.PlayOnAfterHit {
				break
			}
		}
		Render(out, *view)
		played++
		if opts.Rounds != 0 && played >= opts.Rounds {
			break
		}
		select {
		case <-ctx.Done():
			return played, nil
		case <-time.After(opts.RestartDelay):
		}
	}
	return played, nil
}
