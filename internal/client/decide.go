package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"blackjack-table/internal/game/viewmodel"
)

type Action string

const (
	ActionHit   Action = "hit"
	ActionStand Action = "stand"
)

var ErrQuit = errors.New("quit")

// Decider picks the player's next move for an unsettled game.
type Decider interface {
	Decide(view viewmodel.GameView) (Action, error)
}

// AutoDecider hits while the player total is below HitBelow.
type AutoDecider struct {
	HitBelow int
}

func (d AutoDecider) Decide(view viewmodel.GameView) (Action, error) {
	if view.Player.Score < d.HitBelow {
		return ActionHit, nil
	}
	return ActionStand, nil
}

// PromptDecider asks on out and reads h, s or q from in.
type PromptDecider struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPromptDecider(in io.Reader, out io.Writer) *PromptDecider {
	return &PromptDecider{in: bufio.NewReader(in), out: out}
}

func (d *PromptDecider) Decide(viewmodel.GameView) (Action, error) {
	for {
		fmt.Fprint(d.out, "[h]it, [s]tand or [q]uit? ")
		line, err := d.in.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "h", "hit":
			return ActionHit, nil
		case "s", "stand":
			return ActionStand, nil
		case "q", "quit":
			return "", ErrQuit
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrQuit
			}
			return "", err
		}
	}
}
