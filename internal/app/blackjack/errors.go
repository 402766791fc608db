package blackjack

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrGameNotFound   = errors.New("game_not_found")
	ErrDeckExhausted  = errors.New("deck_exhausted")
	ErrConflict       = errors.New("conflict")
)
