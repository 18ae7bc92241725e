package game

import "errors"

var (
	// ErrInsufficientChips is reported when a bet or call exceeds the
	// player's stack. The same player is asked again.
	ErrInsufficientChips = errors.New("insufficient chips")

	// ErrInvalidCheck is reported when a player checks while owing chips to
	// the pot. The same player is asked again.
	ErrInvalidCheck = errors.New("must at least call the current bet to stay in the round")

	// ErrUnknownAction is reported for action codes below the call sentinel.
	ErrUnknownAction = errors.New("unknown action")

	// ErrNotEnoughPlayers is returned when fewer than two players have chips.
	ErrNotEnoughPlayers = errors.New("not enough players")
)

// IsRetryable reports whether err only requires the acting player to choose
// again.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrInsufficientChips) ||
		errors.Is(err, ErrInvalidCheck) ||
		errors.Is(err, ErrUnknownAction)
}
