package game

import (
	"context"
	"fmt"
)

// Action represents a player action
type Action int

const (
	Check Action = iota
	Call
	Bet
	Fold
)

var actionNames = [...]string{"check", "call", "bet", "fold"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// Numeric action codes accepted by DecisionFromCode. Any positive code is a
// bet of that many chips.
const (
	CallCode  = -1
	CheckCode = 0
)

// Decision is a player's requested action
type Decision struct {
	Action    Action
	Amount    int    // Chips to add for Bet
	Reasoning string // Human-readable explanation, logged only
}

// DecisionFromCode converts the numeric input convention (-1 call, 0 check,
// N bet N chips) into a Decision.
func DecisionFromCode(code int) (Decision, error) {
	switch {
	case code == CallCode:
		return Decision{Action: Call}, nil
	case code == CheckCode:
		return Decision{Action: Check}, nil
	case code > 0:
		return Decision{Action: Bet, Amount: code}, nil
	default:
		return Decision{}, fmt.Errorf("%w: code %d", ErrUnknownAction, code)
	}
}

// ActionSource supplies betting decisions. Implementations may block while
// waiting for input; they should return ctx.Err() once ctx is done.
type ActionSource interface {
	NextAction(ctx context.Context, player PlayerState, highBet int) (Decision, error)
}

// IndexSource supplies the 1-based hand positions a player wants to replace.
// An empty slice or a lone 0 keeps the whole hand.
type IndexSource interface {
	NextIndices(ctx context.Context, player PlayerState) ([]int, error)
}

// Continuer decides between rounds whether play goes on.
type Continuer interface {
	PlayAnother(ctx context.Context, players []PlayerState) (bool, error)
}

// ActionSourceFunc adapts a function to ActionSource.
type ActionSourceFunc func(ctx context.Context, player PlayerState, highBet int) (Decision, error)

func (f ActionSourceFunc) NextAction(ctx context.Context, player PlayerState, highBet int) (Decision, error) {
	return f(ctx, player, highBet)
}

// IndexSourceFunc adapts a function to IndexSource.
type IndexSourceFunc func(ctx context.Context, player PlayerState) ([]int, error)

func (f IndexSourceFunc) NextIndices(ctx context.Context, player PlayerState) ([]int, error) {
	return f(ctx, player)
}

// Sources bundles the collaborators a round needs.
type Sources struct {
	Actions ActionSource
	Indices IndexSource
}

// Router dispatches to per-player sources by name, falling back to Default.
type Router struct {
	Default Sources
	ByName  map[string]Sources
}

// NextAction implements ActionSource
func (r *Router) NextAction(ctx context.Context, player PlayerState, highBet int) (Decision, error) {
	if s, ok := r.ByName[player.Name]; ok && s.Actions != nil {
		return s.Actions.NextAction(ctx, player, highBet)
	}
	return r.Default.Actions.NextAction(ctx, player, highBet)
}

// NextIndices implements IndexSource
func (r *Router) NextIndices(ctx context.Context, player PlayerState) ([]int, error) {
	if s, ok := r.ByName[player.Name]; ok && s.Indices != nil {
		return s.Indices.NextIndices(ctx, player)
	}
	return r.Default.Indices.NextIndices(ctx, player)
}
