package game

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// TimedActionSource bounds how long the wrapped source may take to decide.
// On timeout the player checks if nothing is owed and folds otherwise.
type TimedActionSource struct {
	inner   ActionSource
	timeout time.Duration
	clock   quartz.Clock
	logger  *log.Logger
}

// NewTimedActionSource wraps inner with a decision timeout.
func NewTimedActionSource(inner ActionSource, timeout time.Duration, clock quartz.Clock, logger *log.Logger) *TimedActionSource {
	return &TimedActionSource{
		inner:   inner,
		timeout: timeout,
		clock:   clock,
		logger:  logger.WithPrefix("timeout"),
	}
}

type timedDecision struct {
	decision Decision
	err      error
}

// NextAction implements ActionSource
func (t *TimedActionSource) NextAction(ctx context.Context, player PlayerState, highBet int) (Decision, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	timeoutFired := make(chan struct{})
	timer := t.clock.AfterFunc(t.timeout, func() {
		close(timeoutFired)
	})
	defer timer.Stop()

	decided := make(chan timedDecision, 1)
	go func() {
		d, err := t.inner.NextAction(ctx, player, highBet)
		decided <- timedDecision{decision: d, err: err}
	}()

	select {
	case td := <-decided:
		return td.decision, td.err

	case <-timeoutFired:
		fallback := Decision{Action: Fold, Reasoning: "decision timeout"}
		if player.ToCall(highBet) == 0 {
			fallback = Decision{Action: Check, Reasoning: "decision timeout"}
		}
		t.logger.Warn("Decision timeout",
			"player", player.Name,
			"timeout", t.timeout,
			"fallback", fallback.Action)
		return fallback, nil

	case <-ctx.Done():
		return Decision{}, ctx.Err()
	}
}
