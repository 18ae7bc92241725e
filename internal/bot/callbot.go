package bot

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/game"
)

// CallBot is a calling station: it checks or calls every bet, shoves when
// it cannot cover a call, and never bets first.
type CallBot struct {
	logger *log.Logger
}

// NewCallBot creates a new CallBot instance
func NewCallBot(logger *log.Logger) *CallBot {
	return &CallBot{logger: logger.WithPrefix("callbot")}
}

// NextAction implements game.ActionSource
func (c *CallBot) NextAction(ctx context.Context, player game.PlayerState, highBet int) (game.Decision, error) {
	if err := ctx.Err(); err != nil {
		return game.Decision{}, err
	}

	owed := player.ToCall(highBet)
	var d game.Decision
	switch {
	case owed == 0:
		d = game.Decision{Action: game.Check, Reasoning: "call-bot checking"}
	case owed <= player.Chips:
		d = game.Decision{Action: game.Call, Reasoning: "call-bot calling"}
	default:
		d = game.Decision{Action: game.Bet, Amount: player.Chips, Reasoning: "call-bot all-in for less"}
	}

	c.logger.Debug("Decision", "player", player.Name, "action", d.Action, "amount", d.Amount, "owed", owed)
	return d, nil
}

// NextIndices implements game.IndexSource
func (c *CallBot) NextIndices(ctx context.Context, player game.PlayerState) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	indices := StandardDraw(player.Hand)
	c.logger.Debug("Discarding", "player", player.Name, "positions", indices)
	return indices, nil
}
