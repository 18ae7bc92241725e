package bot

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/game"
)

// FoldBot checks when it can and folds to any bet. It never draws.
type FoldBot struct {
	logger *log.Logger
}

// NewFoldBot creates a new FoldBot instance
func NewFoldBot(logger *log.Logger) *FoldBot {
	return &FoldBot{logger: logger.WithPrefix("foldbot")}
}

// NextAction implements game.ActionSource
func (f *FoldBot) NextAction(ctx context.Context, player game.PlayerState, highBet int) (game.Decision, error) {
	if err := ctx.Err(); err != nil {
		return game.Decision{}, err
	}
	if player.ToCall(highBet) == 0 {
		return game.Decision{Action: game.Check, Reasoning: "fold-bot checking"}, nil
	}
	f.logger.Debug("Folding", "player", player.Name, "high_bet", highBet)
	return game.Decision{Action: game.Fold, Reasoning: "fold-bot folding"}, nil
}

// NextIndices implements game.IndexSource
func (f *FoldBot) NextIndices(ctx context.Context, _ game.PlayerState) ([]int, error) {
	return nil, ctx.Err()
}
