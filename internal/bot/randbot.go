package bot

import (
	"context"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/game"
)

// DefaultMaxRandBet caps the size of a random bet above the call amount.
const DefaultMaxRandBet = 20

// RandBot picks uniformly among the legal actions and discards a random set
// of cards.
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
	maxBet int
}

// NewRandBot creates a new RandBot instance. rng must not be shared with
// another goroutine.
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger.WithPrefix("randbot"), maxBet: DefaultMaxRandBet}
}

// NextAction implements game.ActionSource
func (r *RandBot) NextAction(ctx context.Context, player game.PlayerState, highBet int) (game.Decision, error) {
	if err := ctx.Err(); err != nil {
		return game.Decision{}, err
	}

	owed := player.ToCall(highBet)
	choices := []game.Decision{{Action: game.Fold}}
	if owed == 0 {
		choices = append(choices, game.Decision{Action: game.Check})
	} else if owed <= player.Chips {
		choices = append(choices, game.Decision{Action: game.Call})
	}
	if player.Chips > owed {
		headroom := min(player.Chips-owed, r.maxBet)
		choices = append(choices, game.Decision{Action: game.Bet, Amount: owed + 1 + r.rng.IntN(headroom)})
	} else if player.Chips > 0 {
		choices = append(choices, game.Decision{Action: game.Bet, Amount: player.Chips})
	}

	d := choices[r.rng.IntN(len(choices))]
	d.Reasoning = "rand-bot random action"
	r.logger.Debug("Decision", "player", player.Name, "action", d.Action, "amount", d.Amount)
	return d, nil
}

// NextIndices implements game.IndexSource
func (r *RandBot) NextIndices(ctx context.Context, player game.PlayerState) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := r.rng.IntN(MaxDiscards + 1)
	positions := r.rng.Perm(len(player.Hand))[:min(n, len(player.Hand))]
	for i := range positions {
		positions[i]++
	}
	return positions, nil
}
