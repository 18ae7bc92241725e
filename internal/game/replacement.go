package game

import (
	"context"
	"fmt"
)

// RunReplacementRound asks every non-folded player which cards to swap and
// draws replacements from deck. No chips move.
func (rc *RoundController) RunReplacementRound(ctx context.Context, players []*Player, deck CardSource, source IndexSource) error {
	for _, p := range players {
		if p.Folded {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		indices, err := source.NextIndices(ctx, p.State())
		if err != nil {
			return fmt.Errorf("replacement for %s: %w", p.Name, err)
		}

		replaced, err := p.ReplaceCards(indices, deck)
		if err != nil {
			return err
		}

		rc.logger.Debug("Cards replaced", "player", p.Name, "requested", indices, "replaced", replaced)
		rc.publish(CardsReplacedEvent{
			Player:    p.State(),
			Replaced:  replaced,
			timestamp: rc.clock.Now(),
		})
	}
	return nil
}
