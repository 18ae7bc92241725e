package game

import (
	"context"
	"fmt"
)

// BettingRound encapsulates the state for one pass of betting
type BettingRound struct {
	HighBet        int // Highest CurrentBet at the table
	Contributed    int // Chips moved into the pot during this pass
	ActedThisRound []bool
}

// NewBettingRound creates a betting round. The high bet starts at the largest
// amount any contesting player has already committed, so a second betting
// round continues from the level the first one settled at.
func NewBettingRound(players []*Player) *BettingRound {
	br := &BettingRound{ActedThisRound: make([]bool, len(players))}
	for _, p := range players {
		if !p.Folded && p.CurrentBet > br.HighBet {
			br.HighBet = p.CurrentBet
		}
	}
	return br
}

// Apply validates and executes a decision for the player in seat. It returns
// the chips moved into the pot. Retryable errors leave all state untouched.
func (br *BettingRound) Apply(players []*Player, seat int, d Decision) (int, error) {
	p := players[seat]

	switch d.Action {
	case Fold:
		p.Fold()
		br.ActedThisRound[seat] = true
		return 0, nil

	case Check:
		if br.HighBet > p.CurrentBet {
			return 0, fmt.Errorf("%w: %d to call", ErrInvalidCheck, br.HighBet-p.CurrentBet)
		}
		br.ActedThisRound[seat] = true
		return 0, nil

	case Call:
		owed := br.HighBet - p.CurrentBet
		if owed <= 0 {
			br.ActedThisRound[seat] = true
			return 0, nil
		}
		return br.wager(players, seat, owed)

	case Bet:
		if d.Amount <= 0 {
			return br.Apply(players, seat, Decision{Action: Check})
		}
		return br.wager(players, seat, d.Amount)

	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownAction, d.Action)
	}
}

func (br *BettingRound) wager(players []*Player, seat, amount int) (int, error) {
	p := players[seat]
	if !p.HasEnoughChips(amount) {
		return 0, fmt.Errorf("%w: wanted %d, have %d", ErrInsufficientChips, amount, p.Chips)
	}

	p.Bet(amount)
	br.Contributed += amount
	br.ActedThisRound[seat] = true

	// A short all-in never lowers the bet everyone else has to match.
	if p.CurrentBet > br.HighBet {
		br.HighBet = p.CurrentBet
		for i := range br.ActedThisRound {
			if i != seat {
				br.ActedThisRound[i] = false
			}
		}
	}
	return amount, nil
}

// NeedsAction reports whether the player in seat still has to act.
func (br *BettingRound) NeedsAction(players []*Player, seat int) bool {
	p := players[seat]
	if !p.IsActive() {
		return false
	}
	return !br.ActedThisRound[seat] || p.CurrentBet < br.HighBet
}

// IsBettingComplete checks if betting is complete for this round
func (br *BettingRound) IsBettingComplete(players []*Player) bool {
	contesting := 0
	for _, p := range players {
		if !p.Folded {
			contesting++
		}
	}
	if contesting <= 1 {
		return true
	}

	// Count active players (not folded, not all-in)
	active := 0
	var lone *Player
	for _, p := range players {
		if p.IsActive() {
			active++
			lone = p
		}
	}

	switch active {
	case 0:
		return true
	case 1:
		// Nobody left to bet against; the last stack only has to match.
		return lone.CurrentBet >= br.HighBet
	}

	for seat := range players {
		if br.NeedsAction(players, seat) {
			return false
		}
	}
	return true
}

// RunBettingRound solicits decisions in seat order until betting is complete
// and returns the chips added to the pot. Rejected decisions are published as
// ActionRejectedEvent and the same player is asked again.
func (rc *RoundController) RunBettingRound(ctx context.Context, players []*Player, source ActionSource) (int, error) {
	if len(players) == 0 {
		return 0, nil
	}

	br := NewBettingRound(players)
	cursor := newTurnCursor(len(players))

	for !br.IsBettingComplete(players) {
		if err := ctx.Err(); err != nil {
			return br.Contributed, err
		}

		seat := cursor.Current()
		if !br.NeedsAction(players, seat) {
			cursor.Advance()
			continue
		}

		p := players[seat]
		decision, err := source.NextAction(ctx, p.State(), br.HighBet)
		if err != nil {
			if IsRetryable(err) {
				rc.reject(p, decision, err, cursor)
				continue
			}
			return br.Contributed, fmt.Errorf("action for %s: %w", p.Name, err)
		}

		amount, err := br.Apply(players, seat, decision)
		if err != nil {
			if IsRetryable(err) {
				rc.reject(p, decision, err, cursor)
				continue
			}
			return br.Contributed, err
		}

		rc.logger.Debug("Player action",
			"player", p.Name,
			"action", decision.Action,
			"amount", amount,
			"high_bet", br.HighBet,
			"reasoning", decision.Reasoning)

		rc.publish(PlayerActionEvent{
			Player:    p.State(),
			Action:    decision.Action,
			Amount:    amount,
			HighBet:   br.HighBet,
			Phase:     rc.phase,
			Reasoning: decision.Reasoning,
			timestamp: rc.clock.Now(),
		})

		cursor.Advance()
	}

	return br.Contributed, nil
}

func (rc *RoundController) reject(p *Player, d Decision, err error, cursor *turnCursor) {
	cursor.Repeat()
	rc.logger.Debug("Action rejected",
		"player", p.Name,
		"action", d.Action,
		"amount", d.Amount,
		"retries", cursor.Retries(),
		"error", err)
	rc.publish(ActionRejectedEvent{
		Player:    p.State(),
		Decision:  d,
		Err:       err,
		timestamp: rc.clock.Now(),
	})
}
