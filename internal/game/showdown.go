package game

import (
	"fmt"

	"github.com/lox/drawpoker/poker"
)

// ShowdownResult describes how a pot was paid out
type ShowdownResult struct {
	Pot        int
	Winners    []*Player
	AmountEach int
	Remainder  int               // Chips left over from an uneven split; paid to nobody
	HandNames  map[string]string // Category name per evaluated player
	ByDefault  bool              // Only one player remained; no hands were evaluated
	Forfeited  bool              // Every player folded; the pot is lost
}

// Paid returns the total number of chips handed to winners.
func (r ShowdownResult) Paid() int {
	return r.AmountEach * len(r.Winners)
}

// Showdown pays pot to the best hand among non-folded players. Equal
// categories split the pot by integer division and the remainder is dropped.
// With kicker tie-breaks enabled, equal categories are further ordered by
// card values.
func (rc *RoundController) Showdown(players []*Player, pot int) (ShowdownResult, error) {
	result := ShowdownResult{Pot: pot, HandNames: make(map[string]string)}

	var contenders []*Player
	for _, p := range players {
		if !p.Folded {
			contenders = append(contenders, p)
		}
	}

	switch len(contenders) {
	case 0:
		result.Forfeited = true
		rc.logger.Info("All players folded, pot forfeited", "pot", pot)
		return result, nil
	case 1:
		winner := contenders[0]
		winner.Win(pot)
		result.Winners = []*Player{winner}
		result.AmountEach = pot
		result.ByDefault = true
		rc.logger.Info("Pot won by default", "winner", winner.Name, "pot", pot)
		return result, nil
	}

	var (
		best     poker.HandStrength
		haveBest bool
	)
	for _, p := range contenders {
		strength, err := poker.Strength(p.Hand)
		if err != nil {
			return result, fmt.Errorf("evaluating %s: %w", p.Name, err)
		}
		result.HandNames[p.Name] = strength.Rank.String()

		cmp := 1
		if haveBest {
			cmp = rc.compare(strength, best)
		}
		switch {
		case cmp > 0:
			best, haveBest = strength, true
			result.Winners = []*Player{p}
		case cmp == 0:
			result.Winners = append(result.Winners, p)
		}
	}

	result.AmountEach = pot / len(result.Winners)
	result.Remainder = pot - result.Paid()
	for _, w := range result.Winners {
		w.Win(result.AmountEach)
	}

	rc.logger.Info("Showdown",
		"winners", len(result.Winners),
		"hand", best.Rank,
		"pot", pot,
		"each", result.AmountEach,
		"dropped", result.Remainder)
	return result, nil
}

func (rc *RoundController) compare(a, b poker.HandStrength) int {
	if rc.kickerTieBreak {
		return poker.Compare(a, b)
	}
	switch {
	case a.Rank > b.Rank:
		return 1
	case a.Rank < b.Rank:
		return -1
	default:
		return 0
	}
}
