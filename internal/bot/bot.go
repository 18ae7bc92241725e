// Package bot provides automated players. Every bot implements both
// game.ActionSource and game.IndexSource, so it can fill a seat on its own.
package bot

import (
	"cmp"
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

// MaxDiscards is the most cards a bot replaces in one draw.
const MaxDiscards = 3

// Bot is a seat that needs no human.
type Bot interface {
	game.ActionSource
	game.IndexSource
}

// Strategy names accepted by New.
const (
	StrategyCall = "call"
	StrategyRand = "rand"
	StrategyFold = "fold"
)

// Strategies lists every strategy New understands.
var Strategies = []string{StrategyCall, StrategyRand, StrategyFold}

// New creates a bot by strategy name. rng is only used by strategies that
// need randomness and must not be shared across goroutines.
func New(strategy string, rng *rand.Rand, logger *log.Logger) (Bot, error) {
	switch strategy {
	case StrategyCall:
		return NewCallBot(logger), nil
	case StrategyRand:
		return NewRandBot(rng, logger), nil
	case StrategyFold:
		return NewFoldBot(logger), nil
	default:
		return nil, fmt.Errorf("unknown bot strategy %q", strategy)
	}
}

// Sources adapts a bot to the collaborators a round needs.
func Sources(b Bot) game.Sources {
	return game.Sources{Actions: b, Indices: b}
}

// StandardDraw returns the 1-based positions a sensible player discards: made
// straights, flushes and full houses stand pat, four to a flush draws one,
// otherwise paired cards are kept and the lowest unpaired cards go, at most
// MaxDiscards of them.
func StandardDraw(hand []poker.Card) []int {
	rank, err := poker.Evaluate(hand)
	if err != nil || rank == poker.Straight || rank == poker.Flush || rank >= poker.FullHouse {
		return nil
	}

	if odd, ok := fourToFlush(hand); ok && rank < poker.ThreeOfAKind {
		return []int{odd + 1}
	}

	counts := make(map[poker.Rank]int, len(hand))
	for _, c := range hand {
		counts[c.Rank]++
	}

	var singles []int
	for i, c := range hand {
		if counts[c.Rank] == 1 {
			singles = append(singles, i)
		}
	}
	slices.SortFunc(singles, func(a, b int) int {
		return cmp.Compare(hand[a].Rank, hand[b].Rank)
	})

	limit := MaxDiscards
	if rank == poker.HighCard {
		// Keep the top two cards hoping to pair one of them.
		limit = len(singles) - 2
	}
	if len(singles) > limit {
		singles = singles[:limit]
	}

	positions := make([]int, len(singles))
	for i, idx := range singles {
		positions[i] = idx + 1
	}
	slices.Sort(positions)
	return positions
}

// fourToFlush returns the index of the one card breaking an otherwise suited
// hand.
func fourToFlush(hand []poker.Card) (int, bool) {
	bySuit := make(map[poker.Suit][]int, 4)
	for i, c := range hand {
		bySuit[c.Suit] = append(bySuit[c.Suit], i)
	}
	if len(bySuit) != 2 {
		return 0, false
	}
	for _, idx := range bySuit {
		if len(idx) == 1 {
			return idx[0], true
		}
	}
	return 0, false
}
