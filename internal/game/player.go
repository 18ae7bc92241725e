package game

import (
	"fmt"
	"slices"

	"github.com/lox/drawpoker/poker"
)

// CardSource supplies cards one at a time. *poker.Deck implements it.
type CardSource interface {
	Draw() (poker.Card, error)
}

// Player represents a seat at the table. Chips carry over between rounds;
// everything else is reset by ResetForNewRound.
type Player struct {
	Name       string
	Chips      int
	Hand       []poker.Card
	Folded     bool
	CurrentBet int // Chips committed during this round
}

// NewPlayer creates a player with an empty hand
func NewPlayer(name string, chips int) *Player {
	return &Player{
		Name:  name,
		Chips: chips,
		Hand:  make([]poker.Card, 0, poker.HandSize),
	}
}

// DrawHand discards the current hand and draws five cards.
func (p *Player) DrawHand(deck CardSource) error {
	p.Hand = p.Hand[:0]
	for range poker.HandSize {
		card, err := deck.Draw()
		if err != nil {
			return fmt.Errorf("dealing to %s: %w", p.Name, err)
		}
		p.Hand = append(p.Hand, card)
	}
	return nil
}

// ReplaceCards swaps the cards at the given 1-based positions for fresh ones
// and returns how many were replaced. Positions outside the hand are ignored,
// as are repeats, so 0 means "keep everything".
func (p *Player) ReplaceCards(indices []int, deck CardSource) (int, error) {
	replaced := 0
	seen := make(map[int]bool, len(indices))
	for _, index := range indices {
		if index < 1 || index > len(p.Hand) || seen[index] {
			continue
		}
		seen[index] = true

		card, err := deck.Draw()
		if err != nil {
			return replaced, fmt.Errorf("replacing card %d for %s: %w", index, p.Name, err)
		}
		p.Hand[index-1] = card
		replaced++
	}
	return replaced, nil
}

// HasEnoughChips reports whether the player can put amount into the pot.
func (p *Player) HasEnoughChips(amount int) bool {
	return p.Chips >= amount
}

// Bet moves chips from the stack into the player's current bet. The caller
// checks HasEnoughChips first.
func (p *Player) Bet(amount int) {
	p.Chips -= amount
	p.CurrentBet += amount
}

// Fold marks the player out of the round.
func (p *Player) Fold() {
	p.Folded = true
}

// Win adds chips to the stack.
func (p *Player) Win(amount int) {
	p.Chips += amount
}

// ResetForNewRound clears per-round state. Chips are untouched.
func (p *Player) ResetForNewRound() {
	p.Folded = false
	p.CurrentBet = 0
	p.Hand = p.Hand[:0]
}

// IsActive returns true if the player can still act
func (p *Player) IsActive() bool {
	return !p.Folded && p.Chips > 0
}

// IsAllIn returns true if the player is still contesting the pot but has no
// chips left to bet.
func (p *Player) IsAllIn() bool {
	return !p.Folded && p.Chips == 0 && p.CurrentBet > 0
}

// HandRank evaluates the player's current hand.
func (p *Player) HandRank() (poker.HandRank, error) {
	return poker.Evaluate(p.Hand)
}

// State returns a read-only snapshot for collaborators.
func (p *Player) State() PlayerState {
	return PlayerState{
		Name:       p.Name,
		Chips:      p.Chips,
		Hand:       slices.Clone(p.Hand),
		Folded:     p.Folded,
		CurrentBet: p.CurrentBet,
	}
}

// PlayerState is an immutable view of a player handed to decision makers and
// event subscribers.
type PlayerState struct {
	Name       string
	Chips      int
	Hand       []poker.Card
	Folded     bool
	CurrentBet int
}

// ToCall returns how much the player must add to match highBet.
func (ps PlayerState) ToCall(highBet int) int {
	if owed := highBet - ps.CurrentBet; owed > 0 {
		return owed
	}
	return 0
}
