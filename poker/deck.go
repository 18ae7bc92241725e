package poker

import (
	"errors"
	rand "math/rand/v2"
)

// ErrDeckExhausted is returned when a card is drawn from an empty deck. It
// signals that the caller dealt more cards than a single deck holds.
var ErrDeckExhausted = errors.New("deck exhausted")

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Deck represents a standard 52-card deck. Cards are drawn from the end of
// the sequence.
type Deck struct {
	cards []Card
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck with explicit RNG. A nil rng falls back
// to the global source.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}

	for rank := Two; rank <= Ace; rank++ {
		for _, suit := range Suits {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}

	d.Shuffle()
	return d
}

// Shuffle shuffles the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, ErrDeckExhausted
	}
	card := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return card, nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}
