package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
)

func TestPlayerDrawHand(t *testing.T) {
	t.Parallel()
	deck := poker.NewDeck(randutil.New(1))
	p := NewPlayer("Alice", 100)

	require.NoError(t, p.DrawHand(deck))
	assert.Len(t, p.Hand, poker.HandSize)
	assert.Equal(t, poker.DeckSize-poker.HandSize, deck.CardsRemaining())

	// Drawing again replaces rather than appends.
	require.NoError(t, p.DrawHand(deck))
	assert.Len(t, p.Hand, poker.HandSize)
	assert.Equal(t, poker.DeckSize-2*poker.HandSize, deck.CardsRemaining())
}

func TestPlayerDrawHandExhausted(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Alice", 100)
	err := p.DrawHand(newStackedDeck("2h 3h"))
	assert.True(t, errors.Is(err, poker.ErrDeckExhausted))
}

func TestPlayerReplaceCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		indices  []int
		wantHand string
		wantUsed int
	}{
		{name: "zero keeps all", indices: []int{0}, wantHand: "2h 3d 4c 5s 7h", wantUsed: 0},
		{name: "empty keeps all", indices: nil, wantHand: "2h 3d 4c 5s 7h", wantUsed: 0},
		{name: "replace first and last", indices: []int{1, 5}, wantHand: "Ah 3d 4c 5s Kh", wantUsed: 2},
		{name: "out of range ignored", indices: []int{-1, 6, 99, 2}, wantHand: "2h Ah 4c 5s 7h", wantUsed: 1},
		{name: "repeats ignored", indices: []int{3, 3, 3}, wantHand: "2h 3d Ah 5s 7h", wantUsed: 1},
		{name: "replace all", indices: []int{1, 2, 3, 4, 5}, wantHand: "Ah Kh Qh Jh Th", wantUsed: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := dealt("Alice", 100, "2h 3d 4c 5s 7h")
			deck := newStackedDeck("Ah Kh Qh Jh Th")

			n, err := p.ReplaceCards(tt.indices, deck)
			require.NoError(t, err)
			assert.Equal(t, tt.wantUsed, n)
			assert.Equal(t, tt.wantUsed, deck.drawn)
			assert.Equal(t, tt.wantHand, poker.FormatCards(p.Hand))
		})
	}
}

func TestPlayerReplaceCardsExhausted(t *testing.T) {
	t.Parallel()
	p := dealt("Alice", 100, "2h 3d 4c 5s 7h")
	n, err := p.ReplaceCards([]int{1, 2}, newStackedDeck("Ah"))
	assert.True(t, errors.Is(err, poker.ErrDeckExhausted))
	assert.Equal(t, 1, n)
}

func TestPlayerChips(t *testing.T) {
	t.Parallel()
	p := dealt("Alice", 100, "2h 3d 4c 5s 7h")

	assert.True(t, p.HasEnoughChips(100))
	assert.False(t, p.HasEnoughChips(101))

	p.Bet(30)
	assert.Equal(t, 70, p.Chips)
	assert.Equal(t, 30, p.CurrentBet)
	assert.True(t, p.IsActive())

	p.Win(45)
	assert.Equal(t, 115, p.Chips)

	p.Fold()
	assert.True(t, p.Folded)
	assert.False(t, p.IsActive())
	assert.Len(t, p.Hand, 5, "folding keeps the hand until reset")

	p.ResetForNewRound()
	assert.False(t, p.Folded)
	assert.Zero(t, p.CurrentBet)
	assert.Empty(t, p.Hand)
	assert.Equal(t, 115, p.Chips, "reset does not touch chips")
}

func TestPlayerAllIn(t *testing.T) {
	t.Parallel()
	p := NewPlayer("Alice", 20)
	assert.False(t, p.IsAllIn())
	p.Bet(20)
	assert.True(t, p.IsAllIn())
	assert.False(t, p.IsActive())
}

func TestPlayerStateIsACopy(t *testing.T) {
	t.Parallel()
	p := dealt("Alice", 100, "2h 3d 4c 5s 7h")
	st := p.State()
	st.Hand[0] = poker.NewCard(poker.Ace, poker.Spades)
	assert.Equal(t, "2h", p.Hand[0].Short())
	assert.Equal(t, 10, st.ToCall(10))
	p.Bet(10)
	assert.Equal(t, 0, p.State().ToCall(10))
	assert.Equal(t, 0, p.State().ToCall(5))
}
