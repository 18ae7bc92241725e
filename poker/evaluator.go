package poker

import (
	"errors"
	"fmt"
	"slices"
)

// ErrMalformedHand is returned when a hand does not hold exactly five distinct
// valid cards.
var ErrMalformedHand = errors.New("malformed hand")

// HandSize is the number of cards in a five-card draw hand.
const HandSize = 5

// HandRank is the category of a five-card hand. Higher values are stronger.
type HandRank int

// Hand categories, weakest first.
const (
	HighCard HandRank = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// royalSum is 10+11+12+13+14; the only five consecutive values with this sum.
const royalSum = 60

var handRankNames = map[HandRank]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

// String returns a human-readable hand description. Unknown values render as
// "High Card", matching the lowest category.
func (hr HandRank) String() string {
	if name, ok := handRankNames[hr]; ok {
		return name
	}
	return handRankNames[HighCard]
}

// Evaluate classifies a five-card hand. Categories are tested from strongest
// to weakest and the first match wins, so a straight flush is never reported
// as a flush or a straight.
func Evaluate(hand []Card) (HandRank, error) {
	if err := validateHand(hand); err != nil {
		return 0, err
	}

	counts := rankCounts(hand)
	flush := isFlush(hand)
	straight := isStraight(hand)

	switch {
	case flush && straight && valueSum(hand) == royalSum:
		return RoyalFlush, nil
	case flush && straight:
		return StraightFlush, nil
	case hasCount(counts, 4):
		return FourOfAKind, nil
	case hasCount(counts, 3) && hasCount(counts, 2):
		return FullHouse, nil
	case flush:
		return Flush, nil
	case straight:
		return Straight, nil
	case hasCount(counts, 3):
		return ThreeOfAKind, nil
	case countOf(counts, 2) == 2:
		return TwoPair, nil
	case hasCount(counts, 2):
		return Pair, nil
	default:
		return HighCard, nil
	}
}

// MustEvaluate is like Evaluate but panics on a malformed hand.
func MustEvaluate(hand []Card) HandRank {
	rank, err := Evaluate(hand)
	if err != nil {
		panic(err)
	}
	return rank
}

func validateHand(hand []Card) error {
	if len(hand) != HandSize {
		return fmt.Errorf("%w: %d cards, want %d", ErrMalformedHand, len(hand), HandSize)
	}
	seen := make(map[Card]struct{}, HandSize)
	for _, c := range hand {
		if !c.Rank.Valid() || int(c.Suit) >= len(Suits) {
			return fmt.Errorf("%w: invalid card %v", ErrMalformedHand, c)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: duplicate card %s", ErrMalformedHand, c.Short())
		}
		seen[c] = struct{}{}
	}
	return nil
}

// rankCounts groups the hand by value.
func rankCounts(hand []Card) map[int]int {
	counts := make(map[int]int, len(hand))
	for _, c := range hand {
		counts[c.Value()]++
	}
	return counts
}

func hasCount(counts map[int]int, n int) bool {
	return countOf(counts, n) > 0
}

// countOf returns how many distinct values appear exactly n times.
func countOf(counts map[int]int, n int) int {
	found := 0
	for _, c := range counts {
		if c == n {
			found++
		}
	}
	return found
}

func isFlush(hand []Card) bool {
	for _, c := range hand[1:] {
		if c.Suit != hand[0].Suit {
			return false
		}
	}
	return true
}

// isStraight reports five consecutive values. Aces are high only, so
// A-2-3-4-5 is not a straight.
func isStraight(hand []Card) bool {
	values := sortedValues(hand)
	for i := 1; i < len(values); i++ {
		if values[i]-values[i-1] != 1 {
			return false
		}
	}
	return true
}

func sortedValues(hand []Card) []int {
	values := make([]int, len(hand))
	for i, c := range hand {
		values[i] = c.Value()
	}
	slices.Sort(values)
	return values
}

func valueSum(hand []Card) int {
	sum := 0
	for _, c := range hand {
		sum += c.Value()
	}
	return sum
}
