package poker

import (
	"cmp"
	"slices"
)

// HandStrength orders hands within a category. Values holds the card values
// grouped by multiplicity (largest group first, then highest value first), so
// two hands of the same category compare lexicographically.
type HandStrength struct {
	Rank   HandRank
	Values []int
}

// Strength evaluates a hand and computes its tie-break key.
func Strength(hand []Card) (HandStrength, error) {
	rank, err := Evaluate(hand)
	if err != nil {
		return HandStrength{}, err
	}

	type group struct{ value, count int }
	counts := rankCounts(hand)
	groups := make([]group, 0, len(counts))
	for v, n := range counts {
		groups = append(groups, group{value: v, count: n})
	}
	slices.SortFunc(groups, func(a, b group) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(b.value, a.value)
	})

	values := make([]int, 0, HandSize)
	for _, g := range groups {
		for range g.count {
			values = append(values, g.value)
		}
	}
	return HandStrength{Rank: rank, Values: values}, nil
}

// Compare returns -1, 0 or +1 as a is weaker than, equal to, or stronger than b.
func Compare(a, b HandStrength) int {
	if c := cmp.Compare(a.Rank, b.Rank); c != 0 {
		return c
	}
	return slices.Compare(a.Values, b.Values)
}
