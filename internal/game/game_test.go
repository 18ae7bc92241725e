package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// continuerFunc adapts a function to Continuer.
type continuerFunc func(ctx context.Context, players []PlayerState) (bool, error)

func (f continuerFunc) PlayAnother(ctx context.Context, players []PlayerState) (bool, error) {
	return f(ctx, players)
}

// checkOrFold checks when possible and folds otherwise.
var checkOrFold = ActionSourceFunc(func(_ context.Context, p PlayerState, highBet int) (Decision, error) {
	if p.ToCall(highBet) == 0 {
		return check, nil
	}
	return fold, nil
})

func TestGameRunEliminatesBustedPlayer(t *testing.T) {
	t.Parallel()
	rc, _ := newTestController(t, stackedDecks(
		"Ts Js Qs Ks As",
		"2c 5d 9h Jc Kc",
	))
	a, b := NewPlayer("A", 100), NewPlayer("B", 10)
	actions := newScriptedActions(map[string][]Decision{
		"A": {bet(10)},
		"B": {call},
	})
	asked := 0
	cont := continuerFunc(func(context.Context, []PlayerState) (bool, error) {
		asked++
		return true, nil
	})

	g := NewGame(rc, []*Player{a, b}, Sources{Actions: actions, Indices: keepAll}, testLogger(), WithContinuer(cont))
	res, err := g.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, []string{"B"}, res.Eliminated)
	require.Len(t, res.Standings, 1)
	assert.Equal(t, "A", res.Standings[0].Name)
	assert.Equal(t, 110, res.Standings[0].Chips)
	assert.Zero(t, asked, "no prompt once a single player is left")
	assert.Zero(t, res.Dropped)
}

func TestGameRunStopsWhenOperatorDeclines(t *testing.T) {
	t.Parallel()
	rc, _ := newTestController(t)
	players := []*Player{NewPlayer("A", 100), NewPlayer("B", 100), NewPlayer("C", 100)}
	rounds := 0
	cont := continuerFunc(func(_ context.Context, ps []PlayerState) (bool, error) {
		rounds++
		assert.Len(t, ps, 3)
		return rounds < 3, nil
	})

	g := NewGame(rc, players, Sources{Actions: checkOrFold, Indices: keepAll}, testLogger(), WithContinuer(cont))
	res, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Rounds)
	assert.Len(t, res.Standings, 3)
	assert.Empty(t, res.Eliminated)
}

func TestGameRunMaxRounds(t *testing.T) {
	t.Parallel()
	rc, _ := newTestController(t)
	players := []*Player{NewPlayer("A", 100), NewPlayer("B", 100)}

	g := NewGame(rc, players, Sources{Actions: checkOrFold, Indices: keepAll}, testLogger(), WithMaxRounds(5))
	res, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, res.Rounds)
	assert.Equal(t, 200, res.Standings[0].Chips+res.Standings[1].Chips+res.Dropped)
}

func TestGameRunRemovesBrokePlayersUpFront(t *testing.T) {
	t.Parallel()
	rc, _ := newTestController(t)
	players := []*Player{NewPlayer("A", 100), NewPlayer("Broke", 0), NewPlayer("B", 100)}

	g := NewGame(rc, players, Sources{Actions: checkOrFold, Indices: keepAll}, testLogger(), WithMaxRounds(1))
	res, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Broke"}, res.Eliminated)
	assert.Len(t, g.Players(), 2)
}

func TestGameRunNotEnoughPlayers(t *testing.T) {
	t.Parallel()
	rc, _ := newTestController(t)
	g := NewGame(rc, []*Player{NewPlayer("A", 100)}, Sources{Actions: checkOrFold, Indices: keepAll}, testLogger())
	_, err := g.Run(context.Background())
	assert.True(t, errors.Is(err, ErrNotEnoughPlayers))
}

func TestGameRunContinuerError(t *testing.T) {
	t.Parallel()
	rc, _ := newTestController(t)
	boom := errors.New("stdin closed")
	cont := continuerFunc(func(context.Context, []PlayerState) (bool, error) {
		return false, boom
	})
	g := NewGame(rc, []*Player{NewPlayer("A", 100), NewPlayer("B", 100)},
		Sources{Actions: checkOrFold, Indices: keepAll}, testLogger(), WithContinuer(cont))
	_, err := g.Run(context.Background())
	assert.True(t, errors.Is(err, boom))
}

func TestSafeDiscards(t *testing.T) {
	t.Parallel()
	tests := map[int]int{
		0:  0,
		2:  5,
		4:  5,
		5:  5,
		6:  3,
		8:  1,
		10: 0,
		11: 0,
	}
	for players, want := range tests {
		assert.Equal(t, want, SafeDiscards(players), "players=%d", players)
	}
}
