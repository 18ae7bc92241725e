package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/internal/config"
	"github.com/lox/drawpoker/internal/console"
	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
)

func TestEvalCmd(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards []string
		want  string
	}{
		{cards: []string{"As", "Ks", "Qs", "Js", "Ts"}, want: "Royal Flush"},
		{cards: []string{"2s 3s 4s 5s 6s"}, want: "Straight Flush"},
		{cards: []string{"7c", "7d", "7h", "2s", "2c"}, want: "Full House"},
		{cards: []string{"2h,2d,5c,5s,9h"}, want: "Two Pair"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, (&EvalCmd{Cards: tt.cards}).run(&buf))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestEvalCmdErrors(t *testing.T) {
	t.Parallel()
	err := (&EvalCmd{Cards: []string{"As", "Ks"}}).run(io.Discard)
	assert.ErrorIs(t, err, poker.ErrMalformedHand)

	err = (&EvalCmd{Cards: []string{"Zz"}}).run(io.Discard)
	assert.ErrorIs(t, err, poker.ErrInvalidCard)
}

func TestPlayCmdOverrides(t *testing.T) {
	t.Parallel()
	seed := int64(9)
	cmd := &PlayCmd{Players: 3, Names: []string{"Ann"}, Chips: 40, Seed: &seed, Kickers: true, LogLevel: "debug"}
	cfg := config.DefaultConfig()
	cmd.applyOverrides(cfg)
	require.NoError(t, cfg.Validate())

	require.Len(t, cfg.Players, 3)
	assert.Equal(t, "Ann", cfg.Players[0].Name)
	assert.Equal(t, "Player 3", cfg.Players[2].Name)
	assert.Equal(t, 40, cfg.Players[1].Chips)
	assert.Equal(t, int64(9), *cfg.Game.Seed)
	assert.True(t, cfg.Game.KickerTieBreak)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestNewTableBotsOnly(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()
	cfg.Game.MaxDiscards = 3
	cfg.Players = []config.PlayerConfig{
		{Name: "Cal", Chips: 100, Strategy: config.StrategyCall},
		{Name: "Ran", Chips: 100, Strategy: config.StrategyRand},
		{Name: "Fol", Chips: 100, Strategy: config.StrategyFold},
	}
	require.NoError(t, cfg.Validate())

	var out bytes.Buffer
	logger := log.New(io.Discard)
	con := console.New(console.NewLinePrompter(strings.NewReader(""), &out), &out, logger)

	table, err := newTable(cfg, 5, randutil.New(5), con, quartz.NewReal(), logger)
	require.NoError(t, err)

	result, err := table.Run(context.Background())
	require.NoError(t, err)
	assert.Positive(t, result.Rounds)
	assert.LessOrEqual(t, result.Rounds, botOnlyRounds)
	assert.Contains(t, out.String(), "Showdown")

	var buf bytes.Buffer
	printStandings(&buf, result)
	assert.Contains(t, buf.String(), "Final standings")
}

func TestNewTableUnknownStrategy(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()
	cfg.Players[1].Strategy = "shark"

	logger := log.New(io.Discard)
	con := console.New(console.NewLinePrompter(strings.NewReader(""), io.Discard), io.Discard, logger)
	_, err := newTable(cfg, 1, randutil.New(1), con, quartz.NewReal(), logger)
	assert.ErrorContains(t, err, "unknown bot strategy")
}
