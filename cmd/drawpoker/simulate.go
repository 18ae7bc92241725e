package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/bot"
	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/internal/simulator"
)

type SimulateCmd struct {
	Games     int    `short:"n" default:"1000" help:"Number of games to play"`
	Workers   int    `short:"w" help:"Parallel workers (defaults to the number of CPUs)"`
	Players   int    `short:"p" default:"4" help:"Seats per game (2-10)"`
	Chips     int    `default:"100" help:"Starting chips per player"`
	Seed      *int64 `help:"Base seed; each game derives its own"`
	MaxRounds int    `default:"100" help:"Round limit per game"`
	Hero      string `default:"call" enum:"call,rand,fold" help:"Strategy of the tracked seat"`
	Opponents string `default:"mixed" enum:"mixed,call,rand,fold" help:"Strategy of the other seats"`
	Kickers   bool   `help:"Break equal-category ties on card values"`
	LogLevel  string `default:"warn" enum:"debug,info,warn,error" help:"Log level"`
}

func (s *SimulateCmd) Run() error {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, level)

	ctx, stop := signalContext()
	defer stop()

	seed, _ := randutil.Resolve(s.Seed)
	start := time.Now()
	results, err := simulator.Run(ctx, simulator.Config{
		Games:          s.Games,
		Workers:        s.Workers,
		Players:        s.Players,
		StartingChips:  s.Chips,
		Seed:           seed,
		MaxRounds:      s.MaxRounds,
		Hero:           s.Hero,
		Opponents:      s.Opponents,
		KickerTieBreak: s.Kickers,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	if err := simulator.WriteSummary(os.Stdout, results); err != nil {
		return err
	}
	_, err = fmt.Printf("\nSeed: %d  Elapsed: %s  Hero: %s-bot vs %s\n",
		seed, time.Since(start).Round(time.Millisecond), s.Hero, opponentsLabel(s.Opponents))
	return err
}

func opponentsLabel(opponents string) string {
	if opponents == simulator.OpponentsMixed {
		return fmt.Sprintf("mixed(%v)", bot.Strategies)
	}
	return opponents + "-bot"
}
