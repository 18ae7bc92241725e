// Package simulator plays many independent bot-only games concurrently and
// aggregates what happened in them.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/drawpoker/internal/bot"
	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/internal/statistics"
	"github.com/lox/drawpoker/poker"
)

// OpponentsMixed seats a rotating mix of every bot strategy.
const OpponentsMixed = "mixed"

const (
	DefaultPlayers   = 4
	DefaultMaxRounds = 100
	heroName         = "Hero"
)

// Config holds configuration for running simulations
type Config struct {
	Games          int
	Workers        int // Defaults to GOMAXPROCS
	Players        int
	StartingChips  int
	Seed           int64
	MaxRounds      int    // Per game; a table of calling stations never ends on its own
	Hero           string // Strategy of the tracked seat
	Opponents      string // Strategy of the other seats, or OpponentsMixed
	KickerTieBreak bool
	Logger         *log.Logger
}

func (c *Config) applyDefaults() {
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Players == 0 {
		c.Players = DefaultPlayers
	}
	if c.StartingChips == 0 {
		c.StartingChips = game.DefaultStartingChips
	}
	if c.MaxRounds == 0 {
		c.MaxRounds = DefaultMaxRounds
	}
	if c.Hero == "" {
		c.Hero = bot.StrategyCall
	}
	if c.Opponents == "" {
		c.Opponents = OpponentsMixed
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
}

// Validate checks the configuration after defaults are applied
func (c *Config) Validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive: %d", c.Games)
	}
	if c.Players < 2 || c.Players > statistics.MaxSeats {
		return fmt.Errorf("players must be between 2 and %d: %d", statistics.MaxSeats, c.Players)
	}
	if c.StartingChips <= 0 {
		return fmt.Errorf("starting chips must be positive: %d", c.StartingChips)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("max rounds must not be negative: %d", c.MaxRounds)
	}
	if _, err := bot.New(c.Hero, nil, c.Logger); err != nil {
		return fmt.Errorf("hero: %w", err)
	}
	if c.Opponents != OpponentsMixed {
		if _, err := bot.New(c.Opponents, nil, c.Logger); err != nil {
			return fmt.Errorf("opponents: %w", err)
		}
	}
	return nil
}

// Results aggregates every simulated game
type Results struct {
	Games        int
	Rounds       int
	Showdowns    int // Rounds settled by comparing hands
	WonByDefault int // Rounds won because everyone else folded
	Forfeited    int // Rounds where everyone folded
	SplitPots    int
	ChipsDropped int // Remainders of uneven splits plus forfeited pots

	// Categories counts every hand revealed at showdown; Winning counts the
	// category of each showdown's winning hand.
	Categories map[poker.HandRank]int
	Winning    map[poker.HandRank]int

	Hero *statistics.Statistics // Net chips per game for the tracked seat
}

func newResults() *Results {
	return &Results{
		Categories: make(map[poker.HandRank]int),
		Winning:    make(map[poker.HandRank]int),
		Hero:       &statistics.Statistics{},
	}
}

func (r *Results) add(t *tally) {
	r.Games++
	r.Rounds += t.rounds
	r.Showdowns += t.showdowns
	r.WonByDefault += t.byDefault
	r.Forfeited += t.forfeited
	r.SplitPots += t.splits
	r.ChipsDropped += t.dropped
	for rank, n := range t.categories {
		r.Categories[rank] += n
	}
	for rank, n := range t.winning {
		r.Winning[rank] += n
	}
	r.Hero.Add(t.record)
}

// Run plays cfg.Games games on cfg.Workers goroutines. Game i is seeded with
// randutil.Derive(cfg.Seed, i), so results do not depend on the worker count.
func Run(ctx context.Context, cfg Config) (*Results, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger.WithPrefix("simulator")
	logger.Info("Starting simulation", "games", cfg.Games, "workers", cfg.Workers, "players", cfg.Players, "seed", cfg.Seed)

	g, ctx := errgroup.WithContext(ctx)
	tallies := make(chan *tally, cfg.Workers)

	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			for i := w; i < cfg.Games; i += cfg.Workers {
				t, err := playGame(ctx, cfg, i)
				if err != nil {
					return fmt.Errorf("game %d (seed %d): %w", i, randutil.Derive(cfg.Seed, i), err)
				}
				select {
				case tallies <- t:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		defer close(tallies)
		_ = g.Wait()
	}()

	results := newResults()
	for t := range tallies {
		results.add(t)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := results.Hero.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	logger.Info("Simulation complete", "games", results.Games, "rounds", results.Rounds, "dropped", results.ChipsDropped)
	return results, nil
}

// playGame runs one game to completion on the calling goroutine.
func playGame(ctx context.Context, cfg Config, index int) (*tally, error) {
	seed := randutil.Derive(cfg.Seed, index)
	heroSeat := index % cfg.Players
	logger := cfg.Logger.With("game", index)

	players := make([]*game.Player, cfg.Players)
	router := &game.Router{ByName: make(map[string]game.Sources, cfg.Players)}
	for seat := range players {
		name, strategy := fmt.Sprintf("Bot%d", seat+1), opponentStrategy(cfg.Opponents, seat)
		if seat == heroSeat {
			name, strategy = heroName, cfg.Hero
		}
		b, err := bot.New(strategy, randutil.New(randutil.Derive(seed, seat+1)), logger)
		if err != nil {
			return nil, err
		}
		players[seat] = game.NewPlayer(name, cfg.StartingChips)
		router.ByName[name] = bot.Sources(b)
	}

	var indices game.IndexSource = router
	discards := min(game.SafeDiscards(cfg.Players), bot.MaxDiscards)
	if discards == 0 {
		indices = game.IndexSourceFunc(func(context.Context, game.PlayerState) ([]int, error) {
			return nil, nil
		})
	}

	t := newTally(heroName)
	bus := game.NewEventBus()
	bus.Subscribe(t)
	rc := game.NewRoundController(randutil.New(seed), logger,
		game.WithEventBus(bus),
		game.WithKickerTieBreak(cfg.KickerTieBreak),
		game.WithMaxDiscards(discards),
	)

	g := game.NewGame(rc, players, game.Sources{Actions: router, Indices: indices}, logger,
		game.WithMaxRounds(cfg.MaxRounds))
	result, err := g.Run(ctx)
	if err != nil {
		return nil, err
	}

	t.rounds = result.Rounds
	t.record.Seed = seed
	t.record.Seat = heroSeat + 1
	t.record.Rounds = result.Rounds
	t.record.Busted = true
	t.record.NetChips = -cfg.StartingChips
	for _, p := range result.Standings {
		if p.Name == heroName {
			t.record.Busted = false
			t.record.NetChips = p.Chips - cfg.StartingChips
		}
	}
	if t.dropped != result.Dropped {
		return nil, fmt.Errorf("dropped chips disagree: events %d, standings %d", t.dropped, result.Dropped)
	}
	return t, nil
}

func opponentStrategy(opponents string, seat int) string {
	if opponents == OpponentsMixed {
		return bot.Strategies[seat%len(bot.Strategies)]
	}
	return opponents
}
