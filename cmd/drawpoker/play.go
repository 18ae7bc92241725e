package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/drawpoker/internal/bot"
	"github.com/lox/drawpoker/internal/config"
	"github.com/lox/drawpoker/internal/console"
	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/randutil"
)

// botOnlyRounds stops a table with no humans, which nobody can end by
// declining another round.
const botOnlyRounds = 100

type PlayCmd struct {
	Config   string        `short:"c" default:"drawpoker.hcl" type:"path" help:"HCL configuration file"`
	Players  int           `short:"p" help:"Number of human players; replaces the configured seats"`
	Names    []string      `name:"name" help:"Player names in seat order"`
	Chips    int           `help:"Starting chips per player"`
	Seed     *int64        `help:"Shuffle seed for a reproducible game"`
	Timeout  time.Duration `help:"Decision timeout; when it expires the player checks or folds"`
	Kickers  bool          `help:"Break equal-category ties on card values"`
	LogLevel string        `help:"Log level (debug, info, warn, error)"`
	LogFile  string        `type:"path" help:"Log file"`
	NoColor  bool          `help:"Disable colour output"`
	TUI      bool          `name:"tui" help:"Edit answers with an interactive text input"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger, closeLog, err := setupFileLogger(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer closeLog()

	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	ctx, stop := signalContext()
	defer stop()

	var prompter console.Prompter = console.NewLinePrompter(os.Stdin, os.Stdout)
	if c.TUI {
		prompter = console.NewTeaPrompter(os.Stdin, os.Stdout)
	}
	con := console.New(prompter, os.Stdout, logger)

	seed, rng := randutil.Resolve(cfg.Game.Seed)
	logger.Info("Starting game", "seed", seed, "players", len(cfg.Players), "config", c.Config)

	table, err := newTable(cfg, seed, rng, con, quartz.NewReal(), logger)
	if err != nil {
		return err
	}

	fmt.Println(console.HeaderStyle.Render(" ♠ ♥ Five Card Draw ♦ ♣ "))
	result, err := table.Run(ctx)
	switch {
	case errors.Is(err, console.ErrInputClosed), errors.Is(err, context.Canceled):
		fmt.Println("\nGoodbye!")
		return nil
	case err != nil:
		return err
	}

	printStandings(os.Stdout, result)
	fmt.Println(console.InfoStyle.Render(fmt.Sprintf("Replay this game with --seed %d", seed)))
	return nil
}

func (c *PlayCmd) applyOverrides(cfg *config.Config) {
	if c.Chips > 0 {
		cfg.Game.StartingChips = c.Chips
		for i := range cfg.Players {
			cfg.Players[i].Chips = c.Chips
		}
	}
	if c.Players > 0 || len(c.Names) > 0 {
		cfg.SeatPlayers(max(c.Players, len(c.Names)), c.Names)
	}
	if c.Seed != nil {
		cfg.Game.Seed = c.Seed
	}
	if c.Timeout > 0 {
		cfg.Game.DecisionTimeoutMs = int(c.Timeout / time.Millisecond)
	}
	if c.Kickers {
		cfg.Game.KickerTieBreak = true
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
}

// newTable seats the configured players. Humans share the console; bots get
// their own random streams derived from seed.
func newTable(cfg *config.Config, seed int64, rng *rand.Rand, con *console.Console, clock quartz.Clock, logger *log.Logger) (*game.Game, error) {
	var human game.Sources = con.Sources()
	if timeout := cfg.DecisionTimeout(); timeout > 0 {
		human.Actions = game.NewTimedActionSource(con, timeout, clock, logger)
	}

	players := make([]*game.Player, len(cfg.Players))
	router := &game.Router{Default: human, ByName: make(map[string]game.Sources)}
	for seat, pc := range cfg.Players {
		players[seat] = game.NewPlayer(pc.Name, pc.Chips)
		if pc.Strategy == config.StrategyHuman {
			continue
		}
		b, err := bot.New(pc.Strategy, randutil.New(randutil.Derive(seed, seat)), logger)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", pc.Name, err)
		}
		router.ByName[pc.Name] = bot.Sources(b)
	}

	safe := game.SafeDiscards(len(players))
	if cfg.Game.MaxDiscards == 0 || cfg.Game.MaxDiscards > safe {
		logger.Warn("Heavy redraws can exhaust the deck", "players", len(players), "max_discards", cfg.Game.MaxDiscards, "safe", safe)
	}

	bus := game.NewEventBus()
	bus.Subscribe(con)
	rc := game.NewRoundController(rng, logger,
		game.WithEventBus(bus),
		game.WithClock(clock),
		game.WithKickerTieBreak(cfg.Game.KickerTieBreak),
		game.WithMaxDiscards(cfg.Game.MaxDiscards),
	)

	opts := []game.GameOption{game.WithMaxRounds(botOnlyRounds)}
	if cfg.HasHumans() {
		opts = []game.GameOption{game.WithContinuer(con)}
	}
	return game.NewGame(rc, players, game.Sources{Actions: router, Indices: router}, logger, opts...), nil
}

func printStandings(w io.Writer, result *game.GameResult) {
	fmt.Fprintf(w, "\n%s\n", console.HeaderStyle.Render("Final standings"))
	fmt.Fprintf(w, "Rounds played: %d\n", result.Rounds)
	for _, p := range result.Standings {
		fmt.Fprintf(w, "  %-12s %d chips\n", p.Name, p.Chips)
	}
	for _, name := range result.Eliminated {
		fmt.Fprintf(w, "  %-12s eliminated\n", name)
	}
	if len(result.Standings) == 1 {
		fmt.Fprintln(w, console.SuccessStyle.Render(result.Standings[0].Name+" wins the game!"))
	}
	if result.Dropped > 0 {
		fmt.Fprintf(w, "%d chips were lost to uneven splits and forfeited pots.\n", result.Dropped)
	}
}
