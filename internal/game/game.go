package game

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/poker"
)

// DefaultStartingChips is the stack each player gets unless configured.
const DefaultStartingChips = 100

// SafeDiscards returns how many cards each of n players can replace without
// exhausting a single deck, even if nobody folds.
func SafeDiscards(n int) int {
	if n <= 0 {
		return 0
	}
	spare := poker.DeckSize - n*poker.HandSize
	if spare <= 0 {
		return 0
	}
	return min(spare/n, poker.HandSize)
}

// GameResult contains the outcome of a finished game
type GameResult struct {
	Rounds     int
	Standings  []PlayerState // Players still seated, in seat order
	Eliminated []string      // In elimination order
	Dropped    int           // Chips lost to uneven splits and forfeited pots
}

// Game plays rounds until fewer than two players have chips, the Continuer
// declines, or MaxRounds is reached.
type Game struct {
	controller *RoundController
	players    []*Player
	sources    Sources
	continuer  Continuer
	logger     *log.Logger
	maxRounds  int
}

// GameOption configures a Game
type GameOption func(*Game)

// WithContinuer asks c between rounds whether to keep playing. Without one,
// play continues until a single player is left.
func WithContinuer(c Continuer) GameOption {
	return func(g *Game) { g.continuer = c }
}

// WithMaxRounds stops the game after n rounds. Zero means unlimited.
func WithMaxRounds(n int) GameOption {
	return func(g *Game) { g.maxRounds = n }
}

// NewGame creates a game over players in seat order.
func NewGame(controller *RoundController, players []*Player, sources Sources, logger *log.Logger, opts ...GameOption) *Game {
	g := &Game{
		controller: controller,
		players:    players,
		sources:    sources,
		logger:     logger.WithPrefix("game"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Players returns the players still seated.
func (g *Game) Players() []*Player {
	return g.players
}

// Run plays the game to completion.
func (g *Game) Run(ctx context.Context) (*GameResult, error) {
	result := &GameResult{}

	seated := make([]*Player, 0, len(g.players))
	for _, p := range g.players {
		if p.Chips > 0 {
			seated = append(seated, p)
		} else {
			result.Eliminated = append(result.Eliminated, p.Name)
		}
	}
	g.players = seated

	if len(g.players) < 2 {
		return nil, fmt.Errorf("%w: %d with chips", ErrNotEnoughPlayers, len(g.players))
	}

	startingTotal := totalChips(g.players)
	g.logger.Info("Starting game", "players", len(g.players), "chips", startingTotal)

	for len(g.players) >= 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		round, err := g.controller.PlayRound(ctx, g.players, g.sources)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", result.Rounds+1, err)
		}
		result.Rounds++
		g.players = round.Survivors
		for _, p := range round.Eliminated {
			result.Eliminated = append(result.Eliminated, p.Name)
		}

		if g.maxRounds > 0 && result.Rounds >= g.maxRounds {
			g.logger.Debug("Round limit reached", "rounds", result.Rounds)
			break
		}

		if len(g.players) >= 2 && g.continuer != nil {
			more, err := g.continuer.PlayAnother(ctx, states(g.players))
			if err != nil {
				return nil, fmt.Errorf("asking to continue: %w", err)
			}
			if !more {
				g.logger.Info("Operator ended the game", "rounds", result.Rounds)
				break
			}
		}
	}

	result.Standings = states(g.players)
	result.Dropped = startingTotal - totalChips(g.players)
	g.logger.Info("Game over", "rounds", result.Rounds, "remaining", len(g.players), "dropped", result.Dropped)
	return result, nil
}

func totalChips(players []*Player) int {
	total := 0
	for _, p := range players {
		total += p.Chips
	}
	return total
}
