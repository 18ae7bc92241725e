package game

import (
	"context"
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/drawpoker/poker"
)

// Phase is a step of the round state machine
type Phase int

const (
	Dealing Phase = iota
	FirstBetting
	Replacement
	SecondBetting
	Showdown
	RoundEnd
)

var phaseNames = [...]string{"dealing", "betting-1", "replacement", "betting-2", "showdown", "round-end"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// RoundResult summarises a completed round
type RoundResult struct {
	RoundID    string
	Number     int
	Pot        int
	Showdown   ShowdownResult
	Survivors  []*Player // Players with chips left, in seat order
	Eliminated []*Player
}

// RoundController sequences a round and owns its deck and pot.
type RoundController struct {
	rng            *rand.Rand
	baseLogger     *log.Logger
	logger         *log.Logger
	clock          quartz.Clock
	bus            EventBus
	kickerTieBreak bool
	maxDiscards    int
	newDeck        func(rng *rand.Rand) CardSource

	phase  Phase
	rounds int
}

// Option configures a RoundController
type Option func(*RoundController)

// WithEventBus publishes round events to bus.
func WithEventBus(bus EventBus) Option {
	return func(rc *RoundController) { rc.bus = bus }
}

// WithClock sets the clock used for event timestamps.
func WithClock(clock quartz.Clock) Option {
	return func(rc *RoundController) { rc.clock = clock }
}

// WithKickerTieBreak orders equal categories by card values instead of
// splitting the pot.
func WithKickerTieBreak(enabled bool) Option {
	return func(rc *RoundController) { rc.kickerTieBreak = enabled }
}

// WithMaxDiscards caps how many cards a player may replace. Zero means no
// limit.
func WithMaxDiscards(n int) Option {
	return func(rc *RoundController) { rc.maxDiscards = n }
}

// WithDeckFactory replaces the shuffled deck built for each round, which
// lets tests stack the deck.
func WithDeckFactory(newDeck func(rng *rand.Rand) CardSource) Option {
	return func(rc *RoundController) { rc.newDeck = newDeck }
}

// NewRoundController creates a controller. Each round draws a fresh deck
// shuffled by rng, so a seeded rng makes play reproducible.
func NewRoundController(rng *rand.Rand, logger *log.Logger, opts ...Option) *RoundController {
	rc := &RoundController{
		rng:        rng,
		baseLogger: logger.WithPrefix("round"),
		clock:      quartz.NewReal(),
		bus:        NewEventBus(),
		newDeck: func(rng *rand.Rand) CardSource {
			return poker.NewDeck(rng)
		},
	}
	rc.logger = rc.baseLogger
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// Phase returns the phase the controller is in.
func (rc *RoundController) Phase() Phase {
	return rc.phase
}

// PlayRound deals a fresh deck and runs the round to completion. Players are
// reset afterwards and those without chips are moved to Eliminated.
func (rc *RoundController) PlayRound(ctx context.Context, players []*Player, sources Sources) (*RoundResult, error) {
	if countFunded(players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	rc.rounds++
	result := &RoundResult{RoundID: uuid.NewString(), Number: rc.rounds}
	rc.logger = rc.baseLogger.With("round", result.Number, "round_id", result.RoundID)
	defer func() { rc.logger = rc.baseLogger }()

	rc.enter(Dealing, result)
	deck := rc.newDeck(rc.rng)
	for _, p := range players {
		if err := p.DrawHand(deck); err != nil {
			return nil, err
		}
	}
	rc.logger.Info("Round started", "players", len(players))
	rc.publish(RoundStartEvent{
		RoundID:   result.RoundID,
		Number:    result.Number,
		Players:   states(players),
		timestamp: rc.clock.Now(),
	})

	rc.enter(FirstBetting, result)
	contributed, err := rc.RunBettingRound(ctx, players, sources.Actions)
	result.Pot += contributed
	if err != nil {
		return nil, fmt.Errorf("first betting round: %w", err)
	}

	rc.enter(Replacement, result)
	if err := rc.RunReplacementRound(ctx, players, deck, rc.limitDiscards(sources.Indices)); err != nil {
		return nil, err
	}

	rc.enter(SecondBetting, result)
	contributed, err = rc.RunBettingRound(ctx, players, sources.Actions)
	result.Pot += contributed
	if err != nil {
		return nil, fmt.Errorf("second betting round: %w", err)
	}

	rc.enter(Showdown, result)
	hands := make(map[string][]poker.Card)
	for _, p := range players {
		if !p.Folded {
			hands[p.Name] = p.State().Hand
		}
	}
	showdown, err := rc.Showdown(players, result.Pot)
	if err != nil {
		return nil, err
	}
	result.Showdown = showdown
	rc.publish(ShowdownEvent{
		RoundID:   result.RoundID,
		Result:    showdown,
		Hands:     hands,
		timestamp: rc.clock.Now(),
	})

	rc.enter(RoundEnd, result)
	for _, p := range players {
		p.ResetForNewRound()
		if p.Chips <= 0 {
			result.Eliminated = append(result.Eliminated, p)
			rc.logger.Info("Player eliminated", "player", p.Name)
			rc.publish(PlayerEliminatedEvent{Name: p.Name, timestamp: rc.clock.Now()})
			continue
		}
		result.Survivors = append(result.Survivors, p)
	}
	return result, nil
}

func (rc *RoundController) enter(phase Phase, result *RoundResult) {
	rc.phase = phase
	rc.logger.Debug("Phase change", "phase", phase, "pot", result.Pot)
	rc.publish(PhaseChangeEvent{
		RoundID:   result.RoundID,
		Phase:     phase,
		Pot:       result.Pot,
		timestamp: rc.clock.Now(),
	})
}

func (rc *RoundController) publish(event GameEvent) {
	if rc.bus != nil {
		rc.bus.Publish(event)
	}
}

// limitDiscards wraps source so that at most maxDiscards distinct in-range
// positions reach ReplaceCards.
func (rc *RoundController) limitDiscards(source IndexSource) IndexSource {
	if rc.maxDiscards <= 0 {
		return source
	}
	return IndexSourceFunc(func(ctx context.Context, player PlayerState) ([]int, error) {
		indices, err := source.NextIndices(ctx, player)
		if err != nil {
			return nil, err
		}
		kept := make([]int, 0, rc.maxDiscards)
		seen := make(map[int]bool, len(indices))
		for _, i := range indices {
			if i < 1 || i > len(player.Hand) || seen[i] {
				continue
			}
			seen[i] = true
			if len(kept) == rc.maxDiscards {
				break
			}
			kept = append(kept, i)
		}
		return kept, nil
	})
}

func countFunded(players []*Player) int {
	n := 0
	for _, p := range players {
		if p.Chips > 0 {
			n++
		}
	}
	return n
}

func states(players []*Player) []PlayerState {
	out := make([]PlayerState, len(players))
	for i, p := range players {
		out[i] = p.State()
	}
	return out
}
