package game

import (
	"context"
	"errors"
	"io"
	rand "math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
)

var errScriptExhausted = errors.New("script exhausted")

// scriptedActions replays decisions per player and records who was asked.
type scriptedActions struct {
	script map[string][]Decision
	asked  []string
}

func newScriptedActions(script map[string][]Decision) *scriptedActions {
	return &scriptedActions{script: script}
}

func (s *scriptedActions) NextAction(_ context.Context, player PlayerState, _ int) (Decision, error) {
	s.asked = append(s.asked, player.Name)
	queue := s.script[player.Name]
	if len(queue) == 0 {
		return Decision{}, errScriptExhausted
	}
	s.script[player.Name] = queue[1:]
	return queue[0], nil
}

// keepAll never replaces a card.
var keepAll = IndexSourceFunc(func(context.Context, PlayerState) ([]int, error) {
	return []int{0}, nil
})

// stackedDeck deals cards in the order given.
type stackedDeck struct {
	cards []poker.Card
	drawn int
}

func newStackedDeck(hands ...string) *stackedDeck {
	d := &stackedDeck{}
	for _, h := range hands {
		d.cards = append(d.cards, poker.MustParseCards(h)...)
	}
	return d
}

func (d *stackedDeck) Draw() (poker.Card, error) {
	if len(d.cards) == 0 {
		return poker.Card{}, poker.ErrDeckExhausted
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	d.drawn++
	return c, nil
}

// eventRecorder collects published events.
type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) OnEvent(e GameEvent) { r.events = append(r.events, e) }

func (r *eventRecorder) ofType(et EventType) []GameEvent {
	var out []GameEvent
	for _, e := range r.events {
		if e.EventType() == et {
			out = append(out, e)
		}
	}
	return out
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestController(t *testing.T, opts ...Option) (*RoundController, *eventRecorder) {
	t.Helper()
	rec := &eventRecorder{}
	bus := NewEventBus()
	bus.Subscribe(rec)
	opts = append([]Option{WithEventBus(bus)}, opts...)
	return NewRoundController(randutil.New(42), testLogger(), opts...), rec
}

func stackedDecks(hands ...string) Option {
	return WithDeckFactory(func(*rand.Rand) CardSource {
		return newStackedDeck(hands...)
	})
}

func dealt(name string, chips int, hand string) *Player {
	p := NewPlayer(name, chips)
	p.Hand = poker.MustParseCards(hand)
	return p
}

func bet(n int) Decision { return Decision{Action: Bet, Amount: n} }

var (
	call  = Decision{Action: Call}
	check = Decision{Action: Check}
	fold  = Decision{Action: Fold}
)
