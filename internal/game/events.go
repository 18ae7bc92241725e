package game

import (
	"time"

	"github.com/lox/drawpoker/poker"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeRoundStart       EventType = "round_start"
	EventTypePhaseChange      EventType = "phase_change"
	EventTypePlayerAction     EventType = "player_action"
	EventTypeActionRejected   EventType = "action_rejected"
	EventTypeCardsReplaced    EventType = "cards_replaced"
	EventTypeShowdown         EventType = "showdown"
	EventTypePlayerEliminated EventType = "player_eliminated"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published once hands have been dealt.
type RoundStartEvent struct {
	RoundID   string
	Number    int
	Players   []PlayerState
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// PhaseChangeEvent is published when the round moves to a new phase.
type PhaseChangeEvent struct {
	RoundID   string
	Phase     Phase
	Pot       int
	timestamp time.Time
}

func (e PhaseChangeEvent) EventType() EventType { return EventTypePhaseChange }
func (e PhaseChangeEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent is published when a player's action has been applied.
type PlayerActionEvent struct {
	Player    PlayerState // State after the action
	Action    Action
	Amount    int // Chips moved into the pot
	HighBet   int // Table high bet after the action
	Phase     Phase
	Reasoning string
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// ActionRejectedEvent is published when a decision is refused and the same
// player must choose again.
type ActionRejectedEvent struct {
	Player    PlayerState
	Decision  Decision
	Err       error
	timestamp time.Time
}

func (e ActionRejectedEvent) EventType() EventType { return EventTypeActionRejected }
func (e ActionRejectedEvent) Timestamp() time.Time { return e.timestamp }

// CardsReplacedEvent is published after a player's replacement turn.
type CardsReplacedEvent struct {
	Player    PlayerState // Holds the new hand
	Replaced  int
	timestamp time.Time
}

func (e CardsReplacedEvent) EventType() EventType { return EventTypeCardsReplaced }
func (e CardsReplacedEvent) Timestamp() time.Time { return e.timestamp }

// ShowdownEvent is published after the pot has been paid out.
type ShowdownEvent struct {
	RoundID   string
	Result    ShowdownResult
	Hands     map[string][]poker.Card // Revealed hands of non-folded players
	timestamp time.Time
}

func (e ShowdownEvent) EventType() EventType { return EventTypeShowdown }
func (e ShowdownEvent) Timestamp() time.Time { return e.timestamp }

// PlayerEliminatedEvent is published when a player leaves the table with no
// chips.
type PlayerEliminatedEvent struct {
	Name      string
	timestamp time.Time
}

func (e PlayerEliminatedEvent) EventType() EventType { return EventTypePlayerEliminated }
func (e PlayerEliminatedEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber.
type EventSubscriberFunc func(event GameEvent)

func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus. Subscribers run on
// the game goroutine in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
