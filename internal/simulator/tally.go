package simulator

import (
	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/statistics"
	"github.com/lox/drawpoker/poker"
)

// tally counts one game's rounds from its event stream. It is only touched
// by the goroutine playing that game.
type tally struct {
	hero string

	rounds     int
	showdowns  int
	byDefault  int
	forfeited  int
	splits     int
	dropped    int
	categories map[poker.HandRank]int
	winning    map[poker.HandRank]int
	record     statistics.GameRecord
}

func newTally(hero string) *tally {
	return &tally{
		hero:       hero,
		categories: make(map[poker.HandRank]int),
		winning:    make(map[poker.HandRank]int),
	}
}

// OnEvent implements game.EventSubscriber
func (t *tally) OnEvent(event game.GameEvent) {
	e, ok := event.(game.ShowdownEvent)
	if !ok {
		return
	}
	r := e.Result

	switch {
	case r.Forfeited:
		t.forfeited++
		t.dropped += r.Pot
		return
	case r.ByDefault:
		t.byDefault++
		return
	}

	t.showdowns++
	t.dropped += r.Remainder
	if len(r.Winners) > 1 {
		t.splits++
	}
	if _, ok := e.Hands[t.hero]; ok {
		t.record.Showdowns++
	}
	for _, hand := range e.Hands {
		if rank, err := poker.Evaluate(hand); err == nil {
			t.categories[rank]++
		}
	}
	if len(r.Winners) > 0 {
		if rank, err := poker.Evaluate(e.Hands[r.Winners[0].Name]); err == nil {
			t.winning[rank]++
		}
	}
}
