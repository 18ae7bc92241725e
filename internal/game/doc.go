// Package game implements five-card draw: players, betting, card
// replacement, showdown and the round state machine that sequences them.
//
// # Basic Usage
//
// A RoundController plays one round over a set of players. Decisions come
// from injected collaborators, so the package performs no I/O:
//
//	rc := game.NewRoundController(randutil.New(42), logger)
//	players := []*game.Player{game.NewPlayer("Alice", 100), game.NewPlayer("Bob", 100)}
//	result, err := rc.PlayRound(ctx, players, game.Sources{Actions: agent, Indices: agent})
//
// Game wraps the controller in the outer loop, removing busted players and
// asking a Continuer whether to deal again.
//
// # Deterministic Testing
//
// Every round creates a fresh deck from the controller's *rand.Rand, so a
// fixed seed replays the same deals. Tests can go further and hand
// Player.DrawHand a stacked CardSource.
//
// # Architecture
//
// Round phases run strictly in order:
//
//	Dealing -> Betting1 -> Replacement -> Betting2 -> Showdown -> RoundEnd
//
// Betting uses a turn cursor that can replay the current seat, which is how
// rejected actions (insufficient chips, checking while facing a bet) are
// re-solicited from the same player without advancing the turn.
package game
