// Package console lets people play at a shared terminal. A Console answers
// the game's questions through a Prompter and narrates game events.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

const (
	actionPrompt   = "Enter -1 to call, 0 to check, f to fold, or an amount to bet: "
	discardPrompt  = "Cards to replace (e.g. 1 3 5), or 0 to keep your hand: "
	continuePrompt = "Play another round? (y/n): "
)

// Console is the human side of the table. It implements game.ActionSource,
// game.IndexSource, game.Continuer and game.EventSubscriber.
type Console struct {
	prompter Prompter
	out      io.Writer
	logger   *log.Logger
}

// New creates a console that asks questions with prompter and writes
// narration to out.
func New(prompter Prompter, out io.Writer, logger *log.Logger) *Console {
	return &Console{
		prompter: prompter,
		out:      out,
		logger:   logger.WithPrefix("console"),
	}
}

// Sources returns the console as the collaborators a round needs.
func (c *Console) Sources() game.Sources {
	return game.Sources{Actions: c, Indices: c}
}

// NextAction implements game.ActionSource. Unparseable input is returned as
// game.ErrUnknownAction so the round asks again.
func (c *Console) NextAction(ctx context.Context, player game.PlayerState, highBet int) (game.Decision, error) {
	c.printf("\n%s\n", HeaderStyle.Render(player.Name+"'s turn"))
	c.showHand(player.Hand)
	c.printf("%s\n", HandInfoStyle.Render(fmt.Sprintf(
		"Chips: %d  Your bet: %d  Table bet: %d  To call: %d",
		player.Chips, player.CurrentBet, highBet, player.ToCall(highBet))))

	line, err := c.prompter.Ask(ctx, actionPrompt)
	if err != nil {
		return game.Decision{}, err
	}
	d, err := ParseAction(line)
	if err != nil {
		c.logger.Debug("Unparseable action", "player", player.Name, "input", line)
		return game.Decision{}, err
	}
	return d, nil
}

// NextIndices implements game.IndexSource. It keeps asking until the answer
// is a list of numbers.
func (c *Console) NextIndices(ctx context.Context, player game.PlayerState) ([]int, error) {
	c.printf("\n%s\n", HeaderStyle.Render(player.Name+", choose cards to replace"))
	c.showHand(player.Hand)

	for {
		line, err := c.prompter.Ask(ctx, discardPrompt)
		if err != nil {
			return nil, err
		}
		indices, err := ParseIndices(line)
		if err == nil {
			return indices, nil
		}
		c.printf("%s\n", ErrorStyle.Render("Please enter card positions as numbers."))
	}
}

// PlayAnother implements game.Continuer
func (c *Console) PlayAnother(ctx context.Context, players []game.PlayerState) (bool, error) {
	c.printf("\n%s\n", HeaderStyle.Render("Standings"))
	for _, p := range players {
		c.printf("  %-12s %d chips\n", p.Name, p.Chips)
	}

	for {
		line, err := c.prompter.Ask(ctx, continuePrompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no", "q", "quit":
			return false, nil
		}
	}
}

// OnEvent implements game.EventSubscriber
func (c *Console) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundStartEvent:
		c.printf("\n%s\n", HeaderStyle.Render(fmt.Sprintf(" ♠ ♥ Round %d ♦ ♣ ", e.Number)))
		for _, p := range e.Players {
			c.printf("  %-12s %d chips\n", p.Name, p.Chips)
		}

	case game.PhaseChangeEvent:
		switch e.Phase {
		case game.Replacement:
			c.printf("\n%s\n", InfoStyle.Render(fmt.Sprintf("Draw. Pot is %d.", e.Pot)))
		case game.SecondBetting:
			c.printf("\n%s\n", InfoStyle.Render(fmt.Sprintf("Second betting round. Pot is %d.", e.Pot)))
		}

	case game.PlayerActionEvent:
		c.printf("%s\n", ActionsStyle.Render(describeAction(e)))

	case game.ActionRejectedEvent:
		c.printf("%s\n", ErrorStyle.Render(describeRejection(e)))

	case game.CardsReplacedEvent:
		c.printf("%s\n", InfoStyle.Render(fmt.Sprintf("%s replaced %d %s.", e.Player.Name, e.Replaced, plural(e.Replaced, "card"))))

	case game.ShowdownEvent:
		c.showShowdown(e)

	case game.PlayerEliminatedEvent:
		c.printf("%s\n", WarningStyle.Render(e.Name+" has run out of chips and leaves the table."))
	}
}

func (c *Console) showHand(hand []poker.Card) {
	for i, card := range hand {
		c.printf("  %d: %s  %s\n", i+1, RenderCard(card), InfoStyle.Render(card.String()))
	}
	if rank, err := poker.Evaluate(hand); err == nil {
		c.printf("  %s\n", HandInfoStyle.Render(rank.String()))
	}
}

func (c *Console) showShowdown(e game.ShowdownEvent) {
	r := e.Result
	c.printf("\n%s\n", HeaderStyle.Render("Showdown"))

	switch {
	case r.Forfeited:
		c.printf("%s\n", WarningStyle.Render(fmt.Sprintf("Everyone folded. The pot of %d is lost.", r.Pot)))
		return
	case r.ByDefault:
		c.printf("%s\n", SuccessStyle.Render(fmt.Sprintf("%s wins %d; everyone else folded.", r.Winners[0].Name, r.Pot)))
		return
	}

	for _, name := range slices.Sorted(maps.Keys(e.Hands)) {
		c.printf("  %-12s %s  %s\n", name, RenderCards(e.Hands[name]), HandInfoStyle.Render(r.HandNames[name]))
	}

	if len(r.Winners) == 1 {
		w := r.Winners[0]
		c.printf("%s\n", SuccessStyle.Render(fmt.Sprintf("%s wins %d with %s!", w.Name, r.AmountEach, r.HandNames[w.Name])))
		return
	}

	names := make([]string, len(r.Winners))
	for i, w := range r.Winners {
		names[i] = w.Name
	}
	msg := fmt.Sprintf("Split pot: %s each win %d.", strings.Join(names, ", "), r.AmountEach)
	if r.Remainder > 0 {
		msg += fmt.Sprintf(" %d %s left over.", r.Remainder, plural(r.Remainder, "chip"))
	}
	c.printf("%s\n", SuccessStyle.Render(msg))
}

func (c *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		c.logger.Warn("Failed to write to console", "error", err)
	}
}

func describeAction(e game.PlayerActionEvent) string {
	name := e.Player.Name
	switch e.Action {
	case game.Check:
		return name + " checks."
	case game.Call:
		return fmt.Sprintf("%s calls %d.", name, e.Amount)
	case game.Bet:
		if e.Player.Chips == 0 {
			return fmt.Sprintf("%s bets %d and is all in.", name, e.Amount)
		}
		return fmt.Sprintf("%s bets %d. Table bet is now %d.", name, e.Amount, e.HighBet)
	case game.Fold:
		return name + " folds."
	default:
		return fmt.Sprintf("%s: %s", name, e.Action)
	}
}

func describeRejection(e game.ActionRejectedEvent) string {
	switch {
	case errors.Is(e.Err, game.ErrInsufficientChips):
		return "Not enough chips!"
	case errors.Is(e.Err, game.ErrInvalidCheck):
		return "You must at least call the current bet to stay in the round."
	default:
		return "Unrecognised action, try again."
	}
}

// ParseAction converts console input into a decision: -1 or "call" calls,
// 0 or "check" checks, "f" or "fold" folds and a positive number bets that
// many chips.
func ParseAction(s string) (game.Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "fold":
		return game.Decision{Action: game.Fold}, nil
	case "c", "call":
		return game.Decision{Action: game.Call}, nil
	case "k", "check":
		return game.Decision{Action: game.Check}, nil
	}

	code, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return game.Decision{}, fmt.Errorf("%w: %q", game.ErrUnknownAction, s)
	}
	return game.DecisionFromCode(code)
}

// ParseIndices parses whitespace or comma separated card positions. Empty
// input keeps the hand.
func ParseIndices(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid card position %q: %w", f, err)
		}
		indices = append(indices, n)
	}
	return indices, nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
