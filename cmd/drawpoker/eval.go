package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/drawpoker/internal/console"
	"github.com/lox/drawpoker/poker"
)

type EvalCmd struct {
	Cards []string `arg:"" help:"Five cards such as As Ks Qs Js Ts"`
}

func (e *EvalCmd) Run() error {
	return e.run(os.Stdout)
}

func (e *EvalCmd) run(w io.Writer) error {
	hand, err := poker.ParseCards(strings.Join(e.Cards, " "))
	if err != nil {
		return err
	}
	rank, err := poker.Evaluate(hand)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s  %s\n", console.RenderCards(hand), console.HandInfoStyle.Render(rank.String()))
	return err
}
