package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play five-card draw at this terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Run bot-only games and report statistics"`
	Eval     EvalCmd          `cmd:"" help:"Classify a five-card hand"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("drawpoker"),
		kong.Description("Five-card draw poker for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
