package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play a board interactively"`
	Generate GenerateCmd      `cmd:"" help:"Generate a board and print it"`
	Simulate SimulateCmd      `cmd:"" help:"Estimate how many calls a pool takes to win"`
	Pool     PoolCmd          `cmd:"" help:"Create, inspect and edit pool files"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("buzzbingo"),
		kong.Description("Bingo boards dealt from your own labels"),
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
