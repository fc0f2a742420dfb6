package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Generate GenerateCmd      `cmd:"" help:"Generate a board set from a hand profile"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bridgedeal"),
		kong.Description("Constraint-driven duplicate bridge deal generator"),
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
