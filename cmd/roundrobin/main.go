package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Run      RunCmd           `cmd:"" default:"withargs" help:"Play every ordered pairing of contestants and save win counts (default)"`
	Plot     PlotCmd          `cmd:"" help:"Show the win-rate heatmap for saved tournament data"`
	Validate ValidateCmd      `cmd:"" help:"Check the tournament config and agent binary"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("roundrobin"),
		kong.Description("Round-robin tournaments between game-playing agent binaries"),
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
