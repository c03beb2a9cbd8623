package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Place   PlaceCmd         `cmd:"" help:"Print a player's ship placements"`
	Shots   ShotsCmd         `cmd:"" help:"Print a sequence of shots from a player"`
	Check   CheckCmd         `cmd:"" help:"Probe a player and verify its shots stay on the board"`
	Players PlayersCmd       `cmd:"" help:"List available players"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("battlebots"),
		kong.Description("Battleship players for the game host"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
