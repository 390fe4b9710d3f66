package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play Hangman in the terminal"`
	Serve    ServeCmd         `cmd:"" help:"Run the Hangman WebSocket server"`
	Client   ClientCmd        `cmd:"" help:"Play against a Hangman server"`
	Simulate SimulateCmd      `cmd:"" help:"Measure bot strategies over many rounds"`
	Words    WordsCmd         `cmd:"" help:"Validate and print a word list file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hangman"),
		kong.Description("Hangman in the terminal, over the network, or played by bots"),
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
