package main

import (
	"github.com/lox/hangman/cmd/hangman/shared"
	"github.com/lox/hangman/internal/randutil"
	"github.com/lox/hangman/internal/session"
	"github.com/lox/hangman/internal/tui"
	"github.com/lox/hangman/internal/words"
)

// PlayCmd runs a local game in the terminal
type PlayCmd struct {
	Seed    *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Words   string `kong:"type='existingfile',help='HCL word list file (defaults to the built-in list)'"`
	LogFile string `kong:"default='hangman.log',help='Log file (the terminal belongs to the game)'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	logs, err := shared.SetupFileLoggers(c.LogFile, c.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logs.Close() }()

	seed, rng := randutil.Resolve(c.Seed)
	logs.Zero.Info().Int64("seed", seed).Msg("Starting local game")

	list, err := words.Open(c.Words, rng)
	if err != nil {
		return err
	}

	sess := session.New(list, rng, session.WithLogger(logs.Zero))

	ctx, stop := shared.SignalContext(logs.Zero)
	defer stop()

	err = tui.Run(ctx, session.Local{S: sess}, logs.Charm)

	t := sess.Tally()
	logs.Zero.Info().
		Int("rounds", t.Rounds).
		Int("wins", t.Wins).
		Int("losses", t.Losses).
		Msg("Game closed")
	return err
}
