package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/hangman/cmd/hangman/shared"
	"github.com/lox/hangman/internal/randutil"
	"github.com/lox/hangman/internal/simulator"
	"github.com/lox/hangman/internal/words"
)

// SimulateCmd plays many bot rounds and reports how a strategy does
type SimulateCmd struct {
	Rounds   int           `kong:"default='10000',help='Number of rounds to simulate'"`
	Strategy string        `kong:"default='frequency',enum='frequency,random,dictionary',help='Bot strategy: frequency, random, dictionary'"`
	Hints    bool          `kong:"help='Let the bot take hints'"`
	Workers  int           `kong:"default='0',help='Parallel workers (0 means one per CPU)'"`
	Seed     *int64        `kong:"help='Deterministic RNG seed (optional)'"`
	Words    string        `kong:"type='existingfile',help='HCL word list file (defaults to the built-in list)'"`
	Report   string        `kong:"help='Write a TOML report to this file'"`
	Timeout  time.Duration `kong:"default='5m',help='Give up after this long'"`
	Verbose  bool          `kong:"short='V',help='Verbose logging'"`
}

func (c *SimulateCmd) Run() error {
	return c.run(os.Stdout, os.Stderr)
}

func (c *SimulateCmd) run(stdout, stderr io.Writer) error {
	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(stderr, log.Options{Level: level, ReportTimestamp: true})

	seed, rng := randutil.Resolve(c.Seed)
	list, err := words.Open(c.Words, rng)
	if err != nil {
		return err
	}

	cfg := simulator.Config{
		Rounds:   c.Rounds,
		Strategy: c.Strategy,
		Hints:    c.Hints,
		Workers:  c.Workers,
		Seed:     seed,
		Category: list.Category(),
		Words:    list.Words(),
		Timeout:  c.Timeout,
		Logger:   logger,
	}
	sim, err := simulator.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := shared.SignalContext(shared.SetupLogger(c.Verbose))
	defer stop()

	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	simulator.PrintSummary(stdout, stats, c.Strategy)
	fmt.Fprintf(stdout, "\nSeed: %d\n", seed)

	if c.Report != "" {
		report := simulator.NewReport(cfg, stats, time.Now())
		if err := report.WriteFile(c.Report); err != nil {
			return err
		}
		logger.Info("Wrote report", "path", c.Report)
	}
	return nil
}
