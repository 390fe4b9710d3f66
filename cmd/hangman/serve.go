package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lox/hangman/cmd/hangman/shared"
	"github.com/lox/hangman/internal/randutil"
	"github.com/lox/hangman/internal/server"
)

// ServeCmd runs the WebSocket server
type ServeCmd struct {
	Addr   string `kong:"help='Server address (overrides the config file)'"`
	Config string `kong:"default='hangman.hcl',help='HCL server config file (missing file means defaults)'"`
	Words  string `kong:"type='existingfile',help='HCL word list file (overrides the config file)'"`
	Seed   *int64 `kong:"help='Deterministic RNG seed for the server (optional)'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *ServeCmd) Run() error {
	cfg, err := server.LoadFileConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Words != "" {
		cfg.Words = &server.WordSettings{File: c.Words}
	}
	if c.Seed != nil {
		cfg.Server.Seed = c.Seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := shared.SetupLevelLogger(cfg.Server.LogLevel, c.Debug)
	if err != nil {
		return err
	}

	addr := cfg.Address()
	if c.Addr != "" {
		addr = c.Addr
	}

	seed, _ := randutil.Resolve(cfg.Server.Seed)
	if cfg.Server.Seed != nil {
		logger.Info().Int64("seed", seed).Msg("Using deterministic seed")
	} else {
		logger.Info().Int64("seed", seed).Msg("Using random seed")
	}

	category, list, err := cfg.WordList()
	if err != nil {
		return err
	}

	s, err := server.NewServer(logger, seed, server.WithWords(category, list))
	if err != nil {
		return err
	}

	logger.Info().
		Str("address", addr).
		Str("category", category).
		Int("words", len(list)).
		Msg("Starting Hangman server")

	// Setup graceful shutdown
	ctx, stop := shared.SignalContext(logger)
	defer stop()

	// Start server in background
	serverErr := make(chan error, 1)
	go func() {
		if err := s.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for shutdown or error
	select {
	case <-ctx.Done():
		logger.Info().Msg("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
