package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/hangman/cmd/hangman/shared"
	"github.com/lox/hangman/internal/client"
	"github.com/lox/hangman/internal/tui"
)

// ClientCmd plays against a remote server
type ClientCmd struct {
	Server  string `kong:"help='WebSocket server URL (overrides the config file)'"`
	Config  string `kong:"default='hangman-client.hcl',help='HCL client config file (missing file means defaults)'"`
	LogFile string `kong:"help='Log file (overrides the config file)'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *ClientCmd) Run() error {
	cfg, err := client.LoadClientConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Server != "" {
		cfg.Server.URL = c.Server
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if c.Debug {
		cfg.UI.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logs, err := shared.SetupFileLoggers(cfg.UI.LogFile, c.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logs.Close() }()
	if lvl, err := log.ParseLevel(cfg.UI.LogLevel); err == nil {
		logs.Charm.SetLevel(lvl)
	}

	logs.Charm.Info("Starting Hangman client", "server", cfg.Server.URL, "config", c.Config)

	ctx, stop := shared.SignalContext(logs.Zero)
	defer stop()

	wsClient := client.NewClient(cfg.Server.URL, logs.Charm)
	wsClient.SetRequestTimeout(cfg.RequestTimeout())

	dialCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()
	if err := wsClient.Connect(dialCtx); err != nil {
		return err
	}
	defer func() { _ = wsClient.Close() }()

	return tui.Run(ctx, wsClient, logs.Charm)
}
