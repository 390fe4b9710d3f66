package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/randutil"
	"github.com/lox/hangman/internal/session"
	"github.com/lox/hangman/internal/words"
	"github.com/rs/zerolog"
)

// Server hosts independent single-player sessions over WebSocket. Every
// connection gets its own session and word stream; nothing is shared
// between players.
type Server struct {
	logger   zerolog.Logger
	upgrader websocket.Upgrader
	clock    quartz.Clock
	seed     int64
	category string
	words    []string

	mu          sync.Mutex
	connections map[*Connection]struct{}
	accepted    int
	closed      session.Tally
	httpServer  *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithWords sets the word list every session draws from.
func WithWords(category string, list []string) Option {
	return func(s *Server) {
		s.category = category
		s.words = list
	}
}

// WithClock sets the clock used for pings and round timing.
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) { s.clock = clock }
}

// NewServer creates a server. seed makes the n-th connection's word stream
// reproducible.
func NewServer(logger zerolog.Logger, seed int64, opts ...Option) (*Server, error) {
	s := &Server{
		logger: logger.With().Str("component", "server").Logger(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		clock:       quartz.NewReal(),
		seed:        seed,
		category:    game.DefaultCategory,
		words:       words.DefaultWords,
		connections: make(map[*Connection]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := words.Validate(s.words); err != nil {
		return nil, fmt.Errorf("invalid word list: %w", err)
	}
	return s, nil
}

// Handler returns the HTTP routes: /ws, /health and /stats.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/stats", s.handleStats)
	return mux
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.logger.Info().Str("addr", addr).Msg("Starting WebSocket server")
	return srv.ListenAndServe()
}

// Shutdown stops accepting connections and closes the open ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	conns := make([]*Connection, 0, len(s.connections))
	for c := range s.connections {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	var err error
	if srv != nil {
		err = srv.Shutdown(ctx)
	}
	for _, c := range conns {
		_ = c.Close() // Ignore close errors during shutdown
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// newSession builds the session for the n-th accepted connection.
func (s *Server) newSession(n int) (*session.Session, error) {
	rng := randutil.New(randutil.Derive(s.seed, n))
	list, err := words.NewList(s.category, s.words, rng)
	if err != nil {
		return nil, err
	}
	return session.New(list, rng,
		session.WithClock(s.clock),
		session.WithLogger(s.logger),
	), nil
}

// handleWebSocket handles WebSocket upgrade requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to upgrade connection")
		return
	}

	s.mu.Lock()
	n := s.accepted
	s.accepted++
	s.mu.Unlock()

	sess, err := s.newSession(n)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create session")
		_ = conn.Close()
		return
	}

	client := NewConnection(conn, sess, s.clock, s.logger)
	s.register(client)
	client.Start()

	go func() {
		<-client.Done()
		s.unregister(client)
	}()
}

func (s *Server) register(c *Connection) {
	s.mu.Lock()
	s.connections[c] = struct{}{}
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info().Str("session", c.session.ID()).Int("total", total).Msg("Client connected")
}

func (s *Server) unregister(c *Connection) {
	t := c.Tally()
	s.mu.Lock()
	if _, ok := s.connections[c]; ok {
		delete(s.connections, c)
		s.closed.Rounds += t.Rounds
		s.closed.Wins += t.Wins
		s.closed.Losses += t.Losses
	}
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info().
		Str("session", c.session.ID()).
		Int("rounds", t.Rounds).
		Int("total", total).
		Msg("Client disconnected")
}

// Stats summarises live and closed sessions.
type Stats struct {
	Connected int
	Sessions  int
	Tally     session.Tally
}

// Stats returns current server statistics.
func (s *Server) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		Connected: len(s.connections),
		Sessions:  s.accepted,
		Tally:     s.closed,
	}
	for c := range s.connections {
		t := c.Tally()
		st.Tally.Rounds += t.Rounds
		st.Tally.Wins += t.Wins
		st.Tally.Losses += t.Losses
	}
	return st
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK") // Ignore write errors for health check
}

// handleStats reports session counts as plain text
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st := s.Stats()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprintf(w, "Connected players: %d\n", st.Connected)
	_, _ = fmt.Fprintf(w, "Sessions started: %d\n", st.Sessions)
	_, _ = fmt.Fprintf(w, "Rounds finished: %d\n", st.Tally.Rounds)
	_, _ = fmt.Fprintf(w, "Wins: %d\n", st.Tally.Wins)
	_, _ = fmt.Fprintf(w, "Losses: %d\n", st.Tally.Losses)
}
