// Package session owns the current Hangman round for one player and applies
// their actions to it.
package session

import (
	"context"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/words"
	"github.com/rs/zerolog"
)

// Tally counts finished rounds for the life of the session. It is never
// written anywhere.
type Tally struct {
	Rounds int
	Wins   int
	Losses int
}

// Update is what a renderer receives after every action.
type Update struct {
	game.View
	Tally Tally
}

// Session holds one player's current round. It is driven by a single input
// loop and is not safe for concurrent use.
type Session struct {
	id     string
	source words.Source
	rng    game.Rand
	clock  quartz.Clock
	logger zerolog.Logger

	state   game.State
	last    game.Outcome
	started time.Time
	tally   Tally
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used to time rounds.
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// WithLogger sets the logger. The session adds its own id field.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithID overrides the generated session id.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// New creates a session and deals its first round.
func New(source words.Source, rng game.Rand, opts ...Option) *Session {
	s := &Session{
		source: source,
		rng:    rng,
		clock:  quartz.NewReal(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = uuid.Must(uuid.NewV7()).String()
	}
	s.logger = s.logger.With().Str("session", s.id).Logger()

	s.NewGame()
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// State returns the current round snapshot.
func (s *Session) State() game.State { return s.state }

// Tally returns the finished-round counts.
func (s *Session) Tally() Tally { return s.tally }

// Current returns the update for the current round without changing it.
func (s *Session) Current() Update {
	return s.update()
}

// Guess applies a letter selection.
func (s *Session) Guess(letter rune) Update {
	return s.apply(game.Guess{Letter: letter})
}

// Hint applies a hint request. When none is available the returned Outcome
// is game.OutcomeHintUnavailable and the round is unchanged.
func (s *Session) Hint() Update {
	return s.apply(game.Hint{})
}

// NewGame abandons the current round and draws a new word.
func (s *Session) NewGame() Update {
	if s.state.Word() != "" && s.state.Status() == game.InProgress {
		s.logger.Debug().
			Int("incorrect", s.state.Incorrect()).
			Int("hint_stage", s.state.HintStage()).
			Msg("Abandoning round")
	}
	s.started = s.clock.Now()
	return s.apply(game.Reset{Word: s.source.Next(), Category: s.source.Category()})
}

func (s *Session) apply(a game.Action) Update {
	prev := s.state.Status()
	next, outcome := game.Reduce(s.state, a, s.rng)
	s.state, s.last = next, outcome

	s.logger.Debug().
		Str("outcome", outcome.String()).
		Int("incorrect", next.Incorrect()).
		Int("hint_stage", next.HintStage()).
		Str("masked", next.Masked()).
		Msg("Applied action")

	if outcome == game.OutcomeHintUnavailable {
		s.logger.Info().Int("hint_stage", next.HintStage()).Msg("Hint not available")
	}

	if status := next.Status(); !prev.Finished() && status.Finished() {
		s.finish(status)
	}
	return s.update()
}

func (s *Session) finish(status game.Status) {
	s.tally.Rounds++
	if status == game.Won {
		s.tally.Wins++
	} else {
		s.tally.Losses++
	}

	s.logger.Info().
		Str("status", status.String()).
		Str("word", s.state.Word()).
		Int("incorrect", s.state.Incorrect()).
		Int("hints", s.state.HintStage()).
		Dur("duration", s.clock.Since(s.started)).
		Int("wins", s.tally.Wins).
		Int("losses", s.tally.Losses).
		Msg("Round finished")
}

func (s *Session) update() Update {
	return Update{View: s.state.View(s.last), Tally: s.tally}
}

// Local adapts a Session to the context-taking driver interface shared with
// remote clients. Local calls never fail.
type Local struct {
	S *Session
}

func (l Local) Current(context.Context) (Update, error) { return l.S.Current(), nil }
func (l Local) Hint(context.Context) (Update, error)    { return l.S.Hint(), nil }
func (l Local) NewGame(context.Context) (Update, error) { return l.S.NewGame(), nil }

func (l Local) Guess(_ context.Context, letter rune) (Update, error) {
	return l.S.Guess(letter), nil
}
