package protocol

import (
	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/session"
)

// Message types carried in the "type" key of every frame.
const (
	// Client -> Server
	TypeSync    = "sync"
	TypeGuess   = "guess"
	TypeHint    = "hint"
	TypeNewGame = "new_game"

	// Server -> Client
	TypeState = "state"
	TypeError = "error"
)

// Error codes sent in Error frames.
const (
	CodeBadRequest  = "bad_request"
	CodeUnknownType = "unknown_type"
)

// Message is any frame on the wire. Seq is chosen by the client and echoed
// in the reply so a response can be matched to its request.
type Message interface {
	MessageType() string
	Sequence() uint32
	MarshalMsg(b []byte) ([]byte, error)
	UnmarshalMsg(b []byte) ([]byte, error)
}

// Client -> Server Messages

// Sync asks for the current round without changing it.
type Sync struct {
	Seq uint32
}

// Guess selects a letter. Letter must hold exactly one rune.
type Guess struct {
	Seq    uint32
	Letter string
}

// Hint requests the next hint stage.
type Hint struct {
	Seq uint32
}

// NewGame abandons the current round and deals a new word.
type NewGame struct {
	Seq uint32
}

// Server -> Client Messages

// State is the reply to every request: the round as a renderer sees it.
type State struct {
	Seq       uint32
	Session   string
	Status    int
	Masked    string
	Incorrect int
	HintStage int
	HintText  string
	CanHint   bool
	Letters   []byte // one game.LetterState per letter a-z
	Outcome   int
	Rounds    int
	Wins      int
	Losses    int
}

// Error reports a request the server could not decode.
type Error struct {
	Seq     uint32
	Code    string
	Message string
}

func (m *Sync) MessageType() string    { return TypeSync }
func (m *Guess) MessageType() string   { return TypeGuess }
func (m *Hint) MessageType() string    { return TypeHint }
func (m *NewGame) MessageType() string { return TypeNewGame }
func (m *State) MessageType() string   { return TypeState }
func (m *Error) MessageType() string   { return TypeError }

func (m *Sync) Sequence() uint32    { return m.Seq }
func (m *Guess) Sequence() uint32   { return m.Seq }
func (m *Hint) Sequence() uint32    { return m.Seq }
func (m *NewGame) Sequence() uint32 { return m.Seq }
func (m *State) Sequence() uint32   { return m.Seq }
func (m *Error) Sequence() uint32   { return m.Seq }

// NewState builds the reply frame for an update.
func NewState(seq uint32, sessionID string, u session.Update) *State {
	letters := make([]byte, len(u.Letters))
	for i, l := range u.Letters {
		letters[i] = byte(l)
	}
	return &State{
		Seq:       seq,
		Session:   sessionID,
		Status:    int(u.Status),
		Masked:    u.Masked,
		Incorrect: u.Incorrect,
		HintStage: u.HintStage,
		HintText:  u.HintText,
		CanHint:   u.CanHint,
		Letters:   letters,
		Outcome:   int(u.Outcome),
		Rounds:    u.Tally.Rounds,
		Wins:      u.Tally.Wins,
		Losses:    u.Tally.Losses,
	}
}

// Update converts the frame back into the renderer-facing form.
func (m *State) Update() (session.Update, error) {
	if len(m.Letters) != 26 {
		return session.Update{}, ErrMalformed
	}
	v := game.View{
		Status:    game.Status(m.Status),
		Masked:    m.Masked,
		Incorrect: m.Incorrect,
		HintStage: m.HintStage,
		HintText:  m.HintText,
		CanHint:   m.CanHint,
		Outcome:   game.Outcome(m.Outcome),
	}
	for i, b := range m.Letters {
		if b > byte(game.LetterLocked) {
			return session.Update{}, ErrMalformed
		}
		v.Letters[i] = game.LetterState(b)
	}
	if v.Status < game.InProgress || v.Status > game.Lost ||
		v.Outcome < game.OutcomeIgnored || v.Outcome > game.OutcomeNewRound {
		return session.Update{}, ErrMalformed
	}
	return session.Update{
		View:  v,
		Tally: session.Tally{Rounds: m.Rounds, Wins: m.Wins, Losses: m.Losses},
	}, nil
}
