package protocol

import (
	"testing"

	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/randutil"
	"github.com/lox/hangman/internal/session"
	"github.com/lox/hangman/internal/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinylib/msgp/msgp"
)

func TestUnmarshalDispatchesOnType(t *testing.T) {
	messages := []Message{
		&Sync{Seq: 1},
		&Guess{Seq: 2, Letter: "q"},
		&Hint{Seq: 3},
		&NewGame{Seq: 4},
		&Error{Seq: 5, Code: CodeBadRequest, Message: "nope"},
		&State{Seq: 6, Session: "abc", Masked: "C___", Letters: make([]byte, 26), Wins: 2},
	}

	for _, original := range messages {
		t.Run(original.MessageType(), func(t *testing.T) {
			data, err := Marshal(original)
			require.NoError(t, err)

			typ, err := PeekType(data)
			require.NoError(t, err)
			assert.Equal(t, original.MessageType(), typ)

			decoded, err := Unmarshal(data)
			require.NoError(t, err)
			assert.Equal(t, original, decoded)
			assert.Equal(t, original.Sequence(), decoded.Sequence())
		})
	}
}

func TestUnmarshalUnknownType(t *testing.T) {
	b := msgp.AppendMapHeader(nil, 1)
	b = msgp.AppendString(b, "type")
	b = msgp.AppendString(b, "raise")

	_, err := Unmarshal(b)
	assert.ErrorIs(t, err, ErrUnknownMessageType)
}

func TestUnmarshalMissingType(t *testing.T) {
	b := msgp.AppendMapHeader(nil, 1)
	b = msgp.AppendString(b, "seq")
	b = msgp.AppendUint32(b, 9)

	_, err := Unmarshal(b)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeIntoWrongType(t *testing.T) {
	data, err := Marshal(&Hint{Seq: 1})
	require.NoError(t, err)

	var g Guess
	_, err = g.UnmarshalMsg(data)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestUnknownKeysAreSkipped(t *testing.T) {
	b := msgp.AppendMapHeader(nil, 4)
	b = msgp.AppendString(b, "extra")
	b = msgp.AppendArrayHeader(b, 2)
	b = msgp.AppendInt(b, 1)
	b = msgp.AppendInt(b, 2)
	b = msgp.AppendString(b, "type")
	b = msgp.AppendString(b, TypeGuess)
	b = msgp.AppendString(b, "letter")
	b = msgp.AppendString(b, "e")
	b = msgp.AppendString(b, "seq")
	b = msgp.AppendUint32(b, 12)

	m, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, &Guess{Seq: 12, Letter: "e"}, m)
}

func TestTruncatedFrame(t *testing.T) {
	data, err := Marshal(&Guess{Seq: 1, Letter: "a"})
	require.NoError(t, err)

	_, err = Unmarshal(data[:len(data)-2])
	assert.Error(t, err)
}

func TestStateRoundTripsUpdate(t *testing.T) {
	rng := randutil.New(3)
	list, err := words.NewList("", []string{"Chen"}, rng)
	require.NoError(t, err)
	s := session.New(list, rng, session.WithID("s1"))
	s.Guess('c')
	s.Guess('x')
	want := s.Hint()

	data, err := Marshal(NewState(7, s.ID(), want))
	require.NoError(t, err)
	m, err := Unmarshal(data)
	require.NoError(t, err)

	st, ok := m.(*State)
	require.True(t, ok)
	assert.Equal(t, uint32(7), st.Seq)
	assert.Equal(t, "s1", st.Session)

	got, err := st.Update()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, game.OutcomeHintCategory, got.Outcome)
	assert.Equal(t, game.LetterHit, got.Letter('c'))
}

func TestStateUpdateRejectsMalformed(t *testing.T) {
	_, err := (&State{Letters: make([]byte, 3)}).Update()
	assert.ErrorIs(t, err, ErrMalformed)

	letters := make([]byte, 26)
	letters[0] = 99
	_, err = (&State{Letters: letters}).Update()
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = (&State{Letters: make([]byte, 26), Status: 7}).Update()
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestErrorImplementsError(t *testing.T) {
	var err error = &Error{Code: CodeUnknownType, Message: "what"}
	assert.EqualError(t, err, "unknown_type: what")
}
