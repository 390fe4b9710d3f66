package protocol

import (
	"errors"
	"fmt"

	"github.com/tinylib/msgp/msgp"
)

var (
	// ErrUnknownMessageType is returned for frames whose type is not known.
	ErrUnknownMessageType = errors.New("unknown message type")
	// ErrTypeMismatch is returned when a frame is decoded into the wrong type.
	ErrTypeMismatch = errors.New("message type mismatch")
	// ErrMalformed is returned for frames with out-of-range values.
	ErrMalformed = errors.New("malformed message")
)

// Marshal serializes a message to msgpack.
func Marshal(m Message) ([]byte, error) {
	return m.MarshalMsg(nil)
}

// Unmarshal decodes a frame into a new message of the type it names.
func Unmarshal(data []byte) (Message, error) {
	t, err := PeekType(data)
	if err != nil {
		return nil, err
	}

	var m Message
	switch t {
	case TypeSync:
		m = &Sync{}
	case TypeGuess:
		m = &Guess{}
	case TypeHint:
		m = &Hint{}
	case TypeNewGame:
		m = &NewGame{}
	case TypeState:
		m = &State{}
	case TypeError:
		m = &Error{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, t)
	}

	if _, err := m.UnmarshalMsg(data); err != nil {
		return nil, err
	}
	return m, nil
}

// PeekType returns the value of the "type" key without decoding the rest.
func PeekType(data []byte) (string, error) {
	n, b, err := msgp.ReadMapHeaderBytes(data)
	if err != nil {
		return "", err
	}
	for range n {
		var key []byte
		key, b, err = msgp.ReadMapKeyZC(b)
		if err != nil {
			return "", err
		}
		if string(key) == "type" {
			t, _, err := msgp.ReadStringBytes(b)
			return t, err
		}
		if b, err = msgp.Skip(b); err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: no type key", ErrMalformed)
}

func appendHeader(b []byte, fields uint32, typ string, seq uint32) []byte {
	b = msgp.AppendMapHeader(b, fields+2)
	b = msgp.AppendString(b, "type")
	b = msgp.AppendString(b, typ)
	b = msgp.AppendString(b, "seq")
	return msgp.AppendUint32(b, seq)
}

// decodeMap walks a frame, checking its type and handing every other key to
// field. Unknown keys are skipped so fields can be added later.
func decodeMap(b []byte, want string, seq *uint32, field func(key string, b []byte) ([]byte, error)) ([]byte, error) {
	n, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return b, err
	}
	for range n {
		var key []byte
		key, b, err = msgp.ReadMapKeyZC(b)
		if err != nil {
			return b, err
		}
		switch string(key) {
		case "type":
			var t string
			t, b, err = msgp.ReadStringBytes(b)
			if err == nil && t != want {
				err = fmt.Errorf("%w: got %q, want %q", ErrTypeMismatch, t, want)
			}
		case "seq":
			*seq, b, err = msgp.ReadUint32Bytes(b)
		default:
			b, err = field(string(key), b)
		}
		if err != nil {
			return b, fmt.Errorf("%s.%s: %w", want, key, err)
		}
	}
	return b, nil
}

func skipField(_ string, b []byte) ([]byte, error) {
	return msgp.Skip(b)
}

func (m *Sync) MarshalMsg(b []byte) ([]byte, error) {
	return appendHeader(b, 0, TypeSync, m.Seq), nil
}

func (m *Sync) UnmarshalMsg(b []byte) ([]byte, error) {
	return decodeMap(b, TypeSync, &m.Seq, skipField)
}

func (m *Guess) MarshalMsg(b []byte) ([]byte, error) {
	b = appendHeader(b, 1, TypeGuess, m.Seq)
	b = msgp.AppendString(b, "letter")
	return msgp.AppendString(b, m.Letter), nil
}

func (m *Guess) UnmarshalMsg(b []byte) ([]byte, error) {
	return decodeMap(b, TypeGuess, &m.Seq, func(key string, b []byte) (o []byte, err error) {
		if key == "letter" {
			m.Letter, o, err = msgp.ReadStringBytes(b)
			return o, err
		}
		return msgp.Skip(b)
	})
}

func (m *Hint) MarshalMsg(b []byte) ([]byte, error) {
	return appendHeader(b, 0, TypeHint, m.Seq), nil
}

func (m *Hint) UnmarshalMsg(b []byte) ([]byte, error) {
	return decodeMap(b, TypeHint, &m.Seq, skipField)
}

func (m *NewGame) MarshalMsg(b []byte) ([]byte, error) {
	return appendHeader(b, 0, TypeNewGame, m.Seq), nil
}

func (m *NewGame) UnmarshalMsg(b []byte) ([]byte, error) {
	return decodeMap(b, TypeNewGame, &m.Seq, skipField)
}

func (m *State) MarshalMsg(b []byte) ([]byte, error) {
	b = appendHeader(b, 12, TypeState, m.Seq)
	b = msgp.AppendString(b, "session")
	b = msgp.AppendString(b, m.Session)
	b = msgp.AppendString(b, "status")
	b = msgp.AppendInt(b, m.Status)
	b = msgp.AppendString(b, "masked")
	b = msgp.AppendString(b, m.Masked)
	b = msgp.AppendString(b, "incorrect")
	b = msgp.AppendInt(b, m.Incorrect)
	b = msgp.AppendString(b, "hint_stage")
	b = msgp.AppendInt(b, m.HintStage)
	b = msgp.AppendString(b, "hint_text")
	b = msgp.AppendString(b, m.HintText)
	b = msgp.AppendString(b, "can_hint")
	b = msgp.AppendBool(b, m.CanHint)
	b = msgp.AppendString(b, "letters")
	b = msgp.AppendBytes(b, m.Letters)
	b = msgp.AppendString(b, "outcome")
	b = msgp.AppendInt(b, m.Outcome)
	b = msgp.AppendString(b, "rounds")
	b = msgp.AppendInt(b, m.Rounds)
	b = msgp.AppendString(b, "wins")
	b = msgp.AppendInt(b, m.Wins)
	b = msgp.AppendString(b, "losses")
	return msgp.AppendInt(b, m.Losses), nil
}

func (m *State) UnmarshalMsg(b []byte) ([]byte, error) {
	return decodeMap(b, TypeState, &m.Seq, func(key string, b []byte) (o []byte, err error) {
		switch key {
		case "session":
			m.Session, o, err = msgp.ReadStringBytes(b)
		case "status":
			m.Status, o, err = msgp.ReadIntBytes(b)
		case "masked":
			m.Masked, o, err = msgp.ReadStringBytes(b)
		case "incorrect":
			m.Incorrect, o, err = msgp.ReadIntBytes(b)
		case "hint_stage":
			m.HintStage, o, err = msgp.ReadIntBytes(b)
		case "hint_text":
			m.HintText, o, err = msgp.ReadStringBytes(b)
		case "can_hint":
			m.CanHint, o, err = msgp.ReadBoolBytes(b)
		case "letters":
			m.Letters, o, err = msgp.ReadBytesBytes(b, m.Letters[:0])
		case "outcome":
			m.Outcome, o, err = msgp.ReadIntBytes(b)
		case "rounds":
			m.Rounds, o, err = msgp.ReadIntBytes(b)
		case "wins":
			m.Wins, o, err = msgp.ReadIntBytes(b)
		case "losses":
			m.Losses, o, err = msgp.ReadIntBytes(b)
		default:
			o, err = msgp.Skip(b)
		}
		return o, err
	})
}

func (m *Error) MarshalMsg(b []byte) ([]byte, error) {
	b = appendHeader(b, 2, TypeError, m.Seq)
	b = msgp.AppendString(b, "code")
	b = msgp.AppendString(b, m.Code)
	b = msgp.AppendString(b, "message")
	return msgp.AppendString(b, m.Message), nil
}

func (m *Error) UnmarshalMsg(b []byte) ([]byte, error) {
	return decodeMap(b, TypeError, &m.Seq, func(key string, b []byte) (o []byte, err error) {
		switch key {
		case "code":
			m.Code, o, err = msgp.ReadStringBytes(b)
		case "message":
			m.Message, o, err = msgp.ReadStringBytes(b)
		default:
			o, err = msgp.Skip(b)
		}
		return o, err
	})
}

func (m *Error) Error() string {
	return fmt.Sprintf("%s: %s", m.Code, m.Message)
}
