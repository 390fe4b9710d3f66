package server

import (
	"context"
	"errors"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/lox/hangman/internal/protocol"
	"github.com/lox/hangman/internal/session"
	"github.com/rs/zerolog"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 1024
)

var ErrConnectionClosed = websocket.ErrCloseSent

// Connection is one player's WebSocket. Its session is touched only by the
// read pump, so requests are applied strictly one at a time.
type Connection struct {
	conn      *websocket.Conn
	session   *session.Session
	send      chan []byte
	clock     quartz.Clock
	logger    zerolog.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once

	mu    sync.RWMutex
	tally session.Tally
}

// NewConnection wraps conn with its own session.
func NewConnection(conn *websocket.Conn, sess *session.Session, clock quartz.Clock, logger zerolog.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:    conn,
		session: sess,
		send:    make(chan []byte, 16),
		clock:   clock,
		logger:  logger.With().Str("session", sess.ID()).Logger(),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Done is closed once the connection has shut down.
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

// Tally returns the session's finished-round counts as of the last request.
func (c *Connection) Tally() session.Tally {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tally
}

// readPump handles incoming requests from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }() // Ignore close errors during cleanup

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		kind, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Error().Err(err).Msg("WebSocket error")
			}
			return
		}
		if kind != websocket.BinaryMessage {
			c.sendError(0, protocol.CodeBadRequest, "expected binary msgpack frame")
			continue
		}

		msg, err := protocol.Unmarshal(data)
		if err != nil {
			code := protocol.CodeBadRequest
			if errors.Is(err, protocol.ErrUnknownMessageType) {
				code = protocol.CodeUnknownType
			}
			c.logger.Debug().Err(err).Msg("Rejected frame")
			c.sendError(0, code, err.Error())
			continue
		}

		c.handleMessage(msg)
	}
}

// writePump handles outgoing frames to the client
func (c *Connection) writePump() {
	ticker := c.clock.NewTicker(pingPeriod, "conn", "ping")
	defer func() {
		ticker.Stop()
		_ = c.Close() // Ignore close errors during cleanup
	}()

	for {
		select {
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				c.logger.Error().Err(err).Msg("Failed to write message")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

// handleMessage applies one request to the session and queues the reply
func (c *Connection) handleMessage(msg protocol.Message) {
	c.logger.Debug().Str("type", msg.MessageType()).Uint32("seq", msg.Sequence()).Msg("Received message")

	var u session.Update
	switch m := msg.(type) {
	case *protocol.Sync:
		u = c.session.Current()
	case *protocol.Guess:
		r, size := utf8.DecodeRuneInString(m.Letter)
		if size == 0 || r == utf8.RuneError || size != len(m.Letter) {
			c.sendError(m.Seq, protocol.CodeBadRequest, "guess needs exactly one letter")
			return
		}
		u = c.session.Guess(r)
	case *protocol.Hint:
		u = c.session.Hint()
	case *protocol.NewGame:
		u = c.session.NewGame()
	default:
		c.sendError(msg.Sequence(), protocol.CodeUnknownType, "not a request: "+msg.MessageType())
		return
	}

	c.mu.Lock()
	c.tally = u.Tally
	c.mu.Unlock()

	c.sendMessage(protocol.NewState(msg.Sequence(), c.session.ID(), u))
}

func (c *Connection) sendError(seq uint32, code, message string) {
	c.sendMessage(&protocol.Error{Seq: seq, Code: code, Message: message})
}

func (c *Connection) sendMessage(msg protocol.Message) {
	frame, err := protocol.Marshal(msg)
	if err != nil {
		c.logger.Error().Err(err).Str("type", msg.MessageType()).Msg("Failed to marshal message")
		return
	}

	select {
	case c.send <- frame:
	case <-c.ctx.Done():
	}
}
