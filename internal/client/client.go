package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/lox/hangman/internal/protocol"
	"github.com/lox/hangman/internal/session"
)

// ErrDisconnected is returned for requests made after the connection dropped.
var ErrDisconnected = errors.New("disconnected from server")

const (
	writeWait  = 10 * time.Second
	pingPeriod = 54 * time.Second
)

// Client plays a remote session. It implements the same driver methods as
// session.Local so the TUI can render either.
type Client struct {
	serverURL string
	conn      *websocket.Conn
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once

	writeMu sync.Mutex

	mu      sync.Mutex
	seq     uint32
	pending map[uint32]chan protocol.Message
	session string

	timeout time.Duration
}

// NewClient creates a client for serverURL. Call Connect before use.
func NewClient(serverURL string, logger *log.Logger) *Client {
	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		serverURL: serverURL,
		logger:    logger.WithPrefix("client"),
		ctx:       ctx,
		cancel:    cancel,
		pending:   make(map[uint32]chan protocol.Message),
	}
}

// Connect establishes the WebSocket connection
func (c *Client) Connect(ctx context.Context) error {
	c.logger.Info("Connecting to server", "url", c.serverURL)

	u, err := url.Parse(c.serverURL)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}

	// Convert http/https to ws/wss
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = "/ws"
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	c.conn = conn

	go c.readPump()
	go c.pingLoop()

	c.logger.Info("Connected to server")
	return nil
}

// Close closes the connection and fails any request still waiting.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		if c.conn != nil {
			c.writeMu.Lock()
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			c.writeMu.Unlock()
			err = c.conn.Close()
		}
		c.logger.Info("Disconnected from server")
	})
	return err
}

// SetRequestTimeout bounds how long each request waits for its reply.
// Zero means wait for the caller's context only.
func (c *Client) SetRequestTimeout(d time.Duration) {
	c.timeout = d
}

// SessionID returns the server-assigned session id once known.
func (c *Client) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Current fetches the round without changing it.
func (c *Client) Current(ctx context.Context) (session.Update, error) {
	return c.do(ctx, func(seq uint32) protocol.Message { return &protocol.Sync{Seq: seq} })
}

// Guess selects a letter.
func (c *Client) Guess(ctx context.Context, letter rune) (session.Update, error) {
	return c.do(ctx, func(seq uint32) protocol.Message {
		return &protocol.Guess{Seq: seq, Letter: string(letter)}
	})
}

// Hint requests the next hint.
func (c *Client) Hint(ctx context.Context) (session.Update, error) {
	return c.do(ctx, func(seq uint32) protocol.Message { return &protocol.Hint{Seq: seq} })
}

// NewGame starts a new round.
func (c *Client) NewGame(ctx context.Context) (session.Update, error) {
	return c.do(ctx, func(seq uint32) protocol.Message { return &protocol.NewGame{Seq: seq} })
}

// do sends one request and waits for the reply carrying its sequence number.
func (c *Client) do(ctx context.Context, build func(seq uint32) protocol.Message) (session.Update, error) {
	if c.ctx.Err() != nil {
		return session.Update{}, ErrDisconnected
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	reply := make(chan protocol.Message, 1)
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.pending[seq] = reply
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, seq)
		c.mu.Unlock()
	}()

	req := build(seq)
	frame, err := protocol.Marshal(req)
	if err != nil {
		return session.Update{}, err
	}

	c.writeMu.Lock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	err = c.conn.WriteMessage(websocket.BinaryMessage, frame)
	c.writeMu.Unlock()
	if err != nil {
		return session.Update{}, fmt.Errorf("failed to send %s: %w", req.MessageType(), err)
	}

	select {
	case msg := <-reply:
		switch m := msg.(type) {
		case *protocol.State:
			return m.Update()
		case *protocol.Error:
			return session.Update{}, m
		default:
			return session.Update{}, fmt.Errorf("%w: unexpected %s reply", protocol.ErrUnknownMessageType, msg.MessageType())
		}
	case <-ctx.Done():
		return session.Update{}, ctx.Err()
	case <-c.ctx.Done():
		return session.Update{}, ErrDisconnected
	}
}

// readPump routes replies to the request waiting for them
func (c *Client) readPump() {
	defer func() { _ = c.Close() }()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}

		msg, err := protocol.Unmarshal(data)
		if err != nil {
			c.logger.Warn("Dropping undecodable frame", "error", err)
			continue
		}

		c.logger.Debug("Received message", "type", msg.MessageType(), "seq", msg.Sequence())

		c.mu.Lock()
		if st, ok := msg.(*protocol.State); ok {
			c.session = st.Session
		}
		reply, ok := c.pending[msg.Sequence()]
		c.mu.Unlock()

		if !ok {
			c.logger.Debug("No request waiting for reply", "seq", msg.Sequence())
			continue
		}
		reply <- msg
	}
}

// pingLoop keeps the connection alive while the player is thinking
func (c *Client) pingLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.writeMu.Lock()
			err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			c.writeMu.Unlock()
			if err != nil {
				c.logger.Warn("Ping failed", "error", err)
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}
