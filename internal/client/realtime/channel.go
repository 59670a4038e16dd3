package realtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/net/websocket"

	"github.com/eduline/elearn-client/pkg/api"
)

// ErrClosed is returned by Send after the channel has been closed
var ErrClosed = errors.New("realtime channel closed")

// eventBuffer bounds how far the reader may run ahead of the consumer
const eventBuffer = 16

// Dialer opens realtime channels and enforces at most one live connection
// per purpose: dialing a purpose closes the previous channel for it first.
// It replaces the ambient singleton socket handle with an owned object whose
// lifetime is the session that created it.
type Dialer struct {
	mu        sync.Mutex
	wsBaseURL string
	live      map[Purpose]*Channel
}

// NewDialer creates a dialer for the given websocket base URL
// (e.g. ws://host:8000)
func NewDialer(wsBaseURL string) *Dialer {
	return &Dialer{
		wsBaseURL: strings.TrimRight(wsBaseURL, "/"),
		live:      make(map[Purpose]*Channel),
	}
}

// Dial opens a channel for the given purpose, authenticating with the access
// token in the query string. The channel is released when ctx is cancelled
// or Close is called, whichever comes first.
func (d *Dialer) Dial(ctx context.Context, purpose Purpose, accessToken string) (*Channel, error) {
	d.mu.Lock()
	if prev := d.live[purpose]; prev != nil {
		_ = prev.Close()
	}
	d.mu.Unlock()

	wsURL := fmt.Sprintf("%s/ws/%s/?token=%s", d.wsBaseURL, purpose, url.QueryEscape(accessToken))
	origin := "http" + strings.TrimPrefix(d.wsBaseURL, "ws")

	config, err := websocket.NewConfig(wsURL, origin)
	if err != nil {
		return nil, fmt.Errorf("invalid websocket config: %w", err)
	}
	conn, err := websocket.DialConfig(config)
	if err != nil {
		return nil, fmt.Errorf("websocket dial failed: %w", err)
	}

	ch := &Channel{
		conn:    conn,
		purpose: purpose,
		events:  make(chan Event, eventBuffer),
		closed:  make(chan struct{}),
	}

	d.mu.Lock()
	d.live[purpose] = ch
	d.mu.Unlock()

	go ch.readLoop()
	go func() {
		select {
		case <-ctx.Done():
			_ = ch.Close()
		case <-ch.closed:
		}
	}()

	return ch, nil
}

// Channel is one live socket connection for a single purpose. Inbound frames
// are decoded into typed events and delivered strictly in arrival order on
// Events. There is no automatic reconnect: once the connection drops, the
// event stream ends and the owning view decides what to do.
type Channel struct {
	conn      *websocket.Conn
	purpose   Purpose
	events    chan Event
	closed    chan struct{}
	closeOnce sync.Once
}

// Events returns the inbound event stream. The channel is closed when the
// connection ends, whatever the cause.
func (c *Channel) Events() <-chan Event {
	return c.events
}

// Send writes an outbound chat frame. Fire and forget: the protocol offers
// no delivery acknowledgement, and the message only becomes visible once the
// server echoes it back through the inbound stream.
func (c *Channel) Send(body, senderID string) error {
	if c.purpose != PurposeChat {
		return fmt.Errorf("send is not supported on the %s channel", c.purpose)
	}
	select {
	case <-c.closed:
		return ErrClosed
	default:
	}
	frame := api.ChatFrame{Message: body, SenderID: senderID}
	if err := websocket.JSON.Send(c.conn, frame); err != nil {
		return fmt.Errorf("websocket send failed: %w", err)
	}
	return nil
}

// Close releases the connection. Safe to call more than once.
func (c *Channel) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closed)
		err = c.conn.Close()
	})
	return err
}

// readLoop receives raw text frames and forwards decoded events until the
// connection ends. The events channel is closed afterwards so consumers
// observe the termination.
func (c *Channel) readLoop() {
	defer close(c.events)
	for {
		var raw string
		if err := websocket.Message.Receive(c.conn, &raw); err != nil {
			select {
			case <-c.closed:
			default:
				slog.Debug("realtime channel receive ended", "purpose", c.purpose, "error", err)
				_ = c.Close()
			}
			return
		}

		select {
		case c.events <- decodeFrame(c.purpose, []byte(raw)):
		case <-c.closed:
			return
		}
	}
}
