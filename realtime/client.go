// Package realtime maintains a websocket subscription to the church feed
// server and delivers incoming events to the UI thread over a channel.
// The connection reconnects with exponential backoff and survives server
// restarts; the UI only ever sees a stream of events.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/eunyuson/GRACE-sub000/content"
)

// Event types carried on the feed.
const (
	EventNewsPost      = "news.post"
	EventLibraryUpdate = "library.update"
)

// Event is one message from the feed server.
type Event struct {
	Type string            `json:"type"`
	Post *content.NewsPost `json:"post,omitempty"` // Set for news.post
}

// Client subscribes to the feed. Create with NewClient, consume Events,
// and drive the connection with Run.
type Client struct {
	url      string
	clientID string
	events   chan Event
	dialer   *websocket.Dialer
	log      *slog.Logger

	maxInterval time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithMaxReconnectInterval caps the backoff between reconnect attempts.
func WithMaxReconnectInterval(d time.Duration) ClientOption {
	return func(c *Client) { c.maxInterval = d }
}

// NewClient creates a feed client for the given websocket URL.
func NewClient(url string, opts ...ClientOption) *Client {
	c := &Client{
		url:         url,
		clientID:    uuid.NewString(),
		events:      make(chan Event, 32),
		dialer:      websocket.DefaultDialer,
		maxInterval: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = slog.With("component", "realtime", "client_id", c.clientID)
	return c
}

// Events returns the channel incoming events are delivered on. The channel
// closes when Run returns. Events that arrive while the buffer is full are
// dropped; the feed is advisory, not a ledger.
func (c *Client) Events() <-chan Event {
	return c.events
}

// Run connects and reads until ctx is cancelled, reconnecting with
// exponential backoff after connection failures.
func (c *Client) Run(ctx context.Context) error {
	defer close(c.events)

	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = c.maxInterval
	bo.MaxElapsedTime = 0 // Retry forever; ctx is the only stop

	for {
		err := c.connectAndRead(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		wait := bo.NextBackOff()
		c.log.Warn("feed connection lost, reconnecting", "err", err, "wait", wait)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// connectAndRead dials once and pumps events until the connection drops.
// A successful read resets nothing here; the caller's backoff restarts on
// each call to keep the logic in one place.
func (c *Client) connectAndRead(ctx context.Context) error {
	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dial feed: %w", err)
	}
	defer conn.Close()
	c.log.Info("feed connected", "url", c.url)

	// Unblock ReadMessage when ctx is cancelled
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read feed: %w", err)
		}

		var ev Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			c.log.Warn("malformed feed event", "err", err)
			continue
		}
		if ev.Type == "" {
			continue
		}

		select {
		case c.events <- ev:
		default:
			c.log.Warn("event buffer full, dropping", "type", ev.Type)
		}
	}
}

// IsRetryable reports whether the error from a feed operation is worth a
// reconnect. Context cancellation is terminal.
func IsRetryable(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
