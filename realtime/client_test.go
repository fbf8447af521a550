package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eunyuson/GRACE-sub000/content"
)

var upgrader = websocket.Upgrader{}

// feedServer runs a websocket endpoint that sends the given raw messages
// to every connection, then holds it open until the test ends.
func feedServer(t *testing.T, messages ...string) (wsURL string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		for _, m := range messages {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(m)); err != nil {
				return
			}
		}
		// Hold open; ReadMessage returns when the client hangs up
		conn.ReadMessage()
		conn.Close()
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestClientReceivesNewsEvent(t *testing.T) {
	post := content.NewsPost{ID: "n1", Title: "Retreat sign-up open", PostedAt: time.Now()}
	raw, err := json.Marshal(Event{Type: EventNewsPost, Post: &post})
	require.NoError(t, err)

	url := feedServer(t, string(raw))
	client := NewClient(url)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Run(ctx)

	select {
	case ev := <-client.Events():
		assert.Equal(t, EventNewsPost, ev.Type)
		require.NotNil(t, ev.Post)
		assert.Equal(t, "n1", ev.Post.ID)
		assert.Equal(t, "Retreat sign-up open", ev.Post.Title)
	case <-time.After(3 * time.Second):
		t.Fatal("no event received")
	}
}

func TestClientSkipsMalformedMessages(t *testing.T) {
	good, err := json.Marshal(Event{Type: EventLibraryUpdate})
	require.NoError(t, err)

	url := feedServer(t, "{not json", `{"post":{}}`, string(good))
	client := NewClient(url)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Run(ctx)

	select {
	case ev := <-client.Events():
		assert.Equal(t, EventLibraryUpdate, ev.Type, "malformed and typeless messages should be dropped")
	case <-time.After(3 * time.Second):
		t.Fatal("no event received")
	}
}

func TestClientStopsOnCancel(t *testing.T) {
	url := feedServer(t)
	client := NewClient(url)

	ctx, cancel := context.WithCancel(context.Background())
	runErr := make(chan error, 1)
	go func() { runErr <- client.Run(ctx) }()

	// Let it connect, then cancel
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-runErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	// Events channel closes when Run returns
	select {
	case _, ok := <-client.Events():
		assert.False(t, ok, "events channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("events channel not closed")
	}
}

func TestClientReconnects(t *testing.T) {
	hits := make(chan struct{}, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits <- struct{}{}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn.Close() // Drop immediately to force a reconnect
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client := NewClient(url, WithMaxReconnectInterval(50*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	go client.Run(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-hits:
		case <-ctx.Done():
			t.Fatalf("only %d connection attempts before timeout", i)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(context.Canceled))
	assert.True(t, IsRetryable(assert.AnError))
}
