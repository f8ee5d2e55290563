package ws

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

	"github.com/forest0xia/ai-career-navigator/internal/logger"
	"github.com/forest0xia/ai-career-navigator/internal/model"
)

type fixedCommunity struct {
	stats *model.CommunityStats
}

func (f fixedCommunity) Community(context.Context) *model.CommunityStats {
	return f.stats
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) (Message, model.CommunityStats) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	var payload model.CommunityStats
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	return msg, payload
}

func TestStatsFeed(t *testing.T) {
	hub := NewHub(logger.Nop())
	defer hub.Close()
	h := NewHandler(hub, fixedCommunity{&model.CommunityStats{TotalSessions: 3}}, []string{"*"})
	srv := httptest.NewServer(http.HandlerFunc(h.StatsWS))
	defer srv.Close()

	conn := dial(t, srv)

	msg, payload := readMessage(t, conn)
	assert.Equal(t, MsgCommunityUpdate, msg.Type)
	assert.Equal(t, 3, payload.TotalSessions)

	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Broadcast(string(MsgCommunityUpdate), &model.CommunityStats{TotalSessions: 4})
	msg, payload = readMessage(t, conn)
	assert.Equal(t, MsgCommunityUpdate, msg.Type)
	assert.Equal(t, 4, payload.TotalSessions)
}

func TestDisconnectUnregisters(t *testing.T) {
	hub := NewHub(logger.Nop())
	defer hub.Close()
	h := NewHandler(hub, nil, nil)
	srv := httptest.NewServer(http.HandlerFunc(h.StatsWS))
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestBroadcastWithoutClientsDoesNotBlock(t *testing.T) {
	hub := NewHub(logger.Nop())
	defer hub.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			hub.Broadcast(string(MsgCommunityUpdate), map[string]int{"i": i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked")
	}
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://ok.example"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://ok.example")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.example")
	assert.False(t, check(req))

	assert.True(t, originChecker(nil)(req))
	assert.True(t, originChecker([]string{"*"})(req))
}

func TestClosedHubRejectsRegistration(t *testing.T) {
	hub := NewHub(logger.Nop())
	hub.Close()

	conn := &Connection{ID: "late", Send: make(chan []byte, 1), Hub: hub}
	hub.Register(conn)
	_, open := <-conn.Send
	assert.False(t, open)
}
