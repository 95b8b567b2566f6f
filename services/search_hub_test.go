package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialTestClient upgrades a loopback connection and registers its server side
// on the hub under the given channel. The returned client conn is what a
// subscribed screen would read from.
func dialTestClient(t *testing.T, hub *SearchHub, channel string) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(&WSClient{Channel: channel, Conn: conn})
	}))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// registration runs in the handler goroutine; wait for it before the
	// caller broadcasts
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients[channel]) > 0
	}, 2*time.Second, 10*time.Millisecond)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(msg, &payload))
	return payload
}

func TestSearchHub_BroadcastReachesChannelSubscribers(t *testing.T) {
	hub := NewSearchHub()
	conn := dialTestClient(t, hub, ChannelRecipes)

	hub.Broadcast(ChannelRecipes, map[string]any{"kind": "search.started", "seq": 1})

	payload := readEvent(t, conn)
	assert.Equal(t, "search.started", payload["kind"])
	assert.EqualValues(t, 1, payload["seq"])
}

func TestSearchHub_ChannelsAreIsolated(t *testing.T) {
	hub := NewSearchHub()
	recipesConn := dialTestClient(t, hub, ChannelRecipes)
	createMealConn := dialTestClient(t, hub, ChannelCreateMeal)

	hub.Broadcast(ChannelCreateMeal, map[string]any{"kind": "search.succeeded"})

	payload := readEvent(t, createMealConn)
	assert.Equal(t, "search.succeeded", payload["kind"])

	// the recipes subscriber must see nothing
	require.NoError(t, recipesConn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := recipesConn.ReadMessage()
	assert.Error(t, err)
}

func TestEmitSearchEvent_NoHubIsNoop(t *testing.T) {
	prev := _hub
	t.Cleanup(func() { _hub = prev })
	_hub = hubDeps{}

	assert.NotPanics(t, func() {
		EmitSearchEvent(ChannelRecipes, "search.started", 1, nil)
	})
}

func TestEmitSearchEvent_MergesDetail(t *testing.T) {
	hub := NewSearchHub()
	conn := dialTestClient(t, hub, ChannelCreateMeal)

	prev := _hub
	t.Cleanup(func() { _hub = prev })
	InitSearchHub(hub)

	EmitSearchEvent(ChannelCreateMeal, "search.failed", 3, map[string]any{
		"error": "No recipes found",
	})

	payload := readEvent(t, conn)
	assert.Equal(t, "search.failed", payload["kind"])
	assert.EqualValues(t, 3, payload["seq"])
	assert.Equal(t, ChannelCreateMeal, payload["channel"])
	assert.Equal(t, "No recipes found", payload["error"])
}
