package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Screen channels the hub serves. Each screen subscribes to its own channel
// so one screen's search lifecycle never leaks into another's.
const (
	ChannelCreateMeal = "create-meal"
	ChannelRecipes    = "recipes"
)

type WSClient struct {
	Channel string
	Conn    *websocket.Conn
}

// SearchHub fans search lifecycle events out to websocket subscribers,
// scoped per screen channel.
type SearchHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewSearchHub() *SearchHub {
	return &SearchHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *SearchHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.Channel] == nil {
		h.clients[c.Channel] = make(map[*WSClient]struct{})
	}
	h.clients[c.Channel][c] = struct{}{}
	h.mu.Unlock()
}

func (h *SearchHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.Channel]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.Channel)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *SearchHub) Broadcast(channel string, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[channel] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}

type hubDeps struct {
	hub *SearchHub
}

var _hub hubDeps

// InitSearchHub installs the shared hub used by EmitSearchEvent. Safe to
// leave uninitialized in tests; emission becomes a no-op.
func InitSearchHub(hub *SearchHub) {
	_hub = hubDeps{hub: hub}
}

// EmitSearchEvent publishes a search lifecycle event (started, succeeded,
// failed) with its sequence number to the channel's subscribers.
func EmitSearchEvent(channel, kind string, seq uint64, detail map[string]any) {
	if _hub.hub == nil {
		return
	}
	payload := map[string]any{
		"kind":    kind,
		"seq":     seq,
		"channel": channel,
	}
	for k, v := range detail {
		payload[k] = v
	}
	_hub.hub.Broadcast(channel, payload)
}
