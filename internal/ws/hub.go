package ws

import (
	"encoding/json"
	"sync"
)

// Event is pushed to every open connection of a user when their data
// changes, so other tabs can refetch.
type Event struct {
	Type  string `json:"type"`
	Scope string `json:"scope"`
}

const (
	ScopeTasks    = "tasks"
	ScopeSnapshot = "snapshot"
)

// Hub fans change events out to the live connections of a single user.
// Connections of other users never see them.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan []byte]struct{})}
}

// Subscribe registers a delivery channel for the user and returns it.
func (h *Hub) Subscribe(userID string) chan []byte {
	ch := make(chan []byte, 16)
	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan []byte]struct{})
	}
	h.subs[userID][ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(userID string, ch chan []byte) {
	h.mu.Lock()
	if set, ok := h.subs[userID]; ok {
		delete(set, ch)
		if len(set) == 0 {
			delete(h.subs, userID)
		}
	}
	h.mu.Unlock()
}

// NotifyChanged tells all of the user's connections that data in the
// given scope changed. Slow consumers are skipped, not waited on.
func (h *Hub) NotifyChanged(userID, scope string) {
	msg, err := json.Marshal(Event{Type: "changed", Scope: scope})
	if err != nil {
		return
	}

	h.mu.RLock()
	for ch := range h.subs[userID] {
		select {
		case ch <- msg:
		default:
		}
	}
	h.mu.RUnlock()
}
