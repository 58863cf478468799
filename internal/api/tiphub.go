package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/ecotrack-app/ecotrack/internal/domain"
	"github.com/ecotrack-app/ecotrack/internal/infra/observability"
)

// ─── Live Tip Feed ──────────────────────────────────────────────────────────
// Tips generated while logging activities are pushed to connected clients
// over Server-Sent Events, so the UI can surface them without polling.

// TipHub manages SSE connections for the live tip feed.
type TipHub struct {
	mu      sync.Mutex
	clients map[chan []byte]struct{}
}

// NewTipHub creates a new tip broadcast hub.
func NewTipHub() *TipHub {
	return &TipHub{
		clients: make(map[chan []byte]struct{}),
	}
}

// TipEvent is one live feed entry.
type TipEvent struct {
	Type      string     `json:"type"` // "tip"
	UserID    string     `json:"user_id"`
	Tip       domain.Tip `json:"tip"`
	Timestamp int64      `json:"timestamp"` // Unix epoch
}

// Broadcast sends a tip event to all connected clients.
func (h *TipHub) Broadcast(event TipEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- data:
		default:
			// Client too slow — drop message
		}
	}
}

// Subscribe registers a new client. Returns the channel and an unsubscribe func.
func (h *TipHub) Subscribe() (chan []byte, func()) {
	ch := make(chan []byte, 32)

	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	observability.TipFeedClients.Inc()

	return ch, func() {
		h.mu.Lock()
		delete(h.clients, ch)
		h.mu.Unlock()
		observability.TipFeedClients.Dec()
		close(ch)
	}
}

// ClientCount returns the number of connected clients.
func (h *TipHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// HandleTipsSSE serves the live tip feed via Server-Sent Events.
// GET /api/tips/live
func (h *TipHub) HandleTipsSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	flusher.Flush()

	ch, unsub := h.Subscribe()
	defer unsub()

	for {
		select {
		case <-r.Context().Done():
			return
		case data := <-ch:
			w.Write([]byte("data: "))
			w.Write(data)
			w.Write([]byte("\n\n"))
			flusher.Flush()
		}
	}
}
