// Package stream pushes store change events to connected browsers over a
// websocket so open tabs can refresh without polling.
package stream

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/websocket"

	"github.com/wolfman30/medicare-clinic/internal/events"
	"github.com/wolfman30/medicare-clinic/internal/http/middleware"
	"github.com/wolfman30/medicare-clinic/internal/store"
	"github.com/wolfman30/medicare-clinic/pkg/logging"
)

const defaultBuffer = 32

// InboundMessage is what the browser sends.
type InboundMessage struct {
	Type string `json:"type"` // "ping", "snapshot"
}

// OutboundMessage is what we send to the browser.
type OutboundMessage struct {
	Type      string           `json:"type"` // "snapshot", "event", "pong", "error"
	SessionID string           `json:"sessionId,omitempty"`
	Event     *events.Envelope `json:"event,omitempty"`
	State     *store.Snapshot  `json:"state,omitempty"`
	Text      string           `json:"text,omitempty"`
	Timestamp string           `json:"timestamp,omitempty"`
}

// Handler serves the change stream for the caller's session.
type Handler struct {
	bus    *events.Bus
	logger *logging.Logger
	buffer int
}

func NewHandler(bus *events.Bus, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{bus: bus, logger: logger, buffer: defaultBuffer}
}

// HandleWebSocket upgrades the request. The session middleware must run
// first so the store is on the context.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	st, ok := middleware.StoreFromContext(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, st)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveWS(conn *websocket.Conn, st *store.Store) {
	out := make(chan OutboundMessage, h.buffer)
	done := make(chan struct{})
	stop := sync.OnceFunc(func() { close(done) })
	defer stop()

	// Bus handlers run on the publishing goroutine, so never block here.
	unsubscribe := h.bus.Subscribe(func(env events.Envelope) {
		if env.Aggregate != st.ID() {
			return
		}
		select {
		case out <- OutboundMessage{Type: "event", Event: &env, Timestamp: stamp()}:
		case <-done:
		default:
			h.logger.Warn("stream: subscriber lagging; dropping event", "session_id", st.ID(), "event_type", env.EventType)
		}
	})
	defer unsubscribe()

	go h.readLoop(conn, out, done, stop)

	h.logger.Info("stream: connection opened", "session_id", st.ID())
	if err := h.sendSnapshot(conn, st); err != nil {
		return
	}

	for {
		select {
		case <-done:
			h.logger.Debug("stream: connection closed", "session_id", st.ID())
			return
		case msg := <-out:
			if msg.Type == "snapshot" {
				if err := h.sendSnapshot(conn, st); err != nil {
					return
				}
				continue
			}
			if err := websocket.JSON.Send(conn, msg); err != nil {
				h.logger.Debug("stream: send failed", "session_id", st.ID(), "error", err)
				return
			}
		}
	}
}

// readLoop answers pings and snapshot requests until the peer goes away.
func (h *Handler) readLoop(conn *websocket.Conn, out chan<- OutboundMessage, done <-chan struct{}, stop func()) {
	defer stop()
	for {
		var msg InboundMessage
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			return
		}
		var reply OutboundMessage
		switch msg.Type {
		case "ping":
			reply = OutboundMessage{Type: "pong", Timestamp: stamp()}
		case "snapshot":
			reply = OutboundMessage{Type: "snapshot"}
		default:
			reply = OutboundMessage{Type: "error", Text: "unknown message type"}
		}
		select {
		case out <- reply:
		case <-done:
			return
		}
	}
}

func (h *Handler) sendSnapshot(conn *websocket.Conn, st *store.Store) error {
	snap := st.Snapshot()
	return websocket.JSON.Send(conn, OutboundMessage{
		Type:      "snapshot",
		SessionID: st.ID(),
		State:     &snap,
		Timestamp: stamp(),
	})
}

func stamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
