package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/rs/zerolog/log"

	"guestlink/internal/adapters/observability"
	"guestlink/internal/domain"
)

// Event is the envelope for every message on the channel, in both directions.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type joinMessage struct {
	Type    string `json:"type"`
	HotelID string `json:"hotelId"`
}

// TokenVerifier resolves a bearer token to a staff identity.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// client is one connected session. write/stop indirect the underlying
// websocket so the hub logic is testable without a network.
type client struct {
	identity *domain.Identity
	hotelID  string // joined broadcast group, empty until joinHotel
	write    func(ctx context.Context, p []byte) error
	stop     func()
}

// Hub is the per-tenant broadcast registry. It is owned by the server
// process, injected where needed, and torn down with Close on shutdown.
// Membership is process-local: cross-process fan-out would need a shared
// broker behind the same Publish contract.
type Hub struct {
	verifier TokenVerifier

	mu      sync.RWMutex
	clients map[*client]struct{}
	groups  map[string]map[*client]struct{}
	closed  bool
}

func NewHub(verifier TokenVerifier) *Hub {
	return &Hub{
		verifier: verifier,
		clients:  make(map[*client]struct{}),
		groups:   make(map[string]map[*client]struct{}),
	}
}

// HandleWS upgrades the connection and runs its read loop until disconnect.
// A bearer token (query param or Authorization header) is verified when
// present; joins are refused without one.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // origin policy is the proxy's concern
	})
	if err != nil {
		log.Error().Err(err).Msg("websocket accept failed")
		return
	}

	var identity *domain.Identity
	if token := bearerToken(r); token != "" && h.verifier != nil {
		if id, err := h.verifier.Verify(token); err == nil {
			identity = &id
		} else {
			log.Warn().Str("remote", r.RemoteAddr).Msg("websocket token rejected")
		}
	}

	ctx, cancel := context.WithCancel(r.Context())
	c := &client{
		identity: identity,
		write: func(ctx context.Context, p []byte) error {
			return conn.Write(ctx, websocket.MessageText, p)
		},
		stop: cancel,
	}
	if !h.register(c) {
		_ = conn.Close(websocket.StatusGoingAway, "shutting down")
		cancel()
		return
	}
	observability.WSConnections.Inc()
	observability.ObserveWS("connect")
	log.Info().Str("remote", r.RemoteAddr).Bool("authenticated", identity != nil).Msg("websocket connected")

	defer func() {
		h.unregister(c)
		observability.WSConnections.Dec()
		observability.ObserveWS("disconnect")
		_ = conn.Close(websocket.StatusNormalClosure, "")
		cancel()
	}()

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		h.handleMessage(ctx, c, data)
	}
}

// handleMessage dispatches one inbound frame. Unknown types are ignored so
// newer clients do not break older servers.
func (h *Hub) handleMessage(ctx context.Context, c *client, data []byte) {
	var msg joinMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	if msg.Type != "joinHotel" {
		return
	}
	if err := h.join(c, msg.HotelID); err != nil {
		h.send(ctx, c, Event{Type: "error", Payload: mustJSON(err.Error())})
		return
	}
	observability.ObserveWS("join")
	h.send(ctx, c, Event{Type: "joined", Payload: mustJSON(msg.HotelID)})
}

// join admits a connection into a hotel's broadcast group. The join hotel id
// must match the authenticated identity's hotel; unauthenticated connections
// cannot join any group.
func (h *Hub) join(c *client, hotelID string) error {
	if hotelID == "" {
		return errors.New("join refused: hotelId is required")
	}
	if c.identity == nil {
		return errors.New("join refused: authentication required")
	}
	if c.identity.HotelID != hotelID {
		return errors.New("join refused: token is scoped to another hotel")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return errors.New("join refused: shutting down")
	}
	if c.hotelID != "" {
		delete(h.groups[c.hotelID], c)
	}
	c.hotelID = hotelID
	if h.groups[hotelID] == nil {
		h.groups[hotelID] = make(map[*client]struct{})
	}
	h.groups[hotelID][c] = struct{}{}
	return nil
}

// Publish delivers a newRequest event to every member of the hotel's group
// and to no one else. At-most-once, fire-and-forget: members whose write
// fails are dropped, and nothing is queued for absent listeners.
func (h *Hub) Publish(ctx context.Context, hotelID string, req domain.Request) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}
	data, err := json.Marshal(Event{Type: "newRequest", Payload: payload})
	if err != nil {
		return err
	}

	h.mu.RLock()
	members := make([]*client, 0, len(h.groups[hotelID]))
	for c := range h.groups[hotelID] {
		members = append(members, c)
	}
	h.mu.RUnlock()

	wctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	for _, c := range members {
		if err := c.write(wctx, data); err != nil {
			log.Debug().Err(err).Str("hotel", hotelID).Msg("websocket write failed, dropping member")
			observability.ObserveWS("drop")
			h.unregister(c)
			c.stop()
		}
	}
	observability.ObserveWS("publish")
	return nil
}

// Close disconnects every session and refuses further registrations.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[*client]struct{})
	h.groups = make(map[string]map[*client]struct{})
	h.mu.Unlock()

	for _, c := range clients {
		c.stop()
	}
}

// ConnectionCount returns the number of active sessions across all groups.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
	if c.hotelID != "" {
		delete(h.groups[c.hotelID], c)
		if len(h.groups[c.hotelID]) == 0 {
			delete(h.groups, c.hotelID)
		}
	}
}

func (h *Hub) send(ctx context.Context, c *client, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := c.write(ctx, data); err != nil {
		log.Debug().Err(err).Msg("websocket send failed")
	}
}

func bearerToken(r *http.Request) string {
	if t := r.URL.Query().Get("token"); t != "" {
		return t
	}
	ah := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(ah, "Bearer "); ok {
		return after
	}
	return ""
}

func mustJSON(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}
