package ws

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"guestlink/internal/domain"
)

type fakeVerifier struct {
	identities map[string]domain.Identity
}

func (f *fakeVerifier) Verify(token string) (domain.Identity, error) {
	id, ok := f.identities[token]
	if !ok {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return id, nil
}

// recorder is a registered session backed by a slice instead of a socket.
type recorder struct {
	mu      sync.Mutex
	frames  [][]byte
	failing bool
	stopped bool
}

func (r *recorder) events(t *testing.T) []Event {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, 0, len(r.frames))
	for _, f := range r.frames {
		var ev Event
		if err := json.Unmarshal(f, &ev); err != nil {
			t.Fatalf("bad frame %q: %v", f, err)
		}
		out = append(out, ev)
	}
	return out
}

func connect(t *testing.T, h *Hub, identity *domain.Identity) (*client, *recorder) {
	t.Helper()
	rec := &recorder{}
	c := &client{
		identity: identity,
		write: func(ctx context.Context, p []byte) error {
			rec.mu.Lock()
			defer rec.mu.Unlock()
			if rec.failing {
				return errors.New("connection gone")
			}
			rec.frames = append(rec.frames, p)
			return nil
		},
		stop: func() {
			rec.mu.Lock()
			rec.stopped = true
			rec.mu.Unlock()
		},
	}
	if !h.register(c) {
		t.Fatal("register refused")
	}
	return c, rec
}

func identityFor(hotelID string) *domain.Identity {
	return &domain.Identity{StaffID: "staff-" + hotelID, HotelID: hotelID, Role: domain.RoleStaff}
}

func TestPublish_TenantIsolation(t *testing.T) {
	h := NewHub(&fakeVerifier{})

	ca, ra := connect(t, h, identityFor("A"))
	cb, rb := connect(t, h, identityFor("B"))
	if err := h.join(ca, "A"); err != nil {
		t.Fatalf("join A: %v", err)
	}
	if err := h.join(cb, "B"); err != nil {
		t.Fatalf("join B: %v", err)
	}

	req := domain.Request{ID: "r1", HotelID: "A", RoomNumber: "101", Message: "hello"}
	if err := h.Publish(context.Background(), "A", req); err != nil {
		t.Fatalf("publish: %v", err)
	}

	got := ra.events(t)
	if len(got) != 1 || got[0].Type != "newRequest" {
		t.Fatalf("hotel A events: %+v", got)
	}
	var delivered domain.Request
	if err := json.Unmarshal(got[0].Payload, &delivered); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if delivered.ID != "r1" || delivered.Message != "hello" {
		t.Fatalf("delivered: %+v", delivered)
	}
	if len(rb.events(t)) != 0 {
		t.Fatalf("hotel B must see nothing, got %+v", rb.events(t))
	}
}

func TestPublish_AllGroupMembersOnce(t *testing.T) {
	h := NewHub(&fakeVerifier{})

	var recs []*recorder
	for i := 0; i < 3; i++ {
		c, rec := connect(t, h, identityFor("A"))
		if err := h.join(c, "A"); err != nil {
			t.Fatalf("join: %v", err)
		}
		recs = append(recs, rec)
	}

	if err := h.Publish(context.Background(), "A", domain.Request{ID: "r1", HotelID: "A"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	for i, rec := range recs {
		if n := len(rec.events(t)); n != 1 {
			t.Fatalf("member %d received %d events", i, n)
		}
	}
}

func TestPublish_NoListeners(t *testing.T) {
	h := NewHub(&fakeVerifier{})
	if err := h.Publish(context.Background(), "A", domain.Request{ID: "r1"}); err != nil {
		t.Fatalf("publish to empty group must succeed: %v", err)
	}
}

func TestPublish_DropsFailedWriter(t *testing.T) {
	h := NewHub(&fakeVerifier{})

	cGood, rGood := connect(t, h, identityFor("A"))
	cBad, rBad := connect(t, h, identityFor("A"))
	if err := h.join(cGood, "A"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := h.join(cBad, "A"); err != nil {
		t.Fatalf("join: %v", err)
	}
	rBad.failing = true

	if err := h.Publish(context.Background(), "A", domain.Request{ID: "r1"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !rBad.stopped {
		t.Fatal("failed writer must be stopped")
	}
	if h.ConnectionCount() != 1 {
		t.Fatalf("connections after drop: %d", h.ConnectionCount())
	}

	// the survivor keeps receiving
	if err := h.Publish(context.Background(), "A", domain.Request{ID: "r2"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if n := len(rGood.events(t)); n != 2 {
		t.Fatalf("survivor received %d events", n)
	}
}

func TestJoin_Refusals(t *testing.T) {
	h := NewHub(&fakeVerifier{})

	t.Run("unauthenticated", func(t *testing.T) {
		c, _ := connect(t, h, nil)
		if err := h.join(c, "A"); err == nil {
			t.Fatal("unauthenticated join must be refused")
		}
	})

	t.Run("foreign tenant", func(t *testing.T) {
		c, _ := connect(t, h, identityFor("B"))
		if err := h.join(c, "A"); err == nil {
			t.Fatal("cross-tenant join must be refused")
		}
	})

	t.Run("missing hotel id", func(t *testing.T) {
		c, _ := connect(t, h, identityFor("A"))
		if err := h.join(c, ""); err == nil {
			t.Fatal("empty hotelId must be refused")
		}
	})
}

func TestHandleMessage_JoinProtocol(t *testing.T) {
	h := NewHub(&fakeVerifier{})
	ctx := context.Background()

	t.Run("joined ack", func(t *testing.T) {
		c, rec := connect(t, h, identityFor("A"))
		h.handleMessage(ctx, c, []byte(`{"type":"joinHotel","hotelId":"A"}`))
		evs := rec.events(t)
		if len(evs) != 1 || evs[0].Type != "joined" {
			t.Fatalf("events: %+v", evs)
		}
	})

	t.Run("refusal is an error event", func(t *testing.T) {
		c, rec := connect(t, h, nil)
		h.handleMessage(ctx, c, []byte(`{"type":"joinHotel","hotelId":"A"}`))
		evs := rec.events(t)
		if len(evs) != 1 || evs[0].Type != "error" {
			t.Fatalf("events: %+v", evs)
		}
	})

	t.Run("unknown type ignored", func(t *testing.T) {
		c, rec := connect(t, h, identityFor("A"))
		h.handleMessage(ctx, c, []byte(`{"type":"ping"}`))
		h.handleMessage(ctx, c, []byte(`not json`))
		if len(rec.events(t)) != 0 {
			t.Fatalf("events: %+v", rec.events(t))
		}
	})
}

func TestRejoin_MovesGroups(t *testing.T) {
	h := NewHub(&fakeVerifier{})
	id := &domain.Identity{StaffID: "s", HotelID: "A", Role: domain.RoleStaff}
	c, rec := connect(t, h, id)
	if err := h.join(c, "A"); err != nil {
		t.Fatalf("join: %v", err)
	}
	// a second join of the same hotel must not double-deliver
	if err := h.join(c, "A"); err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if err := h.Publish(context.Background(), "A", domain.Request{ID: "r1"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if n := len(rec.events(t)); n != 1 {
		t.Fatalf("received %d events after rejoin", n)
	}
}

func TestClose(t *testing.T) {
	h := NewHub(&fakeVerifier{})
	c, rec := connect(t, h, identityFor("A"))
	if err := h.join(c, "A"); err != nil {
		t.Fatalf("join: %v", err)
	}

	h.Close()
	if !rec.stopped {
		t.Fatal("close must stop sessions")
	}
	if h.ConnectionCount() != 0 {
		t.Fatalf("connections after close: %d", h.ConnectionCount())
	}
	if h.register(&client{}) {
		t.Fatal("register after close must be refused")
	}
	if err := h.join(c, "A"); err == nil {
		t.Fatal("join after close must be refused")
	}
}
