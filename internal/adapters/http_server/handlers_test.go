package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"guestlink/internal/app"
	"guestlink/internal/auth"
	"guestlink/internal/domain"
)

// memStore is an in-memory stand-in for the MySQL repo, tenant-scoped the
// same way the real statements are.
type memStore struct {
	hotels   map[string]domain.Hotel
	rooms    []domain.Room
	requests []domain.Request
	staff    map[string]domain.StaffAccount
	food     []domain.FoodItem
}

func (m *memStore) CreateHotel(ctx context.Context, h domain.Hotel) error {
	m.hotels[h.ID] = h
	return nil
}
func (m *memStore) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	h, ok := m.hotels[id]
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, nil
}
func (m *memStore) UpdateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	m.hotels[h.ID] = h
	return h, nil
}

func (m *memStore) ListRooms(ctx context.Context, hotelID string) ([]domain.Room, error) {
	var out []domain.Room
	for _, r := range m.rooms {
		if r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (m *memStore) GetRoomByNumber(ctx context.Context, hotelID, number string) (domain.Room, error) {
	for _, r := range m.rooms {
		if r.HotelID == hotelID && r.Number == number {
			return r, nil
		}
	}
	return domain.Room{}, domain.ErrNotFound
}
func (m *memStore) CreateRoom(ctx context.Context, r domain.Room) error {
	m.rooms = append(m.rooms, r)
	return nil
}
func (m *memStore) UpdateRoom(ctx context.Context, r domain.Room) (domain.Room, error) {
	for i, cur := range m.rooms {
		if cur.HotelID == r.HotelID && cur.ID == r.ID {
			m.rooms[i] = r
			return r, nil
		}
	}
	return domain.Room{}, domain.ErrNotFound
}
func (m *memStore) DeleteRoom(ctx context.Context, hotelID, id string) error {
	for i, r := range m.rooms {
		if r.HotelID == hotelID && r.ID == id {
			m.rooms = append(m.rooms[:i], m.rooms[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memStore) ListRequests(ctx context.Context, hotelID string) ([]domain.Request, error) {
	var out []domain.Request
	for i := len(m.requests) - 1; i >= 0; i-- {
		if m.requests[i].HotelID == hotelID {
			out = append(out, m.requests[i])
		}
	}
	return out, nil
}
func (m *memStore) CreateRequest(ctx context.Context, r domain.Request) error {
	m.requests = append(m.requests, r)
	return nil
}
func (m *memStore) UpdateRequest(ctx context.Context, hotelID, id string, p domain.RequestPatch) (domain.Request, error) {
	for i, r := range m.requests {
		if r.HotelID == hotelID && r.ID == id {
			if p.Status != nil {
				r.Status = *p.Status
			}
			if p.Priority != nil {
				r.Priority = *p.Priority
			}
			m.requests[i] = r
			return r, nil
		}
	}
	return domain.Request{}, domain.ErrNotFound
}

func (m *memStore) ListFood(ctx context.Context, hotelID string, availableOnly bool) ([]domain.FoodItem, error) {
	var out []domain.FoodItem
	for _, it := range m.food {
		if it.HotelID != hotelID || (availableOnly && !it.Available) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}
func (m *memStore) CreateFood(ctx context.Context, it domain.FoodItem) error {
	m.food = append(m.food, it)
	return nil
}
func (m *memStore) UpdateFood(ctx context.Context, it domain.FoodItem) (domain.FoodItem, error) {
	for i, cur := range m.food {
		if cur.HotelID == it.HotelID && cur.ID == it.ID {
			m.food[i] = it
			return it, nil
		}
	}
	return domain.FoodItem{}, domain.ErrNotFound
}
func (m *memStore) DeleteFood(ctx context.Context, hotelID, id string) error { return nil }

func (m *memStore) ListServices(ctx context.Context, hotelID string, availableOnly bool) ([]domain.ServiceItem, error) {
	return nil, nil
}
func (m *memStore) CreateService(ctx context.Context, it domain.ServiceItem) error { return nil }
func (m *memStore) UpdateService(ctx context.Context, it domain.ServiceItem) (domain.ServiceItem, error) {
	return it, nil
}
func (m *memStore) DeleteService(ctx context.Context, hotelID, id string) error { return nil }

func (m *memStore) ListComplaints(ctx context.Context, hotelID string, availableOnly bool) ([]domain.ComplaintItem, error) {
	return nil, nil
}
func (m *memStore) CreateComplaint(ctx context.Context, it domain.ComplaintItem) error { return nil }
func (m *memStore) UpdateComplaint(ctx context.Context, it domain.ComplaintItem) (domain.ComplaintItem, error) {
	return it, nil
}
func (m *memStore) DeleteComplaint(ctx context.Context, hotelID, id string) error { return nil }

func (m *memStore) GetStaffByEmail(ctx context.Context, email string) (domain.StaffAccount, error) {
	s, ok := m.staff[email]
	if !ok {
		return domain.StaffAccount{}, domain.ErrNotFound
	}
	return s, nil
}
func (m *memStore) CreateStaff(ctx context.Context, s domain.StaffAccount) error {
	m.staff[s.Email] = s
	return nil
}

type memCache struct{ entries map[string][]byte }

func (c *memCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}
func (c *memCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.entries[key] = b
	return nil
}
func (c *memCache) Del(ctx context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

type memNotifier struct{ published []domain.Request }

func (n *memNotifier) Publish(ctx context.Context, hotelID string, r domain.Request) error {
	n.published = append(n.published, r)
	return nil
}

type testEnv struct {
	srv      http.Handler
	tokens   *auth.TokenManager
	store    *memStore
	notifier *memNotifier
}

func allOn() domain.Settings {
	return domain.Settings{
		OrderFoodEnabled:     true,
		RoomServiceEnabled:   true,
		ComplaintEnabled:     true,
		CustomMessageEnabled: true,
		CallServiceEnabled:   true,
		SecurityAlertEnabled: true,
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := &memStore{
		hotels: map[string]domain.Hotel{
			"H1": {ID: "H1", Name: "Hotel One", Settings: allOn()},
			"H2": {ID: "H2", Name: "Hotel Two", Settings: allOn()},
		},
		rooms: []domain.Room{
			{ID: "r-101", HotelID: "H1", Number: "101", Active: true},
			{ID: "r-201", HotelID: "H2", Number: "201", Active: true},
		},
		staff: map[string]domain.StaffAccount{},
	}
	hash, err := auth.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	_ = store.CreateStaff(context.Background(), domain.StaffAccount{
		ID: "staff-1", HotelID: "H1", Email: "admin@h1.test", PasswordHash: hash, Role: domain.RoleAdmin,
	})

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	notifier := &memNotifier{}
	cache := &memCache{entries: map[string][]byte{}}

	srv := New()
	srv.MountHandlers(&Handlers{
		Auth:       auth.NewService(store, tokens),
		Verifier:   tokens,
		Classifier: app.NewClassifier(store, store, store, notifier),
		Requests:   app.NewRequestService(store, store, notifier),
		Admin:      app.NewAdminService(store, store, store, cache),
		Guest:      app.NewGuestService(store, store, store, cache, time.Minute),
		WS:         func(w http.ResponseWriter, r *http.Request) {},
		GuestRPS:   100,
		GuestBurst: 100,
	})
	return &testEnv{srv: srv.Mux(), tokens: tokens, store: store, notifier: notifier}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.srv.ServeHTTP(w, req)
	return w
}

func (e *testEnv) tokenFor(t *testing.T, hotelID, role string) string {
	t.Helper()
	tok, err := e.tokens.Issue(domain.StaffAccount{ID: "staff-x", HotelID: hotelID, Role: role})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return tok
}

func errMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body %q: %v", w.Body.String(), err)
	}
	return body.Message
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range []struct{ method, path string }{
		{"GET", "/v1/hotels/H1"},
		{"GET", "/v1/hotels/H1/requests"},
		{"POST", "/v1/hotels/H1/rooms"},
	} {
		w := env.do(t, tc.method, tc.path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: status %d", tc.method, tc.path, w.Code)
		}
		if errMessage(t, w) == "" {
			t.Fatalf("%s %s: empty error message", tc.method, tc.path)
		}
	}

	w := env.do(t, "GET", "/v1/hotels/H1/requests", "garbage-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: status %d", w.Code)
	}
}

func TestTenantGuard_CrossTenantIsForbidden(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "H1", domain.RoleAdmin)

	// H2 exists; the response must not differ for a hotel that does not
	for _, hotel := range []string{"H2", "H-missing"} {
		w := env.do(t, "GET", "/v1/hotels/"+hotel+"/requests", token, nil)
		if w.Code != http.StatusForbidden {
			t.Fatalf("hotel %s: status %d, want 403", hotel, w.Code)
		}
	}
}

func TestRequireAdmin(t *testing.T) {
	env := newTestEnv(t)
	staffToken := env.tokenFor(t, "H1", domain.RoleStaff)

	w := env.do(t, "PUT", "/v1/hotels/H1", staffToken, app.HotelInput{Name: "Renamed"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("staff role on admin route: status %d", w.Code)
	}

	adminToken := env.tokenFor(t, "H1", domain.RoleAdmin)
	w = env.do(t, "PUT", "/v1/hotels/H1", adminToken, app.HotelInput{Name: "Renamed"})
	if w.Code != http.StatusOK {
		t.Fatalf("admin role: status %d body %s", w.Code, w.Body.String())
	}
}

func TestLoginThenList(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/v1/auth/login", "", loginRequest{Email: "admin@h1.test", Password: "hunter2"})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status %d body %s", w.Code, w.Body.String())
	}
	var lr loginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &lr); err != nil {
		t.Fatalf("login body: %v", err)
	}
	if lr.Token == "" {
		t.Fatal("empty token")
	}
	if strings.Contains(w.Body.String(), "hunter2") {
		t.Fatal("password material leaked in login response")
	}

	w = env.do(t, "GET", "/v1/hotels/H1/requests", lr.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list with fresh token: status %d", w.Code)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []loginRequest{
		{Email: "admin@h1.test", Password: "wrong"},
		{Email: "nobody@h1.test", Password: "hunter2"},
	} {
		w := env.do(t, "POST", "/v1/auth/login", "", body)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("login %s: status %d", body.Email, w.Code)
		}
	}
}

func TestGuestSubmit(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]any{
		"type":       "order-food",
		"guestPhone": "9999999999",
		"orderDetails": map[string]any{
			"items": []map[string]any{{"name": "Tea", "quantity": 2}},
			"total": 40,
		},
	}
	w := env.do(t, "POST", "/v1/guest/H1/101/request", "", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: status %d body %s", w.Code, w.Body.String())
	}
	var req domain.Request
	if err := json.Unmarshal(w.Body.Bytes(), &req); err != nil {
		t.Fatalf("body: %v", err)
	}
	if req.Message != "Food order from Room 101. Items: Tea x2. Total: ₹40" {
		t.Fatalf("message: %q", req.Message)
	}
	if req.Status != domain.StatusPending || req.Priority != domain.PriorityMedium {
		t.Fatalf("defaults: %+v", req)
	}
	if len(env.notifier.published) != 1 || env.notifier.published[0].ID != req.ID {
		t.Fatalf("fan-out: %+v", env.notifier.published)
	}
}

func TestGuestSubmit_UnknownRoom(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]any{"type": "call-service-boy", "guestPhone": "1"}

	// room 999 does not exist; room 201 exists but in another hotel
	for _, room := range []string{"999", "201"} {
		w := env.do(t, "POST", "/v1/guest/H1/"+room+"/request", "", payload)
		if w.Code != http.StatusNotFound {
			t.Fatalf("room %s: status %d", room, w.Code)
		}
		if got := errMessage(t, w); got != "Room not found" {
			t.Fatalf("room %s: message %q", room, got)
		}
	}
}

func TestGuestSubmit_ValidationMessage(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]any{"type": "order-food", "orderDetails": map[string]any{}}
	w := env.do(t, "POST", "/v1/guest/H1/101/request", "", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
	msg := errMessage(t, w)
	if !strings.Contains(msg, "guestPhone") || !strings.Contains(msg, "orderDetails") {
		t.Fatalf("message must list every violation: %q", msg)
	}
}

func TestUpdateRequest_CrossTenantLooksAbsent(t *testing.T) {
	env := newTestEnv(t)
	env.store.requests = append(env.store.requests, domain.Request{
		ID: "req-h2", HotelID: "H2", Status: domain.StatusPending, Priority: domain.PriorityMedium,
	})
	token := env.tokenFor(t, "H1", domain.RoleStaff)

	// H1 staff patching an H2 request id under their own hotel path
	w := env.do(t, "PUT", "/v1/hotels/H1/requests/req-h2", token, map[string]string{"status": "completed"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
	if got := errMessage(t, w); got != "Request not found" {
		t.Fatalf("message %q", got)
	}
	if env.store.requests[0].Status != domain.StatusPending {
		t.Fatal("foreign-tenant request must be untouched")
	}
}

func TestUpdateRequest_EmptyPatchRejected(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "H1", domain.RoleStaff)

	w := env.do(t, "PUT", "/v1/hotels/H1/requests/whatever", token, map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d", w.Code)
	}
}

func TestGuestRateLimit(t *testing.T) {
	store := &memStore{hotels: map[string]domain.Hotel{}, staff: map[string]domain.StaffAccount{}}
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	cache := &memCache{entries: map[string][]byte{}}
	srv := New()
	srv.MountHandlers(&Handlers{
		Auth:       auth.NewService(store, tokens),
		Verifier:   tokens,
		Classifier: app.NewClassifier(store, store, store, &memNotifier{}),
		Requests:   app.NewRequestService(store, store, &memNotifier{}),
		Admin:      app.NewAdminService(store, store, store, cache),
		Guest:      app.NewGuestService(store, store, store, cache, time.Minute),
		WS:         func(w http.ResponseWriter, r *http.Request) {},
		GuestRPS:   1,
		GuestBurst: 2,
	})

	mux := srv.Mux()
	limited := false
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/v1/guest/H1/food-menu", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Fatal("burst of guest reads must hit the rate limit")
	}
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, "GET", "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
}
