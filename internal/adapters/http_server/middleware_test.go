package httpserver

import (
	"bufio"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
)

// hijackableRecorder wraps httptest.ResponseRecorder to implement http.Hijacker.
type hijackableRecorder struct {
	*httptest.ResponseRecorder
}

func (h *hijackableRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return nil, nil, nil
}

func TestSRW_Hijack(t *testing.T) {
	inner := &hijackableRecorder{httptest.NewRecorder()}
	w := &srw{ResponseWriter: inner}

	hj, ok := http.ResponseWriter(w).(http.Hijacker)
	if !ok {
		t.Fatal("srw does not implement http.Hijacker")
	}
	if _, _, err := hj.Hijack(); err != nil {
		t.Fatalf("hijack must delegate: %v", err)
	}
}

func TestSRW_HijackWithoutUpstream(t *testing.T) {
	w := &srw{ResponseWriter: httptest.NewRecorder()}
	hj := http.ResponseWriter(w).(http.Hijacker)
	if _, _, err := hj.Hijack(); err == nil {
		t.Fatal("expected error when upstream does not implement Hijacker")
	}
}

func TestSRW_DefaultStatus(t *testing.T) {
	w := &srw{ResponseWriter: httptest.NewRecorder()}
	if w.Status() != http.StatusOK {
		t.Fatalf("status before write: %d", w.Status())
	}
	_, _ = w.Write([]byte("x"))
	if w.Status() != http.StatusOK {
		t.Fatalf("status after bare write: %d", w.Status())
	}
}

func TestSRW_RecordsFirstStatus(t *testing.T) {
	w := &srw{ResponseWriter: httptest.NewRecorder()}
	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusOK) // ignored
	if w.Status() != http.StatusNotFound {
		t.Fatalf("status: %d", w.Status())
	}
}

func TestRemoteIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.9:4321"
	if got := remoteIP(r); got != "10.0.0.9" {
		t.Fatalf("remote addr: %q", got)
	}

	r.Header.Set("X-Real-IP", "203.0.113.7")
	if got := remoteIP(r); got != "203.0.113.7" {
		t.Fatalf("x-real-ip: %q", got)
	}

	r.Header.Set("X-Forwarded-For", "198.51.100.2, 10.0.0.1")
	if got := remoteIP(r); got != "198.51.100.2" {
		t.Fatalf("xff: %q", got)
	}
}
