package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllowWithinLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4:/api/contact") {
			t.Fatalf("request %d unexpectedly limited", i+1)
		}
	}
	if rl.Allow("1.2.3.4:/api/contact") {
		t.Fatal("expected fourth request to be limited")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	if !rl.Allow("1.2.3.4:/api/contact") {
		t.Fatal("first key unexpectedly limited")
	}
	if !rl.Allow("5.6.7.8:/api/contact") {
		t.Fatal("second key unexpectedly limited")
	}
	if !rl.Allow("1.2.3.4:/api/meeting-request") {
		t.Fatal("same IP on another path unexpectedly limited")
	}
}

func TestRateLimiterWindowResets(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)
	if !rl.Allow("k") {
		t.Fatal("first request unexpectedly limited")
	}
	if rl.Allow("k") {
		t.Fatal("expected second request to be limited")
	}
	time.Sleep(15 * time.Millisecond)
	if !rl.Allow("k") {
		t.Fatal("expected allowance after window reset")
	}
}

func TestRateLimiterMiddlewareResponse(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	handler := rl.Middleware(next)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = "9.9.9.9:1234"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected first request to pass, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Body.String() != `{"error":"rate limit exceeded"}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
