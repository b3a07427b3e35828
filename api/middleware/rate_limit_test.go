package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stylehaulhq/stylehaul-backend/pkg/logger"
)

type memoryLimiter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newMemoryLimiter() *memoryLimiter {
	return &memoryLimiter{counts: map[string]int64{}}
}

func (m *memoryLimiter) FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[scope]++
	return m.counts[scope] <= limit, m.counts[scope], nil
}

func rateLimitTestLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func TestRateLimitBlocksUserOverLimit(t *testing.T) {
	policy := NewRateLimitPolicy("generate", time.Minute, 0, 2)
	store := newMemoryLimiter()

	calls := 0
	handler := RateLimit(policy, store, rateLimitTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/hauls/generate", nil)
		req = req.WithContext(WithUserID(req.Context(), "user-1"))
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)

		if i < 2 && resp.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200 got %d", i, resp.Code)
		}
		if i == 2 && resp.Code != http.StatusTooManyRequests {
			t.Fatalf("request %d: expected 429 got %d", i, resp.Code)
		}
	}
	if calls != 2 {
		t.Fatalf("expected 2 handled requests got %d", calls)
	}
}

func TestRateLimitTracksUsersSeparately(t *testing.T) {
	policy := NewRateLimitPolicy("generate", time.Minute, 0, 1)
	store := newMemoryLimiter()

	handler := RateLimit(policy, store, rateLimitTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for _, user := range []string{"user-a", "user-b"} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/hauls/generate", nil)
		req = req.WithContext(WithUserID(req.Context(), user))
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("user %s: expected 200 got %d", user, resp.Code)
		}
	}
}

func TestRateLimitBlocksByIP(t *testing.T) {
	policy := NewRateLimitPolicy("generate", time.Minute, 1, 0)
	store := newMemoryLimiter()

	handler := RateLimit(policy, store, rateLimitTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/hauls/generate", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9")
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)

		if i == 0 && resp.Code != http.StatusOK {
			t.Fatalf("expected first request allowed got %d", resp.Code)
		}
		if i == 1 && resp.Code != http.StatusTooManyRequests {
			t.Fatalf("expected second request blocked got %d", resp.Code)
		}
	}
}

func TestRateLimitDisabledPolicyPassesThrough(t *testing.T) {
	policy := NewRateLimitPolicy("generate", 0, 0, 0)

	called := false
	handler := RateLimit(policy, newMemoryLimiter(), rateLimitTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/hauls/generate", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if !called {
		t.Fatal("expected handler to run")
	}
}
