package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiter_RefillsAfterWindow(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		if ok, _ := limiter.Allow("10.0.0.1"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	now = now.Add(20 * time.Second)
	ok, retryAfter := limiter.Allow("10.0.0.1")
	if ok {
		t.Fatalf("third request should be rejected")
	}
	if retryAfter != 40*time.Second {
		t.Errorf("expected retry after 40s, got %s", retryAfter)
	}

	if ok, _ := limiter.Allow("10.0.0.2"); !ok {
		t.Errorf("other clients have their own bucket")
	}

	now = now.Add(time.Minute)
	if ok, _ := limiter.Allow("10.0.0.1"); !ok {
		t.Errorf("bucket should refill after the window")
	}
}

func TestRateLimiter_ZeroCapacity(t *testing.T) {
	limiter := NewRateLimiter(0, time.Minute)
	defer limiter.Stop()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	if ok, _ := limiter.Allow("10.0.0.1"); !ok {
		t.Fatalf("first request should be allowed")
	}
	ok, retryAfter := limiter.Allow("10.0.0.1")
	if ok {
		t.Fatalf("second request should be rejected")
	}
	if retryAfter != time.Minute {
		t.Errorf("expected retry after a full window, got %s", retryAfter)
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.Allow("10.0.0.1")
	now = now.Add(2 * bucketCleanupThreshold)
	limiter.cleanup()

	if len(limiter.clients) != 0 {
		t.Errorf("expected idle buckets to be dropped, got %d", len(limiter.clients))
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter(1, time.Hour)
	defer limiter.Stop()

	router, _ := newTestRouter(limiter)
	body := `{"principal": 1000, "annual_rate_percent": 5, "term_years": 1}`

	if w := post(router, "/loan/calculate", body); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w := post(router, "/loan/calculate", body)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Errorf("expected a Retry-After header")
	}

	// health checks are never limited
	hw := httptest.NewRecorder()
	router.ServeHTTP(hw, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if hw.Code != http.StatusOK {
		t.Errorf("expected 200 for /healthz, got %d", hw.Code)
	}
}
