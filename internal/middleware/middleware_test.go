package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"tasks-timeline/internal/middleware"
	"tasks-timeline/pkg/log"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.TraceID(c.Request.Context()))
	})
	return r
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(log.NewNop(), 0)
	r := newEngine(mw.RequestID())

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(middleware.RequestIDHeader)
		if id == "" {
			t.Fatal("expected generated request id")
		}
		if w.Body.String() != id {
			t.Errorf("trace id in context = %q, want %q", w.Body.String(), id)
		}
	})

	t.Run("keeps caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		r.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.RequestIDHeader); got != "abc-123" {
			t.Errorf("request id = %q, want abc-123", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name     string
		perMin   int
		requests int
		wantLast int
	}{
		{"disabled", 0, 50, http.StatusOK},
		{"burst exhausted", 60, 7, http.StatusTooManyRequests},
		{"within burst", 60, 6, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := middleware.New(log.NewNop(), tt.perMin)
			r := newEngine(mw.RateLimit())

			var last int
			for i := 0; i < tt.requests; i++ {
				w := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, "/ping", nil)
				req.RemoteAddr = "10.0.0.1:1234"
				r.ServeHTTP(w, req)
				last = w.Code
			}
			if last != tt.wantLast {
				t.Errorf("last status = %d, want %d", last, tt.wantLast)
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.2:1234"
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("other client status = %d, want 200", w.Code)
			}
		})
	}
}

func TestRateLimitConcurrentFirstRequests(t *testing.T) {
	// 10 per minute gives a burst of 1.
	mw := middleware.New(log.NewNop(), 10)
	r := newEngine(mw.RateLimit())

	const clients = 32
	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		allowed atomic.Int32
	)
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.9:1234"
			r.ServeHTTP(w, req)
			if w.Code == http.StatusOK {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Errorf("allowed = %d, want 1", got)
	}
}
