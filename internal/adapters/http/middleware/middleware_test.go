package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type stubLimiter struct {
	decision RateDecision
	err      error
	keys     []string
}

func (s *stubLimiter) Allow(_ context.Context, key string, _ int, _ time.Duration) (RateDecision, error) {
	s.keys = append(s.keys, key)
	return s.decision, s.err
}

func serve(engine *gin.Engine, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	if userID != "" {
		req.Header.Set(UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("keys by user when present", func(t *testing.T) {
		limiter := &stubLimiter{decision: RateDecision{Allowed: true, Remaining: 1}}
		engine := gin.New()
		engine.POST("/orders", RateLimit(limiter, 2, time.Minute), func(c *gin.Context) { c.Status(http.StatusCreated) })

		rec := serve(engine, "user1")

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if limiter.keys[0] != "POST:/orders:user1" {
			t.Fatalf("expected user key, got %q", limiter.keys[0])
		}
	})

	t.Run("limiter failure lets the request through", func(t *testing.T) {
		limiter := &stubLimiter{err: errors.New("redis down")}
		engine := gin.New()
		engine.POST("/orders", RateLimit(limiter, 2, time.Minute), func(c *gin.Context) { c.Status(http.StatusCreated) })

		if rec := serve(engine, ""); rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
	})

	t.Run("denied request is 429 with retry hint", func(t *testing.T) {
		limiter := &stubLimiter{decision: RateDecision{Allowed: false, ResetAfter: 200 * time.Millisecond}}
		engine := gin.New()
		engine.POST("/orders", RateLimit(limiter, 2, time.Minute), func(c *gin.Context) { c.Status(http.StatusCreated) })

		rec := serve(engine, "user1")

		if rec.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", rec.Code)
		}
		if rec.Header().Get("Retry-After") != "1" {
			t.Fatalf("expected Retry-After 1, got %q", rec.Header().Get("Retry-After"))
		}
	})
}

func TestRequireUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/orders", RequireUserID(), func(c *gin.Context) {
		c.String(http.StatusOK, string(UserID(c)))
	})

	if rec := serve(engine, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec := serve(engine, "waytoolongid123"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for long id, got %d", rec.Code)
	}

	rec := serve(engine, "user1")
	if rec.Code != http.StatusOK || rec.Body.String() != "user1" {
		t.Fatalf("expected user1, got %d %q", rec.Code, rec.Body.String())
	}
}
