package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tag-ledger/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serve(e *echo.Echo, handler echo.HandlerFunc, setup func(*http.Request, echo.Context)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "192.168.1.100:12345"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(req, c)
	}
	_ = handler(c)
	return rec
}

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(config.SecurityConfig{RateLimitPerSecond: 1, RateLimitBurst: 5})
	handler := limiter.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(e, handler, nil).Code, "request %d within burst", i)
	}

	rec := serve(e, handler, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_005")
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(config.SecurityConfig{RateLimitPerSecond: 1, RateLimitBurst: 1})
	handler := limiter.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	asUser := func(id string) func(*http.Request, echo.Context) {
		return func(_ *http.Request, c echo.Context) { c.Set("user_id", id) }
	}

	assert.Equal(t, http.StatusOK, serve(e, handler, asUser("alice")).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(e, handler, asUser("alice")).Code)
	assert.Equal(t, http.StatusOK, serve(e, handler, asUser("bob")).Code)
	assert.Equal(t, http.StatusOK, serve(e, handler, func(r *http.Request, _ echo.Context) {
		r.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	}).Code)
}

func TestRateLimiter_Sweep(t *testing.T) {
	limiter := NewRateLimiter(config.SecurityConfig{})
	limiter.allow("ip:1.1.1.1")
	limiter.allow("ip:2.2.2.2")

	assert.Equal(t, 0, limiter.sweep(time.Now()))
	assert.Equal(t, 2, limiter.sweep(time.Now().Add(visitorIdleTimeout+time.Second)))
	assert.Empty(t, limiter.visitors)
}
