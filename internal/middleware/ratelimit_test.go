package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yaritu/core/internal/middleware"
)

func TestRateLimiter_Allow(t *testing.T) {
	limiter := middleware.NewInMemoryRateLimiter(2, time.Minute)

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))

	// Other keys have their own budget.
	assert.True(t, limiter.Allow("5.6.7.8"))
}

func TestRateLimiter_WindowExpiry(t *testing.T) {
	limiter := middleware.NewInMemoryRateLimiter(1, 50*time.Millisecond)

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, limiter.Allow("1.2.3.4"))
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(1, time.Minute)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest("GET", "/", nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
