package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"transactions-saga/internal/adapter/http/middleware"
	redisStore "transactions-saga/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(t *testing.T) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := redisStore.NewRateLimitStore(client)
	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}

	r := gin.New()
	r.POST("/transactions", middleware.RateLimiter(store, "test", rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r, mr
}

func post(r *gin.Engine, clientID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transactions", nil)
	if clientID != "" {
		req.Header.Set(middleware.HeaderClientID, clientID)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router, _ := setupRateLimitRouter(t)

	for i := 0; i < 3; i++ {
		w := post(router, "CHECKOUT")
		assert.Equal(t, http.StatusOK, w.Code, "request %d should succeed", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router, _ := setupRateLimitRouter(t)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, post(router, "CHECKOUT").Code)
	}

	w := post(router, "CHECKOUT")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiter_SeparatesClients(t *testing.T) {
	router, _ := setupRateLimitRouter(t)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, post(router, "CHECKOUT").Code)
	}
	assert.Equal(t, http.StatusOK, post(router, "IO").Code, "independent counter per client")
}

func TestRateLimiter_DegradedMode(t *testing.T) {
	router, mr := setupRateLimitRouter(t)
	mr.Close()

	w := post(router, "CHECKOUT")
	assert.Equal(t, http.StatusOK, w.Code, "store failures let requests through")
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules()
	assert.Equal(t, int64(30), rules["transactions_create"].Limit)
	assert.Equal(t, int64(120), rules["transactions_read"].Limit)
	assert.Equal(t, int64(10), rules["auth_requests"].Limit)
	assert.Equal(t, int64(600), rules["outcomes"].Limit)
	for group, rule := range rules {
		assert.Equal(t, time.Minute, rule.Window, group)
	}
}
