package handler

import (
	"transactions-saga/internal/adapter/http/middleware"
	redisStore "transactions-saga/internal/adapter/storage/redis"
	"transactions-saga/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Services       TransactionServices
	Tokens         ports.TokenIssuer
	TokenAudience  string
	InternalAPIKey string                    // empty = internal callbacks unauthenticated
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Registry       *prometheus.Registry // nil = no /metrics endpoint
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20))
	if deps.Registry != nil {
		r.Use(middleware.NewHTTPMetrics(deps.Registry).Handler())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	h := NewTransactionHandler(deps.Services)
	tokenAuth := middleware.TransactionAuth(deps.Tokens, deps.TokenAudience, deps.Logger)
	internal := middleware.InternalAPIKey(deps.InternalAPIKey)

	transactions := r.Group("/api/v1/transactions")
	{
		transactions.POST("", rl("transactions_create"), h.Create)
		transactions.GET("/:id", tokenAuth, rl("transactions_read"), h.Get)
		transactions.DELETE("/:id", tokenAuth, rl("transactions_read"), h.Cancel)
		transactions.POST("/:id/auth-requests", tokenAuth, rl("auth_requests"), h.RequestAuthorization)

		// Gateway and notification callbacks.
		transactions.PATCH("/:id/auth-requests", internal, rl("outcomes"), h.CompleteAuthorization)
		transactions.POST("/:id/user-receipts", internal, rl("outcomes"), h.RequestUserReceipt)
	}

	return r
}
