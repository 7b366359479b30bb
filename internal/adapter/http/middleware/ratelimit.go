package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "transactions-saga/internal/adapter/storage/redis"
	"transactions-saga/internal/core/ports"
	"transactions-saga/pkg/apperror"
	"transactions-saga/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the limits per endpoint group.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"transactions_create": {Limit: 30, Window: time.Minute},
		"transactions_read":   {Limit: 120, Window: time.Minute},
		"auth_requests":       {Limit: 10, Window: time.Minute},
		"outcomes":            {Limit: 600, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// Store failures let the request through.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retryAfter := int64(time.Until(result.ResetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys authenticated requests by transaction and the rest
// by client channel and address.
func extractIdentifier(c *gin.Context) string {
	if v, ok := c.Get(CtxTransactionClaims); ok {
		if claims, ok := v.(*ports.TokenClaims); ok {
			return claims.TransactionID.String()
		}
	}
	if client := c.GetHeader(HeaderClientID); client != "" {
		return client + ":" + c.ClientIP()
	}
	return c.ClientIP()
}
