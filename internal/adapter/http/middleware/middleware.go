package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"
	"transactions-saga/pkg/apperror"
	"transactions-saga/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderAPIKey    = "X-Api-Key"
	HeaderRequestID = "X-Request-Id"
	HeaderClientID  = "X-Client-Id"
	HeaderUserID    = "X-User-Id"

	// CtxTransactionClaims holds the *ports.TokenClaims of an authenticated request.
	CtxTransactionClaims = "transaction_claims"
)

// RequestID propagates the caller's request id, generating one when absent.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(response.RequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// TransactionAuth validates the bearer token issued at activation. The token
// is bound to a single transaction: the :id path parameter must match it.
func TransactionAuth(tokens ports.TokenIssuer, audience string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenStr, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenStr == "" {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		claims, err := tokens.Validate(tokenStr, audience)
		if err != nil {
			log.Debug().Err(err).Msg("transaction token rejected")
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		if id := c.Param("id"); id != "" && domain.TransactionID(id) != claims.TransactionID {
			response.Error(c, apperror.ErrForbidden())
			c.Abort()
			return
		}

		c.Set(CtxTransactionClaims, claims)
		c.Next()
	}
}

// InternalAPIKey guards the callbacks reserved to internal callers.
// An empty key disables the check.
func InternalAPIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}
		if subtle.ConstantTimeCompare([]byte(c.GetHeader(HeaderAPIKey)), []byte(key)) != 1 {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(response.RequestIDKey)).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": apperror.CodeInternal,
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
