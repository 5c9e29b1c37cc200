package middleware

import (
	"net/http"
	"time"

	"storefront-settlement/internal/core/domain"
	"storefront-settlement/internal/core/ports"
	"storefront-settlement/pkg/apperror"
	"storefront-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID = "X-Request-ID"

	// Context keys
	CtxMerchantKey = "merchant"
)

// RequestID tags every request with an id, reusing the caller's
// X-Request-ID when it is a valid UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(response.RequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// SessionRequired rejects the request unless a merchant is signed in, and
// stores that merchant under CtxMerchantKey.
func SessionRequired(accounts ports.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		merchant := accounts.Current()
		if merchant == nil {
			response.Error(c, apperror.ErrNoSession())
			c.Abort()
			return
		}
		c.Set(CtxMerchantKey, merchant)
		c.Next()
	}
}

// Merchant returns the merchant stored by SessionRequired.
func Merchant(c *gin.Context) *domain.Merchant {
	v, ok := c.Get(CtxMerchantKey)
	if !ok {
		return nil
	}
	m, _ := v.(*domain.Merchant)
	return m
}

// MaxBodySize limits the request body. Reads past maxBytes fail, which the
// JSON binding reports as a validation error.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
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
			Str("request_id", c.GetString(response.RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
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
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
