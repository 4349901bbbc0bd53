package middleware

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	redisStore "github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/storage/redis"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/apperror"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the rate limits per endpoint group.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"reads":  {Limit: 120, Window: time.Minute},
		"vault":  {Limit: 30, Window: time.Minute},
		"relay":  {Limit: 30, Window: time.Minute},
		"tokens": {Limit: 30, Window: time.Minute},
		"bridge": {Limit: 60, Window: time.Minute},
		"faucet": {Limit: 5, Window: time.Hour},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := extractIdentifier(c)
		key := fmt.Sprintf("%s:%s", identifier, group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
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

// extractIdentifier keys signed requests by the verified signer and
// everything else by client IP. The caller header alone proves nothing.
func extractIdentifier(c *gin.Context) string {
	if caller, ok := Caller(c); ok {
		return strings.ToLower(caller.Hex())
	}
	return c.ClientIP()
}
