package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "atlas:attempts"

// rateLimitKey groups attempts by route template so that /courses/:id shares
// one counter per caller.
func rateLimitKey(c *gin.Context) string {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	caller := c.GetString(ContextUserID)
	if caller == "" {
		caller = "ip:" + c.ClientIP()
	}
	return fmt.Sprintf("%s:%s:%s", rateLimitPrefix, route, caller)
}

// RateLimitMiddleware allows limit attempts per route and caller within a
// fixed window. Anonymous callers such as a login form are keyed by client
// IP. A nil client disables the limit.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil || limit <= 0 {
			c.Next()
			return
		}

		key := rateLimitKey(c)
		ctx := c.Request.Context()

		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
			return
		}
		if count == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			if ttl, err := redisClient.TTL(ctx, key).Result(); err == nil && ttl > 0 {
				c.Header("Retry-After", strconv.Itoa(int(math.Ceil(ttl.Seconds()))))
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many attempts, try again later"})
			return
		}

		c.Next()
	}
}
