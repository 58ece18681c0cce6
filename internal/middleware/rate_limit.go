package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitConfig configures the rate limiter
type RateLimitConfig struct {
	RequestsPerMinute int
	KeyPrefix         string
	Message           string
}

// DefaultRateLimitConfig returns default rate limit configuration
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerMinute: 120,
		KeyPrefix:         "api:ratelimit:",
		Message:           "요청이 너무 많습니다. 잠시 후 다시 시도해주세요.",
	}
}

// rateLimitScript is an atomic Lua script for sliding window rate limiting
var rateLimitScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local now = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, 0, now - window)
local count = redis.call('ZCARD', key)

if count < limit then
    redis.call('ZADD', key, now, now .. ':' .. math.random(1000000))
    redis.call('EXPIRE', key, math.ceil(window / 1000) + 1)
    return {1, limit - count - 1, 0}
else
    local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
    local reset_at = 0
    if #oldest >= 2 then
        reset_at = tonumber(oldest[2]) + window
    end
    return {0, 0, reset_at}
end
`)

// RateLimit returns a gin middleware that rate limits by client IP
func RateLimit(redisClient *redis.Client, cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil {
			c.Next()
			return
		}

		key := cfg.KeyPrefix + c.ClientIP()
		allowed, remaining, resetAt, err := runLimiter(redisClient, key, cfg.RequestsPerMinute)
		if err != nil {
			// Fail open — allow request if Redis error
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerMinute))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if !allowed {
			now := time.Now().UnixMilli()
			retryAfter := (resetAt - now) / 1000
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", resetAt/1000))
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			abortRateLimited(c, cfg.Message)
			return
		}

		c.Next()
	}
}

// RateLimitPerUser returns a rate limiter keyed by user ID instead of IP.
// 신고 접수, 인증 제출처럼 남용되기 쉬운 경로에 사용한다.
func RateLimitPerUser(redisClient *redis.Client, requestsPerMinute int, keyPrefix string) gin.HandlerFunc {
	message := "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."

	return func(c *gin.Context) {
		if redisClient == nil {
			c.Next()
			return
		}

		key := keyPrefix
		if userID := GetUserID(c); userID != 0 {
			key += strconv.FormatUint(userID, 10)
		} else {
			key += "ip:" + c.ClientIP()
		}

		allowed, remaining, _, err := runLimiter(redisClient, key, requestsPerMinute)
		if err != nil {
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(requestsPerMinute))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if !allowed {
			abortRateLimited(c, message)
			return
		}

		c.Next()
	}
}

func runLimiter(redisClient *redis.Client, key string, limit int) (allowed bool, remaining, resetAt int64, err error) {
	now := time.Now().UnixMilli()
	windowMs := int64(60 * 1000) // 1 minute

	result, err := rateLimitScript.Run(context.Background(), redisClient, []string{key},
		limit, windowMs, now,
	).Int64Slice()
	if err != nil {
		return false, 0, 0, err
	}
	return result[0] == 1, result[1], result[2], nil
}

func abortRateLimited(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"success": false,
		"error":   gin.H{"code": "RATE_LIMITED", "message": message},
	})
}
