package middleware

import (
	"context"
	"fmt"
	"math"
	"time"

	"fruitarians-api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisLimitWindow = time.Second

// RedisRateLimitMiddleware enforces a fixed one-second window per client IP
// shared by every instance using the same Redis. Redis failures let the
// request through.
func RedisRateLimitMiddleware(client redis.Cmdable, rps float64, burst int) gin.HandlerFunc {
	limit := int64(math.Max(math.Ceil(rps), float64(burst)))
	if limit < 1 {
		limit = 1
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		window := time.Now().Unix()
		key := fmt.Sprintf("ratelimit:%s:%d", ip, window)

		count, err := incrWindow(c.Request.Context(), client, key)
		if err != nil {
			logger.Warn("Rate limiter unavailable",
				zap.String("request_id", GetRequestID(c)),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if count > limit {
			rejectRateLimited(c, ip)
			return
		}

		c.Next()
	}
}

func incrWindow(ctx context.Context, client redis.Cmdable, key string) (int64, error) {
	pipe := client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 2*redisLimitWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
