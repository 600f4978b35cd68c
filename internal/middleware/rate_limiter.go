package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cafe/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RateLimiter is a fixed-window limiter keyed by client IP and shared by all
// replicas through redis. A nil client disables it, and redis failures let the
// request through.
func RateLimiter(rdb *redis.Client, prefix string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		bucket := time.Now().UnixNano() / int64(window)
		key := fmt.Sprintf("ratelimit:%s:%s:%d", prefix, c.ClientIP(), bucket)

		ctx := c.Request.Context()
		pipe := rdb.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		if incr.Val() > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}
