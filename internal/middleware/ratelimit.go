package middleware

import (
	"errors"
	"strconv"

	"github.com/zungle102/shiftrec-sub000/config"
	"github.com/zungle102/shiftrec-sub000/internal/core"
	"github.com/zungle102/shiftrec-sub000/internal/database/redis/repository"
	cErr "github.com/zungle102/shiftrec-sub000/internal/pkg/error"
	"github.com/zungle102/shiftrec-sub000/internal/pkg/response"
	"github.com/zungle102/shiftrec-sub000/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// 帳號級固定視窗（每分鐘）
const rateLimitWindowSeconds int64 = 60

type RateLimit struct {
	trace                 *telemetry.Trace
	config                *config.Configuration
	rateLimiterRepository *repository.RateLimiterRepository
}

func NewRateLimit(
	trace *telemetry.Trace,
	config *config.Configuration,
	rateLimiterRepository *repository.RateLimiterRepository,
) *RateLimit {
	return &RateLimit{
		trace:                 trace,
		config:                config,
		rateLimiterRepository: rateLimiterRepository,
	}
}

func (middleware *RateLimit) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 未設定上限 => 不限流
		limitCount := middleware.config.Auth.RateLimitPerMinute
		if limitCount <= 0 {
			c.Next()
			return
		}

		ctx, _, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRateLimitMiddleware))

		// 從 Session middleware 放進 gin.Context 的資訊
		ownerEmail := c.GetString(core.ContextOwnerEmailKey)
		if ownerEmail == "" {
			cause := cErr.Unauthorized("missing session context")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		remaining, ttlSec, consumeErr := middleware.rateLimiterRepository.Consume(
			ctx,
			ownerEmail,
			rateLimitWindowSeconds,
			limitCount,
		)

		// 寫入回應標頭，方便呼叫端與排錯
		c.Header("X-RateLimit-Limit", strconv.Itoa(limitCount))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if ttlSec > 0 {
			c.Header("X-RateLimit-Reset", strconv.FormatInt(ttlSec, 10))
		}

		if consumeErr != nil {
			if errors.Is(consumeErr, repository.ErrRateLimitExceeded) {
				if ttlSec > 0 {
					c.Header("Retry-After", strconv.FormatInt(ttlSec, 10))
				}
				cause := cErr.RateLimitExceeded("rate limit exceeded")
				response.AbortWithError(c, cause)
				end(cause)
				return
			}
			// 風險控制：Redis 讀寫錯誤不阻斷主流程
			end(nil)
			c.Next()
			return
		}
		end(nil)
		c.Next()
	}
}
