package ratelimit

import (
	"fmt"
	"net/http"

	"redeem-server/internal/apierrors"
	authHandler "redeem-server/internal/auth/handler"
	"redeem-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits signed-in users. It must run after the JWT middleware;
// requests without an identity pass through. A limiter outage lets the
// request through.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		identity, ok := authHandler.CurrentIdentity(c)
		if !ok {
			c.Next()
			return
		}

		result, err := s.CheckRateLimit(ctx, identity.UserID)
		if err != nil {
			s.logger.InfoWithError(ctx, "rate limit check failed, allowing request", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			retryAfterSeconds := (result.RetryAfterMs + 999) / 1000
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfterSeconds))

			ctx = observability.WithFields(ctx,
				observability.Field{Key: "limit", Value: result.Limit},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			)
			s.logger.Warn(ctx, "rate limit exceeded")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierrors.ErrorResponse{
				Message: "Too many requests. Please slow down.",
				Code:    apierrors.CodeRateLimitExceeded,
			})
			return
		}

		c.Next()
	}
}
