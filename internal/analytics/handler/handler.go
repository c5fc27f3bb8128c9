package handler

import (
	"context"
	"net/http"

	"redeem-server/internal/analytics/processor"
	"redeem-server/internal/apierrors"
	authHandler "redeem-server/internal/auth/handler"
	authProcessor "redeem-server/internal/auth/processor"
	"redeem-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// AnalyticsProcessor is the processor surface the handler drives.
type AnalyticsProcessor interface {
	GetMetrics(ctx context.Context, identity authProcessor.Identity, req processor.MetricsRequest) (processor.AggregateResponse, error)
}

type Handler struct {
	processor AnalyticsProcessor
	logger    *observability.Logger
}

func New(processor AnalyticsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleGetMetrics returns counter totals and history since the given date
func (h *Handler) HandleGetMetrics(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := authHandler.CurrentIdentity(c)
	if !ok {
		h.logger.Error(ctx, "identity not found in context", nil)
		apierrors.RespondWithError(c, authProcessor.ErrMissingToken)
		return
	}

	since := c.Query("since")
	ctx = observability.WithFields(ctx, observability.Field{Key: "since", Value: since})
	h.logger.Debug(ctx, "metrics requested")

	metrics, err := h.processor.GetMetrics(ctx, identity, processor.MetricsRequest{
		Since: since,
		Email: c.Query("email"),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}
