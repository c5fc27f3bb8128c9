package handler

import (
	"context"
	"net/http"

	"redeem-server/internal/apierrors"
	authHandler "redeem-server/internal/auth/handler"
	authProcessor "redeem-server/internal/auth/processor"
	"redeem-server/internal/observability"
	"redeem-server/internal/store"

	"github.com/gin-gonic/gin"
)

// UserProcessor is the processor surface the handler drives.
type UserProcessor interface {
	FindByEmail(ctx context.Context, identity authProcessor.Identity, email string) (store.User, error)
	ListOrders(ctx context.Context, identity authProcessor.Identity) ([]store.Order, error)
}

type Handler struct {
	processor UserProcessor
	logger    *observability.Logger
}

func New(processor UserProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleGetProfile returns the user registered under ?email=
func (h *Handler) HandleGetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := authHandler.CurrentIdentity(c)
	if !ok {
		h.logger.Error(ctx, "identity not found in context", nil)
		apierrors.RespondWithError(c, authProcessor.ErrMissingToken)
		return
	}

	user, err := h.processor.FindByEmail(ctx, identity, c.Query("email"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// HandleListOrders returns the caller's order history
func (h *Handler) HandleListOrders(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := authHandler.CurrentIdentity(c)
	if !ok {
		h.logger.Error(ctx, "identity not found in context", nil)
		apierrors.RespondWithError(c, authProcessor.ErrMissingToken)
		return
	}

	orders, err := h.processor.ListOrders(ctx, identity)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
