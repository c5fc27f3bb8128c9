package handler

import (
	"context"
	"net/http"

	"redeem-server/internal/apierrors"
	"redeem-server/internal/observability"
	"redeem-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LaneProcessor is the processor surface the handler drives.
type LaneProcessor interface {
	ListByImpact(ctx context.Context) ([]store.Lane, error)
	GetLane(ctx context.Context, laneID uuid.UUID) (store.Lane, error)
	TransitionState(ctx context.Context, laneID uuid.UUID, state string) (store.Lane, error)
}

type Handler struct {
	processor LaneProcessor
	logger    *observability.Logger
}

func New(processor LaneProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// TransitionStateRequest is the HTTP body for a lane state change
type TransitionStateRequest struct {
	State string `json:"state" binding:"required"`
}

// HandleListByImpact returns lanes ranked by impact score
func (h *Handler) HandleListByImpact(c *gin.Context) {
	ctx := c.Request.Context()

	lanes, err := h.processor.ListByImpact(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, lanes)
}

// HandleGetLane returns one lane
func (h *Handler) HandleGetLane(c *gin.Context) {
	ctx := c.Request.Context()

	laneID, ok := h.parseLaneID(c)
	if !ok {
		return
	}

	lane, err := h.processor.GetLane(ctx, laneID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, lane)
}

// HandleTransitionState overwrites a lane's state
func (h *Handler) HandleTransitionState(c *gin.Context) {
	ctx := c.Request.Context()

	laneID, ok := h.parseLaneID(c)
	if !ok {
		return
	}

	var req TransitionStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	lane, err := h.processor.TransitionState(ctx, laneID, req.State)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "lane_id", Value: lane.ID.String()},
		observability.Field{Key: "state", Value: lane.State},
	)
	h.logger.Info(ctx, "lane state updated")

	c.JSON(http.StatusOK, lane)
}

func (h *Handler) parseLaneID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("lane_id")
	laneID, err := uuid.Parse(raw)
	if err != nil {
		ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "lane_id", Value: raw})
		h.logger.InfoWithError(ctx, "failed to parse lane ID", err)
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid lane ID format"))
		return uuid.UUID{}, false
	}
	return laneID, true
}
