package handler

import (
	"context"
	"net/http"
	"strings"

	"redeem-server/internal/apierrors"
	authHandler "redeem-server/internal/auth/handler"
	authProcessor "redeem-server/internal/auth/processor"
	"redeem-server/internal/merch/processor"
	"redeem-server/internal/observability"
	"redeem-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	idempotencyKeyHeader    = "Idempotency-Key"
	maxIdempotencyKeyLength = 255
)

// MerchProcessor is the processor surface the handler drives.
type MerchProcessor interface {
	ListCatalog(ctx context.Context) ([]store.Product, error)
	Quote(ctx context.Context, identity authProcessor.Identity, req processor.QuoteRequest) (processor.QuoteResponse, error)
	Redeem(ctx context.Context, identity authProcessor.Identity, req processor.RedeemRequest) (processor.RedeemResponse, error)
}

type Handler struct {
	processor MerchProcessor
	logger    *observability.Logger
}

func New(processor MerchProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// QuoteRequest is the HTTP body for a quote
type QuoteRequest struct {
	ProductID      string `json:"productId" binding:"required,uuid"`
	CreditsApplied int    `json:"creditsApplied" binding:"min=0"`
}

// RedeemRequest is the HTTP body for a redemption
type RedeemRequest struct {
	ProductID      string           `json:"productId" binding:"required,uuid"`
	CreditsApplied int              `json:"creditsApplied" binding:"min=0"`
	CashPayment    *decimal.Decimal `json:"cashPayment" binding:"required"`
	Email          string           `json:"email,omitempty" binding:"omitempty,email"`
}

// HandleListCatalog returns every in-stock product
func (h *Handler) HandleListCatalog(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := h.processor.ListCatalog(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// HandleQuote prices a product for the signed-in user
func (h *Handler) HandleQuote(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := authHandler.CurrentIdentity(c)
	if !ok {
		h.logger.Error(ctx, "identity not found in context", nil)
		apierrors.RespondWithError(c, authProcessor.ErrMissingToken)
		return
	}

	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.logger.InfoWithError(ctx, "failed to parse product ID", err)
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid product ID format"))
		return
	}

	quote, err := h.processor.Quote(ctx, identity, processor.QuoteRequest{
		ProductID:      productID,
		CreditsApplied: req.CreditsApplied,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// HandleRedeem settles a purchase. A replayed idempotency key answers 200
// with the original order instead of 201.
func (h *Handler) HandleRedeem(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := authHandler.CurrentIdentity(c)
	if !ok {
		h.logger.Error(ctx, "identity not found in context", nil)
		apierrors.RespondWithError(c, authProcessor.ErrMissingToken)
		return
	}

	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.logger.InfoWithError(ctx, "failed to parse product ID", err)
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid product ID format"))
		return
	}

	idempotencyKey := strings.TrimSpace(c.GetHeader(idempotencyKeyHeader))
	if len(idempotencyKey) > maxIdempotencyKeyLength {
		ctx = observability.WithFields(ctx, observability.Field{Key: "idempotency_key_length", Value: len(idempotencyKey)})
		h.logger.Info(ctx, "rejected oversized idempotency key")
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Idempotency-Key must be at most 255 characters"))
		return
	}

	resp, err := h.processor.Redeem(ctx, identity, processor.RedeemRequest{
		ProductID:      productID,
		CreditsApplied: req.CreditsApplied,
		CashPayment:    *req.CashPayment,
		Email:          req.Email,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	status := http.StatusCreated
	if resp.Replayed {
		status = http.StatusOK
		ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: resp.Order.ID.String()})
		h.logger.Info(ctx, "redemption replayed")
	}
	c.JSON(status, resp)
}
