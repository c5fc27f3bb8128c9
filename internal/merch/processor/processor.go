package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	authProcessor "redeem-server/internal/auth/processor"
	"redeem-server/internal/observability"
	"redeem-server/internal/pricing"
	"redeem-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrInsufficientCredits  = errors.New("not enough credits")
	ErrInvalidCredits       = errors.New("credits applied must not be negative")
	ErrPaymentMismatch      = errors.New("cash payment does not match the quote")
	ErrIdempotencyConflict  = errors.New("idempotency key reused with different parameters")
	ErrRedemptionInProgress = errors.New("another redemption is in progress for this user")
	ErrEmailMismatch        = errors.New("email does not match the authenticated user")
)

const (
	lockKeyPrefix  = "redeem:lock:"
	defaultLockTTL = 10 * time.Second

	completedMessage = "Order completed successfully"
)

type MerchProcessor struct {
	store    MerchStore
	logger   *observability.Logger
	locker   RedemptionLocker
	events   EventPublisher
	lockTTL  time.Duration
	location *time.Location
	now      func() time.Time
}

// Option configures optional collaborators of MerchProcessor.
type Option func(*MerchProcessor)

// WithLocker serializes settlements per user through locker.
func WithLocker(locker RedemptionLocker, ttl time.Duration) Option {
	return func(p *MerchProcessor) {
		p.locker = locker
		if ttl > 0 {
			p.lockTTL = ttl
		}
	}
}

// WithEventPublisher announces settled orders through events.
func WithEventPublisher(events EventPublisher) Option {
	return func(p *MerchProcessor) {
		p.events = events
	}
}

// WithLocation sets the zone whose midnight starts a new metrics day.
func WithLocation(loc *time.Location) Option {
	return func(p *MerchProcessor) {
		if loc != nil {
			p.location = loc
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *MerchProcessor) {
		p.now = now
	}
}

func New(store MerchStore, logger *observability.Logger, opts ...Option) MerchProcessor {
	p := MerchProcessor{
		store:    store,
		logger:   logger,
		lockTTL:  defaultLockTTL,
		location: time.Local,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// QuoteRequest asks for a price breakdown
type QuoteRequest struct {
	ProductID      uuid.UUID
	CreditsApplied int
}

// QuoteResponse is a breakdown plus the product it prices
type QuoteResponse struct {
	Product store.Product `json:"product"`
	pricing.Breakdown
}

// RedeemRequest asks to settle a purchase
type RedeemRequest struct {
	ProductID      uuid.UUID
	CreditsApplied int
	CashPayment    decimal.Decimal
	// Email is accepted for older clients; it must match the caller.
	Email          string
	IdempotencyKey string
}

// RedeemResponse is the outcome of a settlement
type RedeemResponse struct {
	Message          string      `json:"message"`
	Order            store.Order `json:"order"`
	RemainingCredits int         `json:"remainingCredits"`
	Replayed         bool        `json:"-"`
}

// ListCatalog returns the products currently available for redemption
func (p *MerchProcessor) ListCatalog(ctx context.Context) ([]store.Product, error) {
	products, err := p.store.ListInStockProducts(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list catalog", err)
		return nil, err
	}
	return products, nil
}

// Quote prices a product for the caller without changing any state
func (p *MerchProcessor) Quote(ctx context.Context, identity authProcessor.Identity, req QuoteRequest) (QuoteResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: identity.UserID.String()},
		observability.Field{Key: "product_id", Value: req.ProductID.String()},
		observability.Field{Key: "credits_applied", Value: req.CreditsApplied},
	)

	if req.CreditsApplied < 0 {
		return QuoteResponse{}, ErrInvalidCredits
	}

	user, err := p.getUser(ctx, identity.UserID)
	if err != nil {
		return QuoteResponse{}, err
	}

	if req.CreditsApplied > user.Credits {
		return QuoteResponse{}, ErrInsufficientCredits
	}

	product, err := p.getProduct(ctx, req.ProductID)
	if err != nil {
		return QuoteResponse{}, err
	}

	return QuoteResponse{
		Product:   product,
		Breakdown: pricing.Quote(product.Price, req.CreditsApplied),
	}, nil
}

// Redeem re-prices the product from stored state, checks the client's cash
// figure against it and settles the order. A repeated request carrying the
// same idempotency key returns the original order.
func (p *MerchProcessor) Redeem(ctx context.Context, identity authProcessor.Identity, req RedeemRequest) (RedeemResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: identity.UserID.String()},
		observability.Field{Key: "product_id", Value: req.ProductID.String()},
		observability.Field{Key: "credits_applied", Value: req.CreditsApplied},
		observability.Field{Key: "has_idempotency_key", Value: req.IdempotencyKey != ""},
	)

	resp, err := p.redeem(ctx, identity, req)
	switch {
	case err == nil && resp.Replayed:
		observability.RecordRedemption(observability.RedemptionOutcomeReplayed, 0)
	case err == nil:
		observability.RecordRedemption(observability.RedemptionOutcomeSettled, resp.Order.CreditsApplied)
	case isRejection(err):
		observability.RecordRedemption(observability.RedemptionOutcomeRejected, 0)
	default:
		observability.RecordRedemption(observability.RedemptionOutcomeFailed, 0)
	}
	return resp, err
}

func (p *MerchProcessor) redeem(ctx context.Context, identity authProcessor.Identity, req RedeemRequest) (RedeemResponse, error) {
	if req.Email != "" && !strings.EqualFold(strings.TrimSpace(req.Email), identity.Email) {
		p.logger.Warn(ctx, "redeem email does not match token")
		return RedeemResponse{}, ErrEmailMismatch
	}
	if req.CreditsApplied < 0 {
		return RedeemResponse{}, ErrInvalidCredits
	}

	release, err := p.lock(ctx, identity.UserID)
	if err != nil {
		return RedeemResponse{}, err
	}
	defer release()

	user, err := p.getUser(ctx, identity.UserID)
	if err != nil {
		return RedeemResponse{}, err
	}

	// A retry after success must replay even though the balance has moved.
	if req.IdempotencyKey != "" {
		resp, found, err := p.replay(ctx, user, req)
		if err != nil || found {
			return resp, err
		}
	}

	if req.CreditsApplied > user.Credits {
		p.logger.Info(ctx, "redemption rejected: not enough credits")
		return RedeemResponse{}, ErrInsufficientCredits
	}

	product, err := p.getProduct(ctx, req.ProductID)
	if err != nil {
		return RedeemResponse{}, err
	}

	quote := pricing.Quote(product.Price, req.CreditsApplied)
	if !pricing.WithinTolerance(req.CashPayment, quote.CashPayment) {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "submitted_cash", Value: req.CashPayment.String()},
			observability.Field{Key: "expected_cash", Value: quote.CashPayment.String()},
		)
		p.logger.Warn(ctx, "redemption rejected: cash payment mismatch")
		return RedeemResponse{}, ErrPaymentMismatch
	}

	result, err := p.store.SettleRedemption(ctx, store.SettleRedemptionParams{
		UserID:         user.ID,
		ProductID:      product.ID,
		CreditsApplied: quote.CreditsApplied,
		CreditValue:    quote.CreditValue,
		CashPayment:    quote.CashPayment,
		Subtotal:       quote.Subtotal,
		Shipping:       quote.Shipping,
		Tax:            quote.Tax,
		Total:          quote.Total,
		IdempotencyKey: req.IdempotencyKey,
		Day:            p.now().In(p.location),
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInsufficientCredits):
			p.logger.Info(ctx, "redemption rejected: balance changed before settlement")
			return RedeemResponse{}, ErrInsufficientCredits
		case errors.Is(err, store.ErrIdempotencyConflict):
			return RedeemResponse{}, ErrIdempotencyConflict
		default:
			p.logger.Error(ctx, "failed to settle redemption", err)
			return RedeemResponse{}, fmt.Errorf("failed to settle redemption: %w", err)
		}
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: result.Order.ID.String()})
	if result.Replayed {
		p.logger.Info(ctx, "redemption replayed")
		return RedeemResponse{
			Message:          completedMessage,
			Order:            result.Order,
			RemainingCredits: result.RemainingCredits,
			Replayed:         true,
		}, nil
	}

	p.logger.Info(ctx, "redemption settled")
	p.publish(ctx, result.Order)

	return RedeemResponse{
		Message:          completedMessage,
		Order:            result.Order,
		RemainingCredits: result.RemainingCredits,
	}, nil
}

func (p *MerchProcessor) replay(ctx context.Context, user store.User, req RedeemRequest) (RedeemResponse, bool, error) {
	order, err := p.store.GetOrderByIdempotencyKey(ctx, user.ID, req.IdempotencyKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RedeemResponse{}, false, nil
		}
		p.logger.Error(ctx, "failed to look up idempotency key", err)
		return RedeemResponse{}, false, err
	}

	if order.ProductID != req.ProductID || order.CreditsApplied != req.CreditsApplied {
		p.logger.Warn(ctx, "idempotency key reused with different parameters")
		return RedeemResponse{}, false, ErrIdempotencyConflict
	}

	p.logger.Info(ctx, "redemption replayed")
	return RedeemResponse{
		Message:          completedMessage,
		Order:            order,
		RemainingCredits: user.Credits,
		Replayed:         true,
	}, true, nil
}

// lock takes the per-user settlement lock when a locker is configured. A
// locker outage is logged and settlement continues on the database guarantee
// alone.
func (p *MerchProcessor) lock(ctx context.Context, userID uuid.UUID) (func(), error) {
	noop := func() {}
	if p.locker == nil {
		return noop, nil
	}

	key := lockKeyPrefix + userID.String()
	token, acquired, err := p.locker.AcquireLock(ctx, key, p.lockTTL)
	if err != nil {
		p.logger.InfoWithError(ctx, "redemption lock unavailable, continuing without it", err)
		return noop, nil
	}
	if !acquired {
		p.logger.Info(ctx, "redemption rejected: lock held")
		return noop, ErrRedemptionInProgress
	}

	return func() {
		// Release even if the request context was cancelled.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		if err := p.locker.ReleaseLock(releaseCtx, key, token); err != nil {
			p.logger.Error(ctx, "failed to release redemption lock", err)
		}
	}, nil
}

func (p *MerchProcessor) publish(ctx context.Context, order store.Order) {
	if p.events == nil {
		return
	}
	if err := p.events.PublishOrderCompleted(ctx, order); err != nil {
		p.logger.Error(ctx, "failed to publish order.completed event", err)
	}
}

func (p *MerchProcessor) getUser(ctx context.Context, userID uuid.UUID) (store.User, error) {
	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user", err)
		return store.User{}, err
	}
	return user, nil
}

func (p *MerchProcessor) getProduct(ctx context.Context, productID uuid.UUID) (store.Product, error) {
	product, err := p.store.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Product{}, ErrProductNotFound
		}
		p.logger.Error(ctx, "failed to get product", err)
		return store.Product{}, err
	}
	return product, nil
}

func isRejection(err error) bool {
	for _, target := range []error{
		ErrUserNotFound,
		ErrProductNotFound,
		ErrInsufficientCredits,
		ErrInvalidCredits,
		ErrPaymentMismatch,
		ErrIdempotencyConflict,
		ErrRedemptionInProgress,
		ErrEmailMismatch,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
