package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item.
type Product struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	ImageURL    string          `db:"image_url" json:"imageUrl"`
	Price       decimal.Decimal `db:"price" json:"price"`
	InStock     bool            `db:"in_stock" json:"inStock"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updatedAt"`
}

// User holds a redeemer's profile and credit balance.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Credits   int       `db:"credits" json:"credits"`
	IsAdmin   bool      `db:"is_admin" json:"isAdmin"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Order is an immutable record of a settled redemption.
type Order struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	UserID         uuid.UUID       `db:"user_id" json:"userId"`
	ProductID      uuid.UUID       `db:"product_id" json:"productId"`
	CreditsApplied int             `db:"credits_applied" json:"creditsApplied"`
	CreditValue    decimal.Decimal `db:"credit_value" json:"creditValue"`
	CashPayment    decimal.Decimal `db:"cash_payment" json:"cashPayment"`
	Subtotal       decimal.Decimal `db:"subtotal" json:"subtotal"`
	Shipping       decimal.Decimal `db:"shipping" json:"shipping"`
	Tax            decimal.Decimal `db:"tax" json:"tax"`
	Total          decimal.Decimal `db:"total" json:"total"`
	Status         string          `db:"status" json:"status"`
	IdempotencyKey *string         `db:"idempotency_key" json:"-"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updatedAt"`
}

// DailyMetrics is the counter row for a single calendar day.
type DailyMetrics struct {
	Day         time.Time `db:"day" json:"date"`
	Bursts      int64     `db:"bursts" json:"bursts"`
	Wins        int64     `db:"wins" json:"wins"`
	Purchases   int64     `db:"purchases" json:"purchases"`
	Redemptions int64     `db:"redemptions" json:"redemptions"`
	Referrals   int64     `db:"referrals" json:"referrals"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
	UpdatedAt   time.Time `db:"updated_at" json:"-"`
}

// LaneMetrics is the engagement snapshot attached to a lane.
type LaneMetrics struct {
	Users      int64   `db:"users" json:"users"`
	Engagement float64 `db:"engagement" json:"engagement"`
	Retention  float64 `db:"retention" json:"retention"`
}

// Lane is a tracked business segment ranked by impact.
type Lane struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Description string      `db:"description" json:"description"`
	ImpactScore float64     `db:"impact_score" json:"impactScore"`
	State       string      `db:"state" json:"state"`
	Metrics     LaneMetrics `db:"metrics" json:"metrics"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updatedAt"`
}
