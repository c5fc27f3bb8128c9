// Package pricing computes redemption quotes. Everything here is pure: no I/O,
// no clock, no balance checks.
package pricing

import (
	"github.com/shopspring/decimal"
)

var (
	// CreditValue is the dollar value of a single credit.
	CreditValue = decimal.RequireFromString("0.03")
	// ShippingFlat is charged on every order regardless of price.
	ShippingFlat = decimal.RequireFromString("4.99")
	// TaxRate applies to the product price only.
	TaxRate = decimal.RequireFromString("0.08")
	// MaxCreditCoverage caps the share of the subtotal credits can pay for.
	MaxCreditCoverage = decimal.RequireFromString("0.60")
	// PaymentTolerance is the largest accepted gap between a client-submitted
	// cash payment and the recomputed one.
	PaymentTolerance = decimal.RequireFromString("0.01")
)

func init() {
	// Money goes over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Breakdown is the full price breakdown for one product and credit request.
type Breakdown struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	Shipping       decimal.Decimal `json:"shipping"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	CreditsApplied int             `json:"creditsApplied"`
	CreditValue    decimal.Decimal `json:"creditValue"`
	CashPayment    decimal.Decimal `json:"cashPayment"`
}

// Quote prices a product with the requested number of credits applied.
//
// Credit value is capped at MaxCreditCoverage of the subtotal; CreditsApplied
// echoes the request even when the cap bites. Total never reflects credits.
// Negative credit requests are treated as zero.
func Quote(productPrice decimal.Decimal, creditsRequested int) Breakdown {
	if creditsRequested < 0 {
		creditsRequested = 0
	}

	subtotal := productPrice
	shipping := ShippingFlat
	tax := subtotal.Mul(TaxRate)

	requestedValue := decimal.NewFromInt(int64(creditsRequested)).Mul(CreditValue)
	maxValue := subtotal.Mul(MaxCreditCoverage)
	applied := decimal.Min(requestedValue, maxValue)
	if applied.IsNegative() {
		applied = decimal.Zero
	}

	return Breakdown{
		Subtotal:       subtotal,
		Shipping:       shipping,
		Tax:            tax,
		Total:          subtotal.Add(shipping).Add(tax),
		CreditsApplied: creditsRequested,
		CreditValue:    applied,
		CashPayment:    subtotal.Sub(applied).Add(shipping).Add(tax),
	}
}

// WithinTolerance reports whether submitted is within PaymentTolerance of
// expected. Exactly one cent apart is accepted.
func WithinTolerance(submitted, expected decimal.Decimal) bool {
	return submitted.Sub(expected).Abs().LessThanOrEqual(PaymentTolerance)
}
