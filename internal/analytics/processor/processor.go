package processor

import (
	"context"
	"errors"
	"strings"
	"time"

	authProcessor "redeem-server/internal/auth/processor"
	"redeem-server/internal/observability"
	"redeem-server/internal/store"
)

var (
	ErrSinceRequired = errors.New("since parameter is required")
	ErrInvalidSince  = errors.New("invalid date format for since parameter")
	ErrEmailMismatch = errors.New("email does not match the authenticated user")
)

type AnalyticsProcessor struct {
	store    AnalyticsStore
	logger   *observability.Logger
	location *time.Location
	now      func() time.Time
}

func New(store AnalyticsStore, logger *observability.Logger, location *time.Location) AnalyticsProcessor {
	if location == nil {
		location = time.Local
	}
	return AnalyticsProcessor{
		store:    store,
		logger:   logger,
		location: location,
		now:      time.Now,
	}
}

// MetricsRequest carries the raw query of an admin metrics call
type MetricsRequest struct {
	Since string
	Email string
}

// AggregateResponse holds counter totals and the day rows they were summed from
type AggregateResponse struct {
	Bursts      int64                `json:"bursts"`
	Wins        int64                `json:"wins"`
	Purchases   int64                `json:"purchases"`
	Redemptions int64                `json:"redemptions"`
	Referrals   int64                `json:"referrals"`
	History     []store.DailyMetrics `json:"history"`
}

// GetMetrics validates an admin metrics query and aggregates it
func (p *AnalyticsProcessor) GetMetrics(ctx context.Context, identity authProcessor.Identity, req MetricsRequest) (AggregateResponse, error) {
	if req.Email != "" && !strings.EqualFold(strings.TrimSpace(req.Email), identity.Email) {
		p.logger.Warn(ctx, "metrics email does not match token")
		return AggregateResponse{}, ErrEmailMismatch
	}

	since, err := ParseSince(req.Since, p.location)
	if err != nil {
		return AggregateResponse{}, err
	}

	return p.AggregateSince(ctx, since)
}

// AggregateSince sums every stored day from the calendar day of since up to
// today. Days without a stored row are absent from History.
func (p *AnalyticsProcessor) AggregateSince(ctx context.Context, since time.Time) (AggregateResponse, error) {
	from := since.In(p.location)
	to := p.now().In(p.location)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "since", Value: from.Format(time.DateOnly)},
		observability.Field{Key: "until", Value: to.Format(time.DateOnly)},
	)

	rows, err := p.store.ListDailyMetricsBetween(ctx, from, to)
	if err != nil {
		p.logger.Error(ctx, "failed to list daily metrics", err)
		return AggregateResponse{}, err
	}

	resp := AggregateResponse{History: make([]store.DailyMetrics, 0, len(rows))}
	for _, row := range rows {
		resp.Bursts += row.Bursts
		resp.Wins += row.Wins
		resp.Purchases += row.Purchases
		resp.Redemptions += row.Redemptions
		resp.Referrals += row.Referrals
		resp.History = append(resp.History, row)
	}
	return resp, nil
}

// ParseSince accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date, the
// latter read as midnight in loc.
func ParseSince(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrSinceRequired
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, raw, loc); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidSince
}
