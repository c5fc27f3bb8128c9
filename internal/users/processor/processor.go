package processor

import (
	"context"
	"errors"
	"strings"

	authProcessor "redeem-server/internal/auth/processor"
	"redeem-server/internal/observability"
	"redeem-server/internal/store"
)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrUserNotFound  = errors.New("user not found")
	ErrForbidden     = errors.New("not allowed to view this profile")
)

type UserProcessor struct {
	store  UserStore
	logger *observability.Logger
}

func New(store UserStore, logger *observability.Logger) UserProcessor {
	return UserProcessor{
		store:  store,
		logger: logger,
	}
}

// FindByEmail returns the profile registered under email. Callers may read
// their own profile; admins may read any.
func (p *UserProcessor) FindByEmail(ctx context.Context, identity authProcessor.Identity, email string) (store.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return store.User{}, ErrEmailRequired
	}

	if !strings.EqualFold(email, identity.Email) {
		requester, err := p.store.GetUserByID(ctx, identity.UserID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to load requester", err)
			return store.User{}, err
		}
		if err != nil || !requester.IsAdmin {
			p.logger.Warn(ctx, "profile lookup for another user denied")
			return store.User{}, ErrForbidden
		}
	}

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user by email", err)
		return store.User{}, err
	}
	return user, nil
}

// ListOrders returns the caller's orders, newest first
func (p *UserProcessor) ListOrders(ctx context.Context, identity authProcessor.Identity) ([]store.Order, error) {
	orders, err := p.store.ListOrdersByUserID(ctx, identity.UserID)
	if err != nil {
		p.logger.Error(ctx, "failed to list orders", err)
		return nil, err
	}
	return orders, nil
}
