package processor

import (
	"context"
	"errors"

	"redeem-server/internal/observability"
	"redeem-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrMissingToken    = errors.New("authorization token is missing")
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrParseJWTToken   = errors.New("failed to parse jwt token")
	ErrExpiredToken    = errors.New("token has expired")
	ErrFailedSignIn    = errors.New("failed to sign token")
	ErrUnknownUser     = errors.New("token subject does not match a user")
	ErrForbidden       = errors.New("admin access required")
)

// Identity is the verified caller of a request.
type Identity struct {
	UserID  uuid.UUID
	Email   string
	IsAdmin bool
}

type AuthProcessor struct {
	store     UserStore
	jwtSecret []byte
	logger    *observability.Logger
}

func New(store UserStore, jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:     store,
		jwtSecret: []byte(jwtSecret),
		logger:    logger,
	}
}

// RequireAdmin reloads the caller and fails unless they are an admin. The
// database is the authority, so revoking admin takes effect before the token
// expires.
func (p *AuthProcessor) RequireAdmin(ctx context.Context, identity Identity) (Identity, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: identity.UserID.String()})

	user, err := p.store.GetUserByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "token subject no longer exists")
			return Identity{}, ErrUnknownUser
		}
		p.logger.Error(ctx, "failed to load user for admin check", err)
		return Identity{}, err
	}

	if !user.IsAdmin {
		p.logger.Warn(ctx, "non-admin attempted admin access")
		return Identity{}, ErrForbidden
	}

	identity.IsAdmin = true
	return identity, nil
}
