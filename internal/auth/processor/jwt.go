package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"redeem-server/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "redeem-server"

type BaseClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateJWTToken signs a token for user that expires after ttl.
func (p *AuthProcessor) GenerateJWTToken(ctx context.Context, user store.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := BaseClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(p.jwtSecret)
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", ErrFailedSignIn
	}

	return tokenString, nil
}

// ValidateJWTToken verifies signature, issuer and expiry and returns the
// caller's identity. IsAdmin is never taken from the token.
func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrMissingToken
	}

	var baseClaims BaseClaims
	t, err := jwt.ParseWithClaims(token, &baseClaims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.jwtSecret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.Warn(ctx, "token expired")
			return Identity{}, ErrExpiredToken
		}

		p.logger.InfoWithError(ctx, "failed to parse token", err)
		return Identity{}, ErrParseJWTToken
	}
	if !t.Valid {
		return Identity{}, ErrInvalidJWTToken
	}

	userID, err := uuid.Parse(baseClaims.Subject)
	if err != nil || baseClaims.Email == "" {
		return Identity{}, ErrInvalidJWTToken
	}

	return Identity{UserID: userID, Email: baseClaims.Email}, nil
}
