package handler

import (
	"context"
	"strings"

	"redeem-server/internal/apierrors"
	"redeem-server/internal/auth/processor"
	"redeem-server/internal/observability"

	"github.com/gin-gonic/gin"
)

const identityKey = "Identity"

// Authenticator verifies bearer tokens and admin rights.
type Authenticator interface {
	ValidateJWTToken(ctx context.Context, token string) (processor.Identity, error)
	RequireAdmin(ctx context.Context, identity processor.Identity) (processor.Identity, error)
}

type Handler struct {
	authProcessor Authenticator
	logger        *observability.Logger
}

func New(authProcessor Authenticator, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleJWTMiddleware rejects requests without a valid bearer token and
// stores the verified identity on the gin context.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, processor.ErrMissingToken)
		return
	}

	tokenString := strings.TrimSpace(strings.TrimPrefix(tokenHeader, "Bearer "))
	identity, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	SetIdentity(c, identity)
	c.Next()
}

// HandleRequireAdmin must run after HandleJWTMiddleware.
func (h *Handler) HandleRequireAdmin(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := CurrentIdentity(c)
	if !ok {
		apierrors.RespondWithError(c, processor.ErrMissingToken)
		return
	}

	admin, err := h.authProcessor.RequireAdmin(ctx, identity)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	SetIdentity(c, admin)
	c.Next()
}

// CurrentIdentity returns the identity stored by HandleJWTMiddleware.
func CurrentIdentity(c *gin.Context) (processor.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return processor.Identity{}, false
	}
	identity, ok := value.(processor.Identity)
	return identity, ok
}

// SetIdentity stores identity on c for CurrentIdentity.
func SetIdentity(c *gin.Context, identity processor.Identity) {
	c.Set(identityKey, identity)
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "user_id", Value: identity.UserID.String()},
	)
	c.Request = c.Request.WithContext(ctx)
}
