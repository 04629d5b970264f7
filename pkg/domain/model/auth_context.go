package model

import (
	"context"
	"time"

	"github.com/opsnexus/opsnexus/pkg/domain/types"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// authContextKey is the key for storing AuthContext in context
	authContextKey contextKey = "authContext"
)

// AuthContext contains the identity resolved from a validated access token
type AuthContext struct {
	Username  types.Username  `json:"username,omitempty"`
	CompanyID types.CompanyID `json:"company_id,omitempty"`
	Role      types.Role      `json:"role,omitempty"`
	TokenID   types.TokenID   `json:"token_id,omitempty"`
	ExpiresAt time.Time       `json:"expires_at,omitempty"`
}

// WithAuthContext adds AuthContext to the context
func WithAuthContext(ctx context.Context, authCtx *AuthContext) context.Context {
	if authCtx == nil {
		return ctx
	}
	return context.WithValue(ctx, authContextKey, authCtx)
}

// GetAuthContext retrieves AuthContext from the context
func GetAuthContext(ctx context.Context) (*AuthContext, bool) {
	authCtx, ok := ctx.Value(authContextKey).(*AuthContext)
	return authCtx, ok && authCtx != nil
}

// Clone creates a copy of the AuthContext
func (a *AuthContext) Clone() *AuthContext {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
