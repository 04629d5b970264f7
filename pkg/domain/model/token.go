package model

import (
	"time"

	"github.com/opsnexus/opsnexus/pkg/domain/types"
)

// AccessToken is a signed bearer token issued at login
type AccessToken struct {
	ID        types.TokenID `json:"-"`
	Token     string        `json:"access_token"`
	TokenType string        `json:"token_type"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// RevokedToken marks a token ID as unusable until it would have expired anyway
type RevokedToken struct {
	ID        types.TokenID  `json:"id"`
	Username  types.Username `json:"username"`
	RevokedAt time.Time      `json:"revoked_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// IsExpired reports whether the revocation entry can be discarded
func (r *RevokedToken) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
