package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL matches the original backend's 24h player sessions.
// Game clients hold a single token for the length of a play session.
const DefaultAccessTokenTTL = 24 * time.Hour

// Claims are the access-token claims shared across backend services. Keep
// changes additive to preserve compatibility.
type Claims struct {
	jwt.RegisteredClaims

	// Roles held by the player at login time, e.g. ["user"].
	Roles []string `json:"roles,omitempty"`

	// Provider that authenticated the player.
	Provider string `json:"provider,omitempty"`

	// ProviderUserID is the player's id within the provider's namespace.
	ProviderUserID string `json:"provider_user_id,omitempty"`
}

// NewAccessClaims builds minimally-correct claims for a player access token.
func NewAccessClaims(
	playerID, issuer string,
	roles []string,
	provider, providerUserID string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   playerID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        newJTI(),
		},
		Roles:          roles,
		Provider:       provider,
		ProviderUserID: providerUserID,
	}
}

// newJTI returns a URL-safe random identifier for the "jti" claim.
func newJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks the issuer matches the expected value, when one is set.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
