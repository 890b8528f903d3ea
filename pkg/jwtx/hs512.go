package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// HS512 signs and verifies access tokens with a single shared HMAC-SHA512
// secret. All backend services share the secret, so any of them can verify a
// token without a key-distribution round trip.
type HS512 struct {
	secret []byte
	issuer string
}

// NewHS512 builds a signer/verifier. An empty secret is a configuration
// error; callers are expected to treat it as fatal at startup.
func NewHS512(secret []byte, issuer string) (*HS512, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	return &HS512{secret: secret, issuer: issuer}, nil
}

// Sign produces a compact serialized token for the claims.
func (h *HS512) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(h.secret)
}

// Verify parses and validates a compact token, enforcing the HS512 method,
// signature, expiry and issuer.
func (h *HS512) Verify(raw string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS512 {
			return nil, ErrInvalid
		}
		return h.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		default:
			return Claims{}, ErrInvalid
		}
	}
	if !token.Valid {
		return Claims{}, ErrInvalid
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	return claims, nil
}
