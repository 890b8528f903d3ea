package service

import (
	"time"

	"github.com/opengamebackend/auth/internal/auth/domain"
	"github.com/opengamebackend/auth/pkg/jwtx"
)

// TokenService mints and verifies player access tokens. Locked players never
// receive a token; the transport layer checks the login result first.
type TokenService struct {
	Signer *jwtx.HS512
	Issuer string
	TTL    time.Duration
}

// AccessTokenTTL returns the effective access token lifetime.
func (s *TokenService) AccessTokenTTL() time.Duration {
	if s.TTL == 0 {
		return jwtx.DefaultAccessTokenTTL
	}
	return s.TTL
}

// Mint issues an access token for a successful login.
func (s *TokenService) Mint(result domain.LoginResult) (string, error) {
	claims := jwtx.NewAccessClaims(
		result.PlayerID,
		s.Issuer,
		result.Roles,
		result.Provider,
		result.ProviderUserID,
		s.AccessTokenTTL(),
		time.Now().UTC(),
	)
	return s.Signer.Sign(claims)
}

// Verify validates a compact token and returns its claims.
func (s *TokenService) Verify(raw string) (jwtx.Claims, error) {
	claims, err := s.Signer.Verify(raw)
	if err != nil {
		return jwtx.Claims{}, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return jwtx.Claims{}, err
	}
	return claims, nil
}
