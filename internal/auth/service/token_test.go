package service

import (
	"testing"
	"time"

	"github.com/opengamebackend/auth/internal/auth/domain"
	"github.com/opengamebackend/auth/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()

	signer, err := jwtx.NewHS512([]byte("test-secret-material"), "auth-test")
	require.NoError(t, err)
	return &TokenService{Signer: signer, Issuer: "auth-test"}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(t)

	raw, err := svc.Mint(domain.LoginResult{
		PlayerID:       "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Provider:       "",
		ProviderUserID: "player-42",
		Roles:          []string{"user"},
	})
	require.NoError(t, err)

	claims, err := svc.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", claims.Subject)
	require.Equal(t, []string{"user"}, claims.Roles)
	require.Equal(t, "player-42", claims.ProviderUserID)
}

func TestTokenDefaultTTL(t *testing.T) {
	svc := newTestTokenService(t)

	raw, err := svc.Mint(domain.LoginResult{PlayerID: "p1", Roles: []string{"user"}})
	require.NoError(t, err)

	claims, err := svc.Verify(raw)
	require.NoError(t, err)

	lifetime := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	require.Equal(t, jwtx.DefaultAccessTokenTTL, lifetime)
}

func TestTokenVerifyRejectsExpired(t *testing.T) {
	svc := newTestTokenService(t)
	svc.TTL = -time.Minute

	raw, err := svc.Mint(domain.LoginResult{PlayerID: "p1", Roles: []string{"user"}})
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestTokenVerifyRejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t)

	_, err := svc.Verify("not-a-token")
	require.Error(t, err)
}
