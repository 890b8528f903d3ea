package jwtx_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/opengamebackend/auth/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "auth-test"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestNewHS512RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := jwtx.NewHS512(nil, testIssuer)
	require.ErrorIs(t, err, jwtx.ErrNoSecret)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	h, err := jwtx.NewHS512(testSecret, testIssuer)
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims(
		"player-1", testIssuer,
		[]string{"user"},
		"github", "octocat",
		time.Hour, time.Now().UTC(),
	)

	raw, err := h.Sign(claims)
	require.NoError(t, err)

	got, err := h.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "player-1", got.Subject)
	require.Equal(t, []string{"user"}, got.Roles)
	require.Equal(t, "github", got.Provider)
	require.Equal(t, "octocat", got.ProviderUserID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewHS512(testSecret, testIssuer)
	require.NoError(t, err)
	verifier, err := jwtx.NewHS512([]byte("another-secret-another-secret-00"), testIssuer)
	require.NoError(t, err)

	raw, err := signer.Sign(jwtx.NewAccessClaims(
		"player-1", testIssuer, nil, "", "", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalid)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	h, err := jwtx.NewHS512(testSecret, testIssuer)
	require.NoError(t, err)

	raw, err := h.Sign(jwtx.NewAccessClaims(
		"player-1", testIssuer, nil, "", "",
		time.Minute, time.Now().UTC().Add(-time.Hour)))
	require.NoError(t, err)

	_, err = h.Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewHS512(testSecret, "other-issuer")
	require.NoError(t, err)
	verifier, err := jwtx.NewHS512(testSecret, testIssuer)
	require.NoError(t, err)

	raw, err := signer.Sign(jwtx.NewAccessClaims(
		"player-1", "other-issuer", nil, "", "", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifyRejectsForeignSigningMethod(t *testing.T) {
	t.Parallel()

	h, err := jwtx.NewHS512(testSecret, testIssuer)
	require.NoError(t, err)

	// HS256-signed token with the same secret must still be rejected.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "player-1"})
	raw, err := token.SignedString(testSecret)
	require.NoError(t, err)

	_, err = h.Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalid)
}
