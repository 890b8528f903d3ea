package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/opengamebackend/auth/internal/auth/provider"
	"github.com/opengamebackend/auth/internal/auth/service"
	"github.com/opengamebackend/auth/internal/auth/store/drivers/sqlite"
	"github.com/opengamebackend/auth/pkg/authsdk"
	"github.com/opengamebackend/auth/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

// newTestClient boots a fully wired router on an in-memory store and returns
// an SDK client pointed at it.
func newTestClient(t *testing.T) *authsdk.SDKClient {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	roles := &service.RolesService{Store: st}
	require.NoError(t, roles.EnsureRoles(context.Background(), "user", "admin", "server"))

	signer, err := jwtx.NewHS512([]byte("router-test-secret"), "auth-test")
	require.NoError(t, err)

	registry := provider.NewRegistry(
		provider.NewAnonymous(),
		provider.NewServer(st),
	)

	router := NewRouter("test", st, slog.Default())
	router.AuthService = &service.AuthService{Store: st, Providers: registry}
	router.TokenService = &service.TokenService{Signer: signer, Issuer: "auth-test"}
	router.PlayersService = &service.PlayersService{Store: st}
	router.SecretKeysService = &service.SecretKeysService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return authsdk.NewSDKClient(srv.URL)
}

func requireAPIError(t *testing.T, err error, code string) {
	t.Helper()

	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, code, apiErr.Code)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	resp, err := client.Login(ctx, authsdk.LoginRequest{
		Provider: "",
		Key:      "player-42",
		Role:     "user",
	})
	require.NoError(t, err)
	require.Equal(t, "player-42", resp.ProviderUserID)
	require.Equal(t, []string{"user"}, resp.Roles)
	require.False(t, resp.Locked)
	require.False(t, resp.FirstTimeSetup)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "Bearer", resp.TokenType)
	require.Equal(t, 24*60*60, resp.ExpiresIn)

	identity, err := client.VerifyToken(ctx, resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, resp.PlayerID, identity.PlayerID)
	require.Equal(t, []string{"user"}, identity.Roles)
	require.Equal(t, "player-42", identity.ProviderUserID)
}

func TestLoginErrorCodes(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Login(ctx, authsdk.LoginRequest{Provider: "steam", Key: "x", Role: "user"})
	requireAPIError(t, err, authsdk.ErrorCodeUnknownAuthProvider)

	_, err = client.Login(ctx, authsdk.LoginRequest{Provider: "", Key: "p", Role: "superuser"})
	requireAPIError(t, err, authsdk.ErrorCodeInvalidRole)

	_, err = client.Login(ctx, authsdk.LoginRequest{Provider: "server", Key: "wrong", Role: "server"})
	requireAPIError(t, err, authsdk.ErrorCodeInvalidCredentials)
}

func TestVerifyRejectsBadToken(t *testing.T) {
	client := newTestClient(t)

	_, err := client.VerifyToken(context.Background(), "garbage")
	requireAPIError(t, err, authsdk.ErrorCodeInvalidToken)
}

func TestAdminEndpointsRequireAdminToken(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// No token at all.
	session := client.NewSessionFromToken("")
	_, err := session.ListPlayers(ctx, 0)
	require.Error(t, err)

	// A valid token without the admin role.
	userSession, err := client.LoginSession(ctx, authsdk.LoginRequest{
		Provider: "", Key: "plain-user", Role: "user",
	})
	require.NoError(t, err)

	_, err = userSession.ListPlayers(ctx, 0)
	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestAdminFlow(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// First admin login bootstraps the system.
	adminResp, err := client.Login(ctx, authsdk.LoginRequest{
		Provider: "", Key: "admin-1", Role: "admin",
	})
	require.NoError(t, err)
	require.True(t, adminResp.FirstTimeSetup)
	require.False(t, adminResp.Locked)
	require.NotEmpty(t, adminResp.AccessToken)

	session := client.NewSessionFromToken(adminResp.AccessToken)

	// Mint a server secret and use it to log a game server in.
	key, err := session.GenerateSecretKey(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, key)

	keys, err := session.ListSecretKeys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{key}, keys)

	serverResp, err := client.Login(ctx, authsdk.LoginRequest{
		Provider: "server", Key: key, Role: "server",
	})
	require.NoError(t, err)
	require.Equal(t, "SERVER", serverResp.ProviderUserID)
	require.NotEmpty(t, serverResp.AccessToken)

	// Revoked keys stop working immediately.
	require.NoError(t, session.RemoveSecretKey(ctx, key))
	_, err = client.Login(ctx, authsdk.LoginRequest{
		Provider: "server", Key: key, Role: "server",
	})
	requireAPIError(t, err, authsdk.ErrorCodeInvalidCredentials)

	err = session.RemoveSecretKey(ctx, key)
	requireAPIError(t, err, authsdk.ErrorCodeInvalidSecretKey)
}

func TestLockFlow(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	adminSession, err := client.LoginSession(ctx, authsdk.LoginRequest{
		Provider: "", Key: "admin-1", Role: "admin",
	})
	require.NoError(t, err)

	playerResp, err := client.Login(ctx, authsdk.LoginRequest{
		Provider: "", Key: "troublemaker", Role: "user",
	})
	require.NoError(t, err)

	locked, err := adminSession.LockPlayer(ctx, "", "troublemaker")
	require.NoError(t, err)
	require.True(t, locked.Locked)
	require.Equal(t, playerResp.PlayerID, locked.PlayerID)

	// Locked players authenticate but never get a token.
	relogin, err := client.Login(ctx, authsdk.LoginRequest{
		Provider: "", Key: "troublemaker", Role: "user",
	})
	require.NoError(t, err)
	require.True(t, relogin.Locked)
	require.Empty(t, relogin.AccessToken)

	_, err = client.LoginSession(ctx, authsdk.LoginRequest{
		Provider: "", Key: "troublemaker", Role: "user",
	})
	require.ErrorIs(t, err, authsdk.ErrAccountLocked)

	unlocked, err := adminSession.UnlockPlayer(ctx, "", "troublemaker")
	require.NoError(t, err)
	require.False(t, unlocked.Locked)

	_, err = adminSession.LockPlayer(ctx, "", "nobody")
	requireAPIError(t, err, authsdk.ErrorCodePlayerNotFound)
}

func TestListings(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	adminSession, err := client.LoginSession(ctx, authsdk.LoginRequest{
		Provider: "", Key: "admin-1", Role: "admin",
	})
	require.NoError(t, err)

	for _, id := range []string{"p1", "p2", "p3"} {
		_, err := client.Login(ctx, authsdk.LoginRequest{Provider: "", Key: id, Role: "user"})
		require.NoError(t, err)
	}

	page, err := adminSession.ListPlayers(ctx, 0)
	require.NoError(t, err)
	require.Len(t, page.Players, 3)
	require.Equal(t, 3, page.TotalPlayers)
	require.Equal(t, 1, page.TotalPages)

	// The admin listing is separate and does not include users.
	admins, err := adminSession.ListAdmins(ctx)
	require.NoError(t, err)
	require.Len(t, admins.Admins, 1)
	require.Equal(t, "admin-1", admins.Admins[0].ProviderUserID)
}

func TestHealthEndpoints(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	live, err := client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.HTTPClient.Post(client.BaseURL+"/v1/login", "application/json",
		strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
