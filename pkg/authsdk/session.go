package authsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Session wraps an access token for authenticated calls. Tokens are
// long-lived (24h by default) and the service has no refresh grant, so a
// session is valid for the token's lifetime and then must be replaced by a
// fresh Login.
type Session struct {
	client *SDKClient
	token  string
}

// NewSessionFromToken wraps an existing access token, e.g. one stored from a
// previous login.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// Token returns the raw access token, e.g. for persisting across restarts.
func (s *Session) Token() string { return s.token }

// ============================================================================
// Player management (requires the "admin" role)
// ============================================================================

// LockPlayer locks the player identified by (provider, providerUserID).
// Locked players can still log in but receive no access token.
func (s *Session) LockPlayer(ctx context.Context, provider, providerUserID string) (*PlayerInfo, error) {
	return s.setLock(ctx, "/v1/players/lock", provider, providerUserID)
}

// UnlockPlayer unlocks the player identified by (provider, providerUserID).
func (s *Session) UnlockPlayer(ctx context.Context, provider, providerUserID string) (*PlayerInfo, error) {
	return s.setLock(ctx, "/v1/players/unlock", provider, providerUserID)
}

func (s *Session) setLock(ctx context.Context, path, provider, providerUserID string) (*PlayerInfo, error) {
	req := LockPlayerRequest{Provider: provider, ProviderUserID: providerUserID}

	var resp PlayerInfo
	if err := s.client.doJSON(ctx, http.MethodPost, path, req, s.token, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListPlayers fetches one page of players holding the "user" role. Pages are
// zero-based with a fixed size of 100.
func (s *Session) ListPlayers(ctx context.Context, page int) (*PlayerListResponse, error) {
	path := fmt.Sprintf("/v1/players?page=%d", page)

	var resp PlayerListResponse
	if err := s.client.doJSON(ctx, http.MethodGet, path, nil, s.token, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListAdmins fetches every admin account, locked ones included.
func (s *Session) ListAdmins(ctx context.Context) (*AdminListResponse, error) {
	var resp AdminListResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/v1/admins", nil, s.token, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ============================================================================
// Secret keys (requires the "admin" role)
// ============================================================================

// GenerateSecretKey mints a new pre-shared key for the "server" provider.
func (s *Session) GenerateSecretKey(ctx context.Context) (string, error) {
	var resp SecretKeyResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/v1/secrets", nil, s.token, &resp, http.StatusCreated); err != nil {
		return "", err
	}
	return resp.Key, nil
}

// ListSecretKeys enumerates all currently valid pre-shared keys.
func (s *Session) ListSecretKeys(ctx context.Context) ([]string, error) {
	var resp SecretKeyListResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/v1/secrets", nil, s.token, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return resp.Keys, nil
}

// RemoveSecretKey revokes a pre-shared key. Server logins with it fail from
// this point on.
func (s *Session) RemoveSecretKey(ctx context.Context, key string) error {
	path := "/v1/secrets/" + url.PathEscape(key)
	return s.client.doJSON(ctx, http.MethodDelete, path, nil, s.token, nil, http.StatusNoContent)
}
