package authsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the player auth service. It provides access to
// the public endpoints and creates authenticated Sessions via Login.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new auth service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login exchanges provider credentials for a login response. The response
// carries an access token unless the account is locked.
func (c *SDKClient) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/login", req, "", &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoginSession logs in and wraps the resulting access token in a Session for
// authenticated calls. Fails with ErrAccountLocked when the account is locked
// and therefore received no token.
func (c *SDKClient) LoginSession(ctx context.Context, req LoginRequest) (*Session, error) {
	resp, err := c.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, ErrAccountLocked
	}
	return c.NewSessionFromToken(resp.AccessToken), nil
}

// VerifyToken asks the service to validate an access token and returns the
// identity behind it.
func (c *SDKClient) VerifyToken(ctx context.Context, token string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth", AuthRequest{Token: token}, "", &resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetLiveness checks whether the service process is up.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, "", &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetReadiness checks whether the service and its dependencies are ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, "", &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}
