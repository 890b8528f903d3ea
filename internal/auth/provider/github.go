package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	githubAccessTokenURL = "https://github.com/login/oauth/access_token"
	githubUserURL        = "https://api.github.com/user"

	// githubTimeout bounds both outbound calls. A timeout surfaces as an
	// authentication failure; the engine never retries.
	githubTimeout = 10 * time.Second
)

// GithubConfig carries the OAuth2 app credentials. All three fields are
// required when the provider is enabled.
type GithubConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// Github exchanges an OAuth2 authorization code for the GitHub login name of
// the user who granted it: code -> access token, then token -> user profile.
type Github struct {
	cfg      GithubConfig
	client   *http.Client
	tokenURL string
	userURL  string
}

// NewGithub validates the configuration and builds the provider. A missing
// client id, secret or redirect URI is a startup error, not a login error.
func NewGithub(cfg GithubConfig) (*Github, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("provider: github client id not set")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("provider: github client secret not set")
	}
	if cfg.RedirectURI == "" {
		return nil, errors.New("provider: github redirect uri not set")
	}

	return &Github{
		cfg:      cfg,
		client:   &http.Client{Timeout: githubTimeout},
		tokenURL: githubAccessTokenURL,
		userURL:  githubUserURL,
	}, nil
}

func (*Github) ID() string { return "github" }

func (g *Github) Authenticate(ctx context.Context, key, authContext string) (string, error) {
	token, err := g.exchangeCode(ctx, key, authContext)
	if err != nil {
		return "", err
	}
	return g.fetchLogin(ctx, token)
}

type githubTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type githubUserResponse struct {
	Login string `json:"login"`
}

// exchangeCode swaps the authorization code for an access token.
func (g *Github) exchangeCode(ctx context.Context, code, state string) (string, error) {
	q := url.Values{}
	q.Set("client_id", g.cfg.ClientID)
	q.Set("client_secret", g.cfg.ClientSecret)
	q.Set("redirect_uri", g.cfg.RedirectURI)
	q.Set("code", code)
	q.Set("state", state)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.tokenURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	var body githubTokenResponse
	if err := g.do(req, &body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", ErrAuthFailed
	}
	return body.AccessToken, nil
}

// fetchLogin resolves the access token to the account's login name.
func (g *Github) fetchLogin(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "token "+token)

	var body githubUserResponse
	if err := g.do(req, &body); err != nil {
		return "", err
	}
	if body.Login == "" {
		return "", ErrAuthFailed
	}
	return body.Login, nil
}

// do executes the request and decodes a 2xx JSON body into out. Any transport
// error, non-2xx status or undecodable body counts as an auth failure.
func (g *Github) do(req *http.Request, out any) error {
	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ErrAuthFailed
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}
	return nil
}
