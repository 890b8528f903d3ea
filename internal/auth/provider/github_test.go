package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestGithub(t *testing.T, tokenHandler, userHandler http.HandlerFunc) *Github {
	t.Helper()

	tokenSrv := httptest.NewServer(tokenHandler)
	t.Cleanup(tokenSrv.Close)
	userSrv := httptest.NewServer(userHandler)
	t.Cleanup(userSrv.Close)

	g, err := NewGithub(GithubConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "https://game.example/callback",
	})
	require.NoError(t, err)

	g.tokenURL = tokenSrv.URL
	g.userURL = userSrv.URL
	return g
}

func TestNewGithubRequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := NewGithub(GithubConfig{ClientSecret: "s", RedirectURI: "r"})
	require.Error(t, err)

	_, err = NewGithub(GithubConfig{ClientID: "c", RedirectURI: "r"})
	require.Error(t, err)

	_, err = NewGithub(GithubConfig{ClientID: "c", ClientSecret: "s"})
	require.Error(t, err)
}

func TestGithubAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("happy path returns login name", func(t *testing.T) {
		var gotCode, gotState string
		g := newTestGithub(t,
			func(w http.ResponseWriter, r *http.Request) {
				gotCode = r.URL.Query().Get("code")
				gotState = r.URL.Query().Get("state")
				_, _ = w.Write([]byte(`{"access_token":"gho_abc"}`))
			},
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "token gho_abc", r.Header.Get("Authorization"))
				_, _ = w.Write([]byte(`{"login":"octocat"}`))
			},
		)

		login, err := g.Authenticate(context.Background(), "the-code", "the-state")
		require.NoError(t, err)
		require.Equal(t, "octocat", login)
		require.Equal(t, "the-code", gotCode)
		require.Equal(t, "the-state", gotState)
	})

	t.Run("token endpoint error fails", func(t *testing.T) {
		g := newTestGithub(t,
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("user endpoint must not be called")
			},
		)

		_, err := g.Authenticate(context.Background(), "bad-code", "")
		require.ErrorIs(t, err, ErrAuthFailed)
	})

	t.Run("missing access token fails", func(t *testing.T) {
		g := newTestGithub(t,
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"error":"bad_verification_code"}`))
			},
			func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("user endpoint must not be called")
			},
		)

		_, err := g.Authenticate(context.Background(), "bad-code", "")
		require.ErrorIs(t, err, ErrAuthFailed)
	})

	t.Run("missing login field fails", func(t *testing.T) {
		g := newTestGithub(t,
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"access_token":"gho_abc"}`))
			},
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
		)

		_, err := g.Authenticate(context.Background(), "the-code", "")
		require.ErrorIs(t, err, ErrAuthFailed)
	})

	t.Run("cancelled context fails like bad credentials", func(t *testing.T) {
		g := newTestGithub(t,
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"access_token":"gho_abc"}`))
			},
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"login":"octocat"}`))
			},
		)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := g.Authenticate(ctx, "the-code", "")
		require.ErrorIs(t, err, ErrAuthFailed)
	})
}
