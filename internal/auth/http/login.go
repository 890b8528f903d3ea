package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/opengamebackend/auth/internal/auth/domain"
	"github.com/opengamebackend/auth/internal/auth/service"
	"github.com/opengamebackend/auth/pkg/authsdk"
	"github.com/opengamebackend/auth/pkg/httpx"
	"github.com/opengamebackend/auth/pkg/jwtx"
	"github.com/opengamebackend/auth/pkg/slogx"
)

// LoginHandler serves POST /v1/login: the credential exchange. A locked
// account still gets a 200 response describing itself, but no access token.
type LoginHandler struct {
	AuthService  *service.AuthService
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Player Login
//	@Description	Exchanges provider credentials for a player identity and, unless the
//	@Description	account is locked, an HS512-signed JWT access token.
//	@Description	Provider "" is anonymous (key is the player-chosen id), "server" expects
//	@Description	a pre-shared secret key, and "github" expects an OAuth2 authorization code.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest	true	"Login credentials"
//	@Success		200		{object}	authsdk.LoginResponse	"Player identity, plus access token when unlocked"
//	@Failure		400		{object}	authsdk.ErrorResponse	"Unknown provider or role"
//	@Failure		401		{object}	authsdk.ErrorResponse	"Credentials rejected by the provider"
//	@Failure		500		{object}	authsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Role == "" {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	result, err := h.AuthService.Login(ctx, domain.LoginParams{
		Provider: req.Provider,
		Key:      req.Key,
		Context:  req.Context,
		Role:     req.Role,
	})
	if err != nil {
		writeLoginError(w, log, err)
		return
	}

	resp := authsdk.LoginResponse{
		PlayerID:       result.PlayerID,
		Provider:       result.Provider,
		ProviderUserID: result.ProviderUserID,
		Roles:          result.Roles,
		Locked:         result.Locked,
		FirstTimeSetup: result.FirstTimeSetup,
	}

	// Locked accounts authenticate fine but never get a token.
	if !result.Locked {
		token, err := h.TokenService.Mint(result)
		if err != nil {
			log.Error("failed to mint access token", "player_id", result.PlayerID, "err", err)
			authsdk.ErrServerError.WriteError(w)
			return
		}
		resp.AccessToken = token
		resp.TokenType = "Bearer"
		resp.ExpiresIn = int(h.TokenService.AccessTokenTTL().Seconds())
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

func writeLoginError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownAuthProvider):
		authsdk.ErrUnknownAuthProvider.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		authsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrInvalidRole):
		authsdk.ErrInvalidRole.WriteError(w)
	default:
		log.Warn("login failed unexpectedly", "err", err)
		authsdk.ErrServerError.WriteError(w)
	}
}

// AuthHandler serves POST /v1/auth: other backend services post a token here
// to resolve the player behind it.
type AuthHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Verify Access Token
//	@Description	Validates an access token and returns the player identity and roles
//	@Description	encoded in it. Game services call this to authenticate player requests.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.AuthRequest		true	"Token to verify"
//	@Success		200		{object}	authsdk.AuthResponse	"Identity behind the token"
//	@Failure		400		{object}	authsdk.ErrorResponse	"Malformed request"
//	@Failure		401		{object}	authsdk.ErrorResponse	"Invalid or expired token"
//	@Router			/v1/auth [post].
func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req authsdk.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	claims, err := h.TokenService.Verify(req.Token)
	if err != nil {
		slogx.FromContext(r.Context()).Warn("token verification failed",
			"err", err, "expired", errors.Is(err, jwtx.ErrExpired))
		authsdk.ErrInvalidToken.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.AuthResponse{
		PlayerID:       claims.Subject,
		Roles:          claims.Roles,
		Provider:       claims.Provider,
		ProviderUserID: claims.ProviderUserID,
	})
}
