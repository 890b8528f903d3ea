package http

import (
	"errors"
	"net/http"

	"github.com/opengamebackend/auth/internal/auth/service"
	"github.com/opengamebackend/auth/pkg/authsdk"
	"github.com/opengamebackend/auth/pkg/httpx"
	"github.com/opengamebackend/auth/pkg/slogx"
)

// SecretKeysHandler manages the pre-shared keys accepted by the "server"
// auth provider. All endpoints require the "admin" role.
type SecretKeysHandler struct {
	SecretKeysService *service.SecretKeysService
}

// HandleList godoc
//
//	@Summary		List Secret Keys
//	@Description	Enumerates all currently valid pre-shared server keys.
//	@Tags			SecretKeys
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.SecretKeyListResponse
//	@Failure		401	{object}	authsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500	{object}	authsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/secrets [get].
func (h *SecretKeysHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	keys, err := h.SecretKeysService.ListSecretKeys(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list secret keys", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}
	if keys == nil {
		keys = []string{}
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.SecretKeyListResponse{Keys: keys})
}

// HandleGenerate godoc
//
//	@Summary		Generate Secret Key
//	@Description	Mints a new 256-bit pre-shared key for the "server" auth provider
//	@Description	and returns it. The key is valid until explicitly removed.
//	@Tags			SecretKeys
//	@Security		BearerAuth
//	@Produce		json
//	@Success		201	{object}	authsdk.SecretKeyResponse
//	@Failure		401	{object}	authsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500	{object}	authsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/secrets [post].
func (h *SecretKeysHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key, err := h.SecretKeysService.GenerateSecretKey(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to generate secret key", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authsdk.SecretKeyResponse{Key: key})
}

// HandleRemove godoc
//
//	@Summary		Remove Secret Key
//	@Description	Revokes a pre-shared key permanently. Server logins with the key fail
//	@Description	from this point on.
//	@Tags			SecretKeys
//	@Security		BearerAuth
//	@Param			key	path	string	true	"The key to revoke"
//	@Success		204	"Key revoked"
//	@Failure		404	{object}	authsdk.ErrorResponse	"No such key"
//	@Failure		401	{object}	authsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/secrets/{key} [delete].
func (h *SecretKeysHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := r.PathValue("key")
	if key == "" {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.SecretKeysService.RemoveSecretKey(ctx, key); err != nil {
		if errors.Is(err, service.ErrInvalidSecretKey) {
			authsdk.ErrInvalidSecretKey.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to remove secret key", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
