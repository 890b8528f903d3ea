package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/opengamebackend/auth/internal/auth/domain"
	"github.com/opengamebackend/auth/internal/auth/service"
	"github.com/opengamebackend/auth/pkg/authsdk"
	"github.com/opengamebackend/auth/pkg/httpx"
	"github.com/opengamebackend/auth/pkg/slogx"
)

// PlayersHandler serves the admin-gated player listing and lock management
// endpoints.
type PlayersHandler struct {
	PlayersService *service.PlayersService
}

// HandleList godoc
//
//	@Summary		List Players
//	@Description	Returns one page of players holding the "user" role, sorted by id.
//	@Description	Pages are zero-based with a fixed size of 100. Requires the "admin" role.
//	@Tags			Players
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Zero-based page index"	default(0)
//	@Success		200		{object}	authsdk.PlayerListResponse
//	@Failure		401		{object}	authsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500		{object}	authsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/players [get].
func (h *PlayersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := 0
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			authsdk.ErrInvalidRequest.WriteError(w)
			return
		}
		page = parsed
	}

	result, err := h.PlayersService.ListPlayers(ctx, page)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list players", "page", page, "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.PlayerListResponse{
		Players:      toPlayerInfos(result.Players),
		TotalPlayers: result.TotalPlayers,
		TotalPages:   result.TotalPages,
	})
}

// HandleListAdmins godoc
//
//	@Summary		List Admins
//	@Description	Returns every player holding the "admin" role, locked accounts included.
//	@Description	Requires the "admin" role.
//	@Tags			Players
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.AdminListResponse
//	@Failure		401	{object}	authsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500	{object}	authsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/admins [get].
func (h *PlayersHandler) HandleListAdmins(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	admins, err := h.PlayersService.ListAdmins(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list admins", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.AdminListResponse{
		Admins: toPlayerInfos(admins),
	})
}

// HandleLock godoc
//
//	@Summary		Lock Player
//	@Description	Locks the player identified by (provider, provider_user_id). Locked
//	@Description	players still authenticate but receive no access token. Idempotent.
//	@Tags			Players
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LockPlayerRequest	true	"Player identity"
//	@Success		200		{object}	authsdk.PlayerInfo
//	@Failure		404		{object}	authsdk.ErrorResponse	"No such player"
//	@Router			/v1/players/lock [post].
func (h *PlayersHandler) HandleLock(w http.ResponseWriter, r *http.Request) {
	h.setLock(w, r, true)
}

// HandleUnlock godoc
//
//	@Summary		Unlock Player
//	@Description	Unlocks the player identified by (provider, provider_user_id). Idempotent.
//	@Tags			Players
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LockPlayerRequest	true	"Player identity"
//	@Success		200		{object}	authsdk.PlayerInfo
//	@Failure		404		{object}	authsdk.ErrorResponse	"No such player"
//	@Router			/v1/players/unlock [post].
func (h *PlayersHandler) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	h.setLock(w, r, false)
}

func (h *PlayersHandler) setLock(w http.ResponseWriter, r *http.Request, locked bool) {
	ctx := r.Context()

	var req authsdk.LockPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	player, err := h.PlayersService.SetPlayerLocked(ctx, req.Provider, req.ProviderUserID, locked)
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			authsdk.ErrPlayerNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to change player lock", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPlayerInfo(player))
}

func toPlayerInfo(p domain.Player) authsdk.PlayerInfo {
	return authsdk.PlayerInfo{
		PlayerID:       p.ID,
		Provider:       p.Provider,
		ProviderUserID: p.ProviderUserID,
		Roles:          p.RoleNames(),
		Locked:         p.Locked,
	}
}

func toPlayerInfos(players []domain.Player) []authsdk.PlayerInfo {
	infos := make([]authsdk.PlayerInfo, len(players))
	for i, p := range players {
		infos[i] = toPlayerInfo(p)
	}
	return infos
}
