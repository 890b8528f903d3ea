package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/opengamebackend/auth/internal/auth/domain"
	"github.com/opengamebackend/auth/internal/auth/store"
	"github.com/opengamebackend/auth/pkg/slogx"
)

// ErrPlayerNotFound is returned by lock management for an unknown identity.
var ErrPlayerNotFound = errors.New("player not found")

// PageSize is the fixed page size for player listings.
const PageSize = 100

// PlayersService exposes player listings and lock management.
type PlayersService struct {
	Store store.Store
}

// ListPlayers returns one page of players holding the "user" role, sorted by
// id so pages are deterministic absent concurrent writes.
func (s *PlayersService) ListPlayers(ctx context.Context, page int) (domain.PlayerPage, error) {
	if page < 0 {
		page = 0
	}

	role, err := s.Store.Roles().GetRoleByName(ctx, domain.RoleUser)
	if err != nil {
		return domain.PlayerPage{}, err
	}

	players, err := s.Store.Players().ListPlayersByRole(ctx, role.ID, PageSize, page*PageSize)
	if err != nil {
		return domain.PlayerPage{}, err
	}

	total, err := s.Store.Players().CountPlayersByRole(ctx, role.ID)
	if err != nil {
		return domain.PlayerPage{}, err
	}

	totalPages := (total + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return domain.PlayerPage{
		Players:      players,
		TotalPlayers: total,
		TotalPages:   totalPages,
	}, nil
}

// ListAdmins returns every player holding the "admin" role, locked ones
// included, without pagination.
func (s *PlayersService) ListAdmins(ctx context.Context) ([]domain.Player, error) {
	role, err := s.Store.Roles().GetRoleByName(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	// LIMIT -1 is sqlite's "no limit"; admins are expected to be few.
	return s.Store.Players().ListPlayersByRole(ctx, role.ID, -1, 0)
}

// SetPlayerLocked flips the lock flag on the player identified by
// (provider, providerUserID). Setting the current value again is a no-op
// success.
func (s *PlayersService) SetPlayerLocked(
	ctx context.Context,
	providerID, providerUserID string,
	locked bool,
) (domain.Player, error) {
	l := slogx.FromContext(ctx)

	player, err := s.Store.Players().GetPlayerByProviderUserID(ctx, providerID, providerUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Error("failed to change player lock - player not found",
				slog.String("provider", providerID),
				slog.String("provider_user_id", providerUserID),
			)
			return domain.Player{}, ErrPlayerNotFound
		}
		return domain.Player{}, err
	}

	if player.Locked != locked {
		if err := s.Store.Players().SetPlayerLocked(ctx, player.ID, locked); err != nil {
			return domain.Player{}, err
		}
		player.Locked = locked
	}

	l.Info("player lock changed",
		slog.String("player_id", player.ID),
		slog.String("provider", providerID),
		slog.String("provider_user_id", providerUserID),
		slog.Bool("locked", locked),
	)
	return player, nil
}
