package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/opengamebackend/auth/internal/auth/domain"
	"github.com/opengamebackend/auth/internal/auth/provider"
	"github.com/opengamebackend/auth/internal/auth/store"
	"github.com/opengamebackend/auth/pkg/idx"
	"github.com/opengamebackend/auth/pkg/slogx"
)

// Client-attributable login failures. These map to stable error codes at the
// transport layer and are never retried internally.
var (
	ErrUnknownAuthProvider = errors.New("unknown auth provider")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRole         = errors.New("invalid role")
)

// AuthService is the login engine. It resolves a provider, authenticates the
// credential, validates the requested role, and finds or creates the player,
// applying the first-admin bootstrap and lock policy.
type AuthService struct {
	Store     store.Store
	Providers *provider.Registry
}

// Login performs the credential exchange described in the request. The checks
// run strictly in order; no player row is written until the provider, the
// credential and the role have all been validated.
//
// For a never-seen identity requesting the admin role, the admin count and the
// insert run inside one store transaction: exactly one concurrent bootstrap
// can observe zero admins. Every later new admin is created locked and stays
// locked until an existing admin unlocks it.
func (s *AuthService) Login(ctx context.Context, params domain.LoginParams) (domain.LoginResult, error) {
	l := slogx.FromContext(ctx)

	// 1. Resolve provider.
	authProvider, ok := s.Providers.Resolve(params.Provider)
	if !ok {
		l.Error("login failed - unknown auth provider", slog.String("provider", params.Provider))
		return domain.LoginResult{}, ErrUnknownAuthProvider
	}

	// 2. Authenticate. Only a rejected credential maps to ErrInvalidCredentials;
	// anything else (a store outage, say) is an internal failure and propagates.
	providerUserID, err := authProvider.Authenticate(ctx, params.Key, params.Context)
	if err != nil {
		if !errors.Is(err, provider.ErrAuthFailed) {
			l.Error("login failed - provider error",
				slog.String("provider", params.Provider),
				slog.Any("error", err),
			)
			return domain.LoginResult{}, err
		}
		l.Error("login failed - provider rejected credentials",
			slog.String("provider", params.Provider),
			slog.Any("error", err),
		)
		return domain.LoginResult{}, ErrInvalidCredentials
	}

	// 3. Resolve role.
	role, err := s.Store.Roles().GetRoleByName(ctx, params.Role)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Error("login failed - unknown role", slog.String("role", params.Role))
			return domain.LoginResult{}, ErrInvalidRole
		}
		return domain.LoginResult{}, err
	}

	// 4. Find or create the player.
	player, firstTimeSetup, err := s.findOrCreatePlayer(ctx, params.Provider, providerUserID, role)
	if err != nil {
		return domain.LoginResult{}, err
	}

	l.Info("login successful",
		slog.String("player_id", player.ID),
		slog.String("provider", params.Provider),
		slog.String("provider_user_id", providerUserID),
		slog.String("requested_role", params.Role),
		slog.Bool("locked", player.Locked),
	)

	return domain.LoginResult{
		PlayerID:       player.ID,
		Provider:       params.Provider,
		ProviderUserID: providerUserID,
		Roles:          player.RoleNames(),
		Locked:         player.Locked,
		FirstTimeSetup: firstTimeSetup,
	}, nil
}

func (s *AuthService) findOrCreatePlayer(
	ctx context.Context,
	providerID, providerUserID string,
	role domain.Role,
) (domain.Player, bool, error) {
	var (
		player         domain.Player
		firstTimeSetup bool
	)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Players().GetPlayerByProviderUserID(ctx, providerID, providerUserID)
		if err == nil {
			// Existing players keep their recorded roles and lock state;
			// login never re-roles or re-locks them.
			player = existing
			return nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		player = domain.Player{
			ID:             idx.New().String(),
			Provider:       providerID,
			ProviderUserID: providerUserID,
			Roles:          []domain.Role{role},
		}

		if role.Name == domain.RoleAdmin {
			admins, err := tx.Players().CountPlayersByRole(ctx, role.ID)
			if err != nil {
				return err
			}
			if admins == 0 {
				// Very first admin: allow, and tell the caller setup ran.
				firstTimeSetup = true
			} else {
				// An admin already exists; lock the newcomer until an
				// existing admin unlocks it.
				player.Locked = true
			}
		}

		return tx.Players().CreatePlayer(ctx, player)
	})
	if err == nil {
		return player, firstTimeSetup, nil
	}
	if !errors.Is(err, store.ErrAlreadyExists) {
		return domain.Player{}, false, err
	}

	// Lost a concurrent first-login race: the unique (provider, user) index
	// rejected our insert, so the winner's row exists. Return it.
	winner, err := s.Store.Players().GetPlayerByProviderUserID(ctx, providerID, providerUserID)
	if err != nil {
		return domain.Player{}, false, err
	}
	return winner, false, nil
}
