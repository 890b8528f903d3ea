package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/opengamebackend/auth/internal/auth/domain"
	"github.com/opengamebackend/auth/pkg/idx"
	"github.com/stretchr/testify/require"
)

func seedPlayers(t *testing.T, svc *PlayersService, role string, count int) {
	t.Helper()
	ctx := context.Background()

	r, err := svc.Store.Roles().GetRoleByName(ctx, role)
	require.NoError(t, err)

	for i := range count {
		err := svc.Store.Players().CreatePlayer(ctx, domain.Player{
			ID:             idx.New().String(),
			Provider:       "",
			ProviderUserID: fmt.Sprintf("%s-%d", role, i),
			Roles:          []domain.Role{r},
		})
		require.NoError(t, err)
	}
}

func TestListPlayersPagination(t *testing.T) {
	st := newTestStore(t)
	seedDefaultRoles(t, st)
	svc := &PlayersService{Store: st}

	seedPlayers(t, svc, "user", 150)

	page0, err := svc.ListPlayers(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, page0.Players, 100)
	require.Equal(t, 150, page0.TotalPlayers)
	require.Equal(t, 2, page0.TotalPages)

	page1, err := svc.ListPlayers(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, page1.Players, 50)

	// Pages are disjoint and ordered by id.
	require.Less(t, page0.Players[99].ID, page1.Players[0].ID)
}

func TestListPlayersEmptyStore(t *testing.T) {
	st := newTestStore(t)
	seedDefaultRoles(t, st)
	svc := &PlayersService{Store: st}

	page, err := svc.ListPlayers(context.Background(), 0)
	require.NoError(t, err)
	require.Empty(t, page.Players)
	require.Zero(t, page.TotalPlayers)
	require.Equal(t, 1, page.TotalPages)
}

func TestListPlayersExactMultipleOfPageSize(t *testing.T) {
	st := newTestStore(t)
	seedDefaultRoles(t, st)
	svc := &PlayersService{Store: st}

	seedPlayers(t, svc, "user", 200)

	page, err := svc.ListPlayers(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, 2, page.TotalPages)
}

func TestListAdminsIncludesLocked(t *testing.T) {
	st := newTestStore(t)
	seedDefaultRoles(t, st)
	svc := &PlayersService{Store: st}

	seedPlayers(t, svc, "admin", 2)

	_, err := svc.SetPlayerLocked(context.Background(), "", "admin-1", true)
	require.NoError(t, err)

	admins, err := svc.ListAdmins(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 2)

	var locked int
	for _, a := range admins {
		if a.Locked {
			locked++
		}
	}
	require.Equal(t, 1, locked)
}

func TestSetPlayerLocked(t *testing.T) {
	st := newTestStore(t)
	seedDefaultRoles(t, st)
	svc := &PlayersService{Store: st}

	seedPlayers(t, svc, "user", 1)

	t.Run("locks and unlocks", func(t *testing.T) {
		p, err := svc.SetPlayerLocked(context.Background(), "", "user-0", true)
		require.NoError(t, err)
		require.True(t, p.Locked)

		p, err = svc.SetPlayerLocked(context.Background(), "", "user-0", false)
		require.NoError(t, err)
		require.False(t, p.Locked)
	})

	t.Run("is idempotent", func(t *testing.T) {
		p, err := svc.SetPlayerLocked(context.Background(), "", "user-0", true)
		require.NoError(t, err)
		require.True(t, p.Locked)

		p, err = svc.SetPlayerLocked(context.Background(), "", "user-0", true)
		require.NoError(t, err)
		require.True(t, p.Locked)

		got, err := st.Players().GetPlayerByProviderUserID(context.Background(), "", "user-0")
		require.NoError(t, err)
		require.True(t, got.Locked)
	})

	t.Run("unknown player fails", func(t *testing.T) {
		_, err := svc.SetPlayerLocked(context.Background(), "", "nobody", true)
		require.ErrorIs(t, err, ErrPlayerNotFound)
	})
}
