package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureRolesIdempotent(t *testing.T) {
	st := newTestStore(t)
	svc := &RolesService{Store: st}
	ctx := context.Background()

	require.NoError(t, svc.EnsureRoles(ctx, "user", "admin", "server"))
	require.NoError(t, svc.EnsureRoles(ctx, "user", "admin", "server"))

	roles, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 3)

	names := map[string]bool{}
	for _, r := range roles {
		names[r.Name] = true
		require.NotEmpty(t, r.ID)
	}
	require.True(t, names["user"] && names["admin"] && names["server"])
}

func TestEnsureRolesAddsMissingOnly(t *testing.T) {
	st := newTestStore(t)
	svc := &RolesService{Store: st}
	ctx := context.Background()

	require.NoError(t, svc.EnsureRoles(ctx, "user"))

	before, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, before, 1)

	require.NoError(t, svc.EnsureRoles(ctx, "user", "admin"))

	after, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, after, 2)

	// The pre-existing role keeps its id.
	for _, r := range after {
		if r.Name == "user" {
			require.Equal(t, before[0].ID, r.ID)
		}
	}
}
