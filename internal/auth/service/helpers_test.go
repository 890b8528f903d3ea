package service

import (
	"context"
	"testing"

	"github.com/opengamebackend/auth/internal/auth/store"
	"github.com/opengamebackend/auth/internal/auth/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

// newTestStore returns a migrated in-memory sqlite store.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// seedDefaultRoles creates the well-known roles the way app startup does.
func seedDefaultRoles(t *testing.T, st store.Store) {
	t.Helper()

	roles := &RolesService{Store: st}
	require.NoError(t, roles.EnsureRoles(context.Background(), "user", "admin", "server"))
}
