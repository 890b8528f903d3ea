package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSecretKeyLifecycle(t *testing.T) {
	st := newTestStore(t)
	svc := &SecretKeysService{Store: st}
	ctx := context.Background()

	key, err := svc.GenerateSecretKey(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, key)

	keys, err := svc.ListSecretKeys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{key}, keys)

	require.NoError(t, svc.RemoveSecretKey(ctx, key))

	keys, err = svc.ListSecretKeys(ctx)
	require.NoError(t, err)
	require.Empty(t, keys)
}

func TestGenerateSecretKeysAreDistinct(t *testing.T) {
	st := newTestStore(t)
	svc := &SecretKeysService{Store: st}
	ctx := context.Background()

	seen := map[string]bool{}
	for range 10 {
		key, err := svc.GenerateSecretKey(ctx)
		require.NoError(t, err)
		require.False(t, seen[key])
		seen[key] = true
	}
}

func TestRemoveUnknownSecretKey(t *testing.T) {
	st := newTestStore(t)
	svc := &SecretKeysService{Store: st}

	err := svc.RemoveSecretKey(context.Background(), "no-such-key")
	require.ErrorIs(t, err, ErrInvalidSecretKey)
}
