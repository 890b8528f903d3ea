package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/opengamebackend/auth/internal/auth/domain"
	"github.com/opengamebackend/auth/internal/auth/store"
	"github.com/opengamebackend/auth/pkg/cryptox"
	"github.com/opengamebackend/auth/pkg/slogx"
)

// ErrInvalidSecretKey is returned when revoking a key that does not exist.
var ErrInvalidSecretKey = errors.New("invalid secret key")

// SecretKeysService manages the pre-shared keys accepted by the "server"
// auth provider.
type SecretKeysService struct {
	Store store.Store
}

// GenerateSecretKey mints a new 256-bit random key, persists it and returns
// it. The key space makes collisions negligible; the store's uniqueness
// constraint catches the rest.
func (s *SecretKeysService) GenerateSecretKey(ctx context.Context) (string, error) {
	key, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", err
	}

	if err := s.Store.SecretKeys().CreateSecretKey(ctx, domain.SecretKey{Key: key}); err != nil {
		return "", err
	}

	slogx.FromContext(ctx).Info("secret key generated")
	return key, nil
}

// RemoveSecretKey revokes a key permanently. In-flight server logins with the
// key fail from this point on.
func (s *SecretKeysService) RemoveSecretKey(ctx context.Context, key string) error {
	if err := s.Store.SecretKeys().DeleteSecretKey(ctx, key); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidSecretKey
		}
		return err
	}

	slogx.FromContext(ctx).Info("secret key revoked")
	return nil
}

// ListSecretKeys enumerates all currently valid keys.
func (s *SecretKeysService) ListSecretKeys(ctx context.Context) ([]string, error) {
	records, err := s.Store.SecretKeys().ListSecretKeys(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(records))
	for i, r := range records {
		keys[i] = r.Key
	}

	slogx.FromContext(ctx).Debug("secret keys listed", slog.Int("count", len(keys)))
	return keys, nil
}
