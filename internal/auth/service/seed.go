package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/opengamebackend/auth/internal/auth/domain"
	"github.com/opengamebackend/auth/internal/auth/store"
	"github.com/opengamebackend/auth/pkg/idx"
	"github.com/opengamebackend/auth/pkg/slogx"
)

// RolesService seeds and reads the role catalog. Roles are created only here,
// once at process start; the login engine never writes them.
type RolesService struct {
	Store store.Store
}

// EnsureRoles idempotently creates any of the named roles that do not exist
// yet. The whole seeding pass runs in one transaction so a partially seeded
// catalog never becomes visible.
func (s *RolesService) EnsureRoles(ctx context.Context, names ...string) error {
	l := slogx.FromContext(ctx)

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, name := range names {
			_, err := tx.Roles().GetRoleByName(ctx, name)
			if err == nil {
				continue
			}
			if !errors.Is(err, store.ErrNotFound) {
				return err
			}

			err = tx.Roles().CreateRole(ctx, domain.Role{
				ID:   idx.New().String(),
				Name: name,
			})
			if err != nil {
				return err
			}
			l.Info("seeded role", slog.String("role", name))
		}
		return nil
	})
}

// ListAll returns all roles in the system.
func (s *RolesService) ListAll(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListAll(ctx)
}
