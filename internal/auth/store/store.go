package store

import (
	"context"
	"errors"

	"github.com/opengamebackend/auth/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement this. Sub-repositories keep concerns tidy and
// testable, and make it harder to accidentally nest transactions.
type Store interface {
	Players() Players
	Roles() Roles
	SecretKeys() SecretKeys

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing on nil and rolling
	// back on error. Prefer this over Tx for multi-step operations that must
	// be atomic (e.g. the first-admin bootstrap check).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Players interface {
	// GetPlayerByID returns a player, roles included, by internal id.
	GetPlayerByID(ctx context.Context, id string) (domain.Player, error)

	// GetPlayerByProviderUserID is the login-path lookup. Returns ErrNotFound
	// for a never-seen (provider, providerUserID) pair.
	GetPlayerByProviderUserID(ctx context.Context, provider, providerUserID string) (domain.Player, error)

	// CreatePlayer inserts a new player together with its role memberships.
	// Returns ErrAlreadyExists when the (provider, provider_user_id) unique
	// index is violated by a concurrent first login.
	CreatePlayer(ctx context.Context, p domain.Player) error

	// SetPlayerLocked flips the lock flag and bumps updated_at.
	SetPlayerLocked(ctx context.Context, id string, locked bool) error

	// ListPlayersByRole returns players holding the role, ordered by id so
	// that pagination is deterministic absent concurrent writes.
	ListPlayersByRole(ctx context.Context, roleID string, limit, offset int) ([]domain.Player, error)

	// CountPlayersByRole counts players holding the role.
	CountPlayersByRole(ctx context.Context, roleID string) (int, error)
}

type Roles interface {
	// GetRoleByName fetches a role by its unique name.
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)

	// ListAll returns all roles in the system.
	ListAll(ctx context.Context) ([]domain.Role, error)

	// CreateRole inserts a new role (id is ULID). Used only by startup seeding.
	CreateRole(ctx context.Context, r domain.Role) error
}

type SecretKeys interface {
	// GetSecretKey returns the key record, or ErrNotFound.
	GetSecretKey(ctx context.Context, key string) (domain.SecretKey, error)

	// CreateSecretKey persists a freshly generated key.
	CreateSecretKey(ctx context.Context, k domain.SecretKey) error

	// DeleteSecretKey revokes a key permanently. Returns ErrNotFound if the
	// key does not exist.
	DeleteSecretKey(ctx context.Context, key string) error

	// ListSecretKeys enumerates all valid keys.
	ListSecretKeys(ctx context.Context) ([]domain.SecretKey, error)
}
