package sqlite

import (
	"context"
	"time"

	"github.com/opengamebackend/auth/internal/auth/domain"
	"github.com/opengamebackend/auth/internal/auth/store"
)

type secretKeysRepo struct {
	db dbtx
}

func (r *secretKeysRepo) GetSecretKey(ctx context.Context, key string) (domain.SecretKey, error) {
	var k domain.SecretKey
	err := r.db.QueryRowContext(ctx,
		`SELECT key, created_at FROM secret_keys WHERE key = ?`, key).
		Scan(&k.Key, &k.CreatedAt)
	if err != nil {
		return domain.SecretKey{}, mapNotFound(err)
	}
	return k, nil
}

func (r *secretKeysRepo) CreateSecretKey(ctx context.Context, k domain.SecretKey) error {
	createdAt := k.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO secret_keys (key, created_at) VALUES (?, ?)`, k.Key, createdAt)
	return mapConflict(err)
}

func (r *secretKeysRepo) DeleteSecretKey(ctx context.Context, key string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM secret_keys WHERE key = ?`, key)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *secretKeysRepo) ListSecretKeys(ctx context.Context) ([]domain.SecretKey, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, created_at FROM secret_keys ORDER BY created_at, key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []domain.SecretKey
	for rows.Next() {
		var k domain.SecretKey
		if err := rows.Scan(&k.Key, &k.CreatedAt); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
