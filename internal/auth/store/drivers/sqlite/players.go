package sqlite

import (
	"context"
	"time"

	"github.com/opengamebackend/auth/internal/auth/domain"
	"github.com/opengamebackend/auth/internal/auth/store"
)

type playersRepo struct {
	db dbtx
}

const playerColumns = `id, provider, provider_user_id, locked, created_at, updated_at`

func (r *playersRepo) GetPlayerByID(ctx context.Context, id string) (domain.Player, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE id = ?`, id)

	p, err := scanPlayer(row)
	if err != nil {
		return domain.Player{}, mapNotFound(err)
	}
	return r.withRoles(ctx, p)
}

func (r *playersRepo) GetPlayerByProviderUserID(
	ctx context.Context,
	provider, providerUserID string,
) (domain.Player, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE provider = ? AND provider_user_id = ?`,
		provider, providerUserID)

	p, err := scanPlayer(row)
	if err != nil {
		return domain.Player{}, mapNotFound(err)
	}
	return r.withRoles(ctx, p)
}

func (r *playersRepo) CreatePlayer(ctx context.Context, p domain.Player) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO players (id, provider, provider_user_id, locked, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Provider, p.ProviderUserID, p.Locked, now, now)
	if err != nil {
		return mapConflict(err)
	}

	for _, role := range p.Roles {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO player_roles (player_id, role_id) VALUES (?, ?)`,
			p.ID, role.ID)
		if err != nil {
			return mapConflict(err)
		}
	}
	return nil
}

func (r *playersRepo) SetPlayerLocked(ctx context.Context, id string, locked bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE players SET locked = ?, updated_at = ? WHERE id = ?`,
		locked, time.Now().UTC(), id)
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

func (r *playersRepo) ListPlayersByRole(
	ctx context.Context,
	roleID string,
	limit, offset int,
) ([]domain.Player, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.provider, p.provider_user_id, p.locked, p.created_at, p.updated_at
		 FROM players p
		 JOIN player_roles pr ON pr.player_id = p.id
		 WHERE pr.role_id = ?
		 ORDER BY p.id
		 LIMIT ? OFFSET ?`,
		roleID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range players {
		players[i], err = r.withRoles(ctx, players[i])
		if err != nil {
			return nil, err
		}
	}
	return players, nil
}

func (r *playersRepo) CountPlayersByRole(ctx context.Context, roleID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM player_roles WHERE role_id = ?`, roleID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// withRoles attaches the player's role memberships.
func (r *playersRepo) withRoles(ctx context.Context, p domain.Player) (domain.Player, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT r.id, r.name, r.created_at, r.updated_at
		 FROM roles r
		 JOIN player_roles pr ON pr.role_id = r.id
		 WHERE pr.player_id = ?
		 ORDER BY r.name`,
		p.ID)
	if err != nil {
		return domain.Player{}, err
	}
	defer rows.Close()

	p.Roles = nil
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return domain.Player{}, err
		}
		p.Roles = append(p.Roles, role)
	}
	return p, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (domain.Player, error) {
	var p domain.Player
	err := row.Scan(&p.ID, &p.Provider, &p.ProviderUserID, &p.Locked, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
