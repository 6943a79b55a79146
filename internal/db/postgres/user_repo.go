package postgres

import (
	"context"
	"database/sql"

	"Shibaboard/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	query := `
		SELECT id, handle, display_name, is_admin, is_premium, is_banned,
			banned_at, created_at
		FROM users
		WHERE id = $1
	`

	var user users.User
	var bannedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Handle, &user.DisplayName, &user.IsAdmin,
		&user.IsPremium, &user.IsBanned, &bannedAt, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, wrapErr("get user", err)
	}
	if bannedAt.Valid {
		user.BannedAt = &bannedAt.Time
	}
	return &user, nil
}

func (r *postgresUserRepo) ListAdminIDs(ctx context.Context) ([]int64, error) {
	query := `SELECT id FROM users WHERE is_admin = TRUE AND is_banned = FALSE ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapErr("list admins", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, wrapErr("scan admin id", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, wrapErr("iterate admins", err)
	}
	return ids, nil
}
