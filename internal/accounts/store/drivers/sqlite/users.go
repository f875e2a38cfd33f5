package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/campuspass/internal/accounts/domain"
	"github.com/aussiebroadwan/campuspass/internal/accounts/store"
)

const userColumns = `id, username, password_hash, role, otp, locked, active, joined_at, last_login_at`

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) GetUserByOTP(ctx context.Context, otp string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE otp = ?`, otp)
	return scanUser(row)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY joined_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, role, otp, locked, active, joined_at, last_login_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.PasswordHash, string(u.Role),
		mapOptionalString(u.OTP), u.Locked, u.Active, u.JoinedAt.UTC(),
		mapOptionalTime(u.LastLoginAt),
	)
	return mapConflict(err)
}

func (r *usersRepo) UpdateOTP(ctx context.Context, userID string, otp string) error {
	return r.exec(ctx, `UPDATE users SET otp = ? WHERE id = ?`, otp, userID)
}

func (r *usersRepo) ClearOTP(ctx context.Context, userID string) error {
	return r.exec(ctx, `UPDATE users SET otp = NULL WHERE id = ?`, userID)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	return r.exec(ctx, `UPDATE users SET password_hash = ? WHERE id = ?`, newHash, userID)
}

func (r *usersRepo) UpdateUsername(ctx context.Context, userID string, username string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = ? WHERE id = ?`, username, userID)
	return mapConflict(err)
}

func (r *usersRepo) SetLocked(ctx context.Context, userID string, locked bool) error {
	return r.exec(ctx, `UPDATE users SET locked = ? WHERE id = ?`, locked, userID)
}

func (r *usersRepo) UpdateLastLogin(ctx context.Context, userID string) error {
	return r.exec(ctx, `UPDATE users SET last_login_at = ? WHERE id = ?`, time.Now().UTC(), userID)
}

func (r *usersRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (domain.User, error) {
	var (
		u         domain.User
		role      string
		otp       sql.NullString
		lastLogin sql.NullTime
	)
	err := s.Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &otp,
		&u.Locked, &u.Active, &u.JoinedAt, &lastLogin)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Role = domain.Role(role)
	u.OTP = mapNullStringPtr(otp)
	u.LastLoginAt = mapNullTimePtr(lastLogin)
	return u, nil
}

func mapOptionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
