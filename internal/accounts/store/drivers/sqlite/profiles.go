package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/campuspass/internal/accounts/domain"
	"github.com/aussiebroadwan/campuspass/internal/accounts/store"
)

const profileColumns = `id, kind, number, email, user_id, created_at, updated_at`

type profilesRepo struct {
	db dbtx
}

func (r *profilesRepo) GetProfileByNumber(ctx context.Context, kind domain.ProfileKind, number string) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE kind = ? AND number = ?`,
		string(kind), number)
	return scanProfile(row)
}

func (r *profilesRepo) GetProfileByEmail(ctx context.Context, email string) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE email = ? LIMIT 1`, email)
	return scanProfile(row)
}

// GetProfileByUserID resolves the contact profile for a user. The CASE
// ordering implements the fixed recovery precedence: student, employee,
// external, guest; profiles without an email are skipped.
func (r *profilesRepo) GetProfileByUserID(ctx context.Context, userID string) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles
		 WHERE user_id = ? AND email <> ''
		 ORDER BY CASE kind
			WHEN 'student' THEN 0
			WHEN 'employee' THEN 1
			WHEN 'external' THEN 2
			ELSE 3 END
		 LIMIT 1`, userID)
	return scanProfile(row)
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (id, kind, number, email, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, string(p.Kind), p.Number, p.Email, mapOptionalString(p.UserID), now, now)
	return mapConflict(err)
}

func (r *profilesRepo) LinkUser(ctx context.Context, profileID string, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET user_id = ?, updated_at = ? WHERE id = ?`,
		userID, time.Now().UTC(), profileID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanProfile(s scanner) (domain.Profile, error) {
	var (
		p      domain.Profile
		kind   string
		userID sql.NullString
	)
	err := s.Scan(&p.ID, &kind, &p.Number, &p.Email, &userID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	p.Kind = domain.ProfileKind(kind)
	p.UserID = mapNullStringPtr(userID)
	return p, nil
}
