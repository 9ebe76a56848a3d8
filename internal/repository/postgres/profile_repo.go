package postgres

import (
	"context"
	"time"

	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
	"github.com/gofrs/uuid/v5"
)

// ProfileRepo implements ProfileRepository using PostgreSQL.
type ProfileRepo struct{ db *DB }

// NewProfileRepo constructs a profile repository.
func NewProfileRepo(db *DB) *ProfileRepo { return &ProfileRepo{db: db} }

// Create inserts the profile row. CreatedAt is taken from the caller so that
// both stores agree on server-side timestamps.
func (r *ProfileRepo) Create(ctx context.Context, p *model.Profile) error {
	const q = `
INSERT INTO profiles (user_id, name, last_name, email, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Pool.Exec(ctx, q, p.UserID, p.Name, p.LastName, p.Email, p.CreatedAt)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Get selects the profile of userID.
func (r *ProfileRepo) Get(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	const q = `
SELECT user_id, name, last_name, email, created_at, updated_at
FROM profiles WHERE user_id = $1`
	var p model.Profile
	if err := r.db.Pool.QueryRow(ctx, q, userID).Scan(&p.UserID, &p.Name, &p.LastName, &p.Email, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, mapNoRows(err)
	}
	return &p, nil
}

// Exists reports whether a profile row exists.
func (r *ProfileRepo) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var ok bool
	err := r.db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM profiles WHERE user_id = $1)`, userID).Scan(&ok)
	return ok, err
}

// Update applies the non-nil fields.
func (r *ProfileRepo) Update(ctx context.Context, userID uuid.UUID, u model.ProfileUpdate, at time.Time) error {
	const q = `
UPDATE profiles
SET name = COALESCE($2, name),
    last_name = COALESCE($3, last_name),
    email = COALESCE($4, email),
    updated_at = $5
WHERE user_id = $1`
	tag, err := r.db.Pool.Exec(ctx, q, userID, u.Name, u.LastName, u.Email, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes the profile row.
func (r *ProfileRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	return err
}
