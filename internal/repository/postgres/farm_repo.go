package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// FarmRepo implements FarmRepository using PostgreSQL.
type FarmRepo struct{ db *DB }

// NewFarmRepo constructs a farm repository.
func NewFarmRepo(db *DB) *FarmRepo { return &FarmRepo{db: db} }

const farmCols = `id, user_id, name, location, image_url, status, created_at, updated_at, archived_at`

// Create inserts a farm row.
func (r *FarmRepo) Create(ctx context.Context, f *model.Farm) error {
	const q = `
INSERT INTO farms (id, user_id, name, location, image_url, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Pool.Exec(ctx, q, f.ID, f.UserID, f.Name, f.Location, f.ImageURL, string(f.Status), f.CreatedAt, f.UpdatedAt)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Get selects a farm by id.
func (r *FarmRepo) Get(ctx context.Context, id uuid.UUID) (*model.Farm, error) {
	f, err := scanFarm(r.db.Pool.QueryRow(ctx, `SELECT `+farmCols+` FROM farms WHERE id = $1`, id))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return f, nil
}

// ListActiveByUser returns active farms of userID ordered by created_at desc.
func (r *FarmRepo) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]model.Farm, error) {
	const q = `
SELECT ` + farmCols + `
FROM farms
WHERE user_id = $1 AND status = 'active'
ORDER BY created_at DESC`
	return r.list(ctx, q, userID)
}

// ListAllByUser returns every farm of userID.
func (r *FarmRepo) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]model.Farm, error) {
	return r.list(ctx, `SELECT `+farmCols+` FROM farms WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *FarmRepo) list(ctx context.Context, q string, userID uuid.UUID) ([]model.Farm, error) {
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Farm{}
	for rows.Next() {
		f, err := scanFarm(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

// Update applies the non-nil fields. Status is never touched here.
func (r *FarmRepo) Update(ctx context.Context, userID, id uuid.UUID, u model.FarmUpdate, at time.Time) error {
	const q = `
UPDATE farms
SET name = COALESCE($3, name),
    location = COALESCE($4, location),
    image_url = COALESCE($5, image_url),
    updated_at = $6
WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Pool.Exec(ctx, q, id, userID, u.Name, u.Location, u.ImageURL, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Archive flips status to archived. A farm already archived keeps its archived_at.
func (r *FarmRepo) Archive(ctx context.Context, userID, id uuid.UUID, at time.Time) (bool, error) {
	const q = `
UPDATE farms
SET status = 'archived', archived_at = $3, updated_at = $3
WHERE id = $1 AND user_id = $2 AND status = 'active'`
	tag, err := r.db.Pool.Exec(ctx, q, id, userID, at)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	var status string
	err = r.db.Pool.QueryRow(ctx, `SELECT status FROM farms WHERE id = $1 AND user_id = $2`, id, userID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, errs.ErrNotFound
	}
	return false, err
}

// DeleteByUser removes every farm of userID.
func (r *FarmRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM farms WHERE user_id = $1`, userID)
	return err
}

func scanFarm(row pgx.Row) (*model.Farm, error) {
	var (
		f      model.Farm
		status string
	)
	if err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.Location, &f.ImageURL, &status, &f.CreatedAt, &f.UpdatedAt, &f.ArchivedAt); err != nil {
		return nil, err
	}
	f.Status = model.FarmStatus(status)
	return &f, nil
}
