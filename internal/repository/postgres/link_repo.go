package postgres

import (
	"context"
	"time"

	"github.com/and161185/micromuu/internal/model"
)

// LinkRepo implements LinkRepository using PostgreSQL.
type LinkRepo struct{ db *DB }

// NewLinkRepo constructs a sign-in link repository.
func NewLinkRepo(db *DB) *LinkRepo { return &LinkRepo{db: db} }

// Create stores a new link.
func (r *LinkRepo) Create(ctx context.Context, l *model.SignInLink) error {
	const q = `
INSERT INTO sign_in_links (id, email, token_hash, continue_url, expires_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at`
	return r.db.Pool.QueryRow(ctx, q, l.ID, l.Email, l.TokenHash, l.ContinueURL, l.ExpiresAt).Scan(&l.CreatedAt)
}

// Consume atomically marks the link used. A second call for the same token finds no row.
func (r *LinkRepo) Consume(ctx context.Context, tokenHash []byte, email string, now time.Time) (*model.SignInLink, error) {
	const q = `
UPDATE sign_in_links
SET used_at = $3
WHERE token_hash = $1 AND email = $2 AND used_at IS NULL AND expires_at > $3
RETURNING id, email, token_hash, continue_url, expires_at, used_at, created_at`
	var l model.SignInLink
	err := r.db.Pool.QueryRow(ctx, q, tokenHash, email, now).
		Scan(&l.ID, &l.Email, &l.TokenHash, &l.ContinueURL, &l.ExpiresAt, &l.UsedAt, &l.CreatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &l, nil
}
