package limiter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Config holds the sliding window parameters.
type Config struct {
	Window      time.Duration // attempts older than this restart the count
	MaxAttempts int
	BlockFor    time.Duration
}

// PG is a PostgreSQL-backed limiter with sliding window and lockout.
type PG struct {
	q   pgxQuerier
	cfg Config
	now func() time.Time
}

type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPG constructs a limiter over a pool or any querier (tests pass a fake).
func NewPG(q pgxQuerier, cfg Config) *PG {
	return &PG{q: q, cfg: cfg, now: time.Now}
}

// Allow reports whether an attempt is allowed and a retry-after duration.
func (l *PG) Allow(ctx context.Context, subject string, ipHash []byte) (bool, time.Duration, error) {
	const q = `SELECT blocked_until FROM auth_limiter WHERE subject=$1 AND ip_hash=$2`
	var blockedUntil time.Time
	err := l.q.QueryRow(ctx, q, subject, ipHash).Scan(&blockedUntil)
	switch {
	case err == nil:
		if now := l.now(); blockedUntil.After(now) {
			return false, blockedUntil.Sub(now), nil
		}
		return true, 0, nil
	case errors.Is(err, pgx.ErrNoRows):
		return true, 0, nil
	default:
		return false, 0, err
	}
}

// Success resets counters for (subject, ip).
func (l *PG) Success(ctx context.Context, subject string, ipHash []byte) error {
	const q = `
INSERT INTO auth_limiter (subject, ip_hash, attempts, blocked_until, updated_at)
VALUES ($1, $2, 0, 'epoch', $3)
ON CONFLICT (subject, ip_hash)
DO UPDATE SET attempts = 0, blocked_until = 'epoch', updated_at = $3`
	_, err := l.q.Exec(ctx, q, subject, ipHash, l.now())
	return err
}

// Failure records an attempt; blocks once MaxAttempts land inside Window.
func (l *PG) Failure(ctx context.Context, subject string, ipHash []byte) (bool, time.Duration, error) {
	now := l.now()
	const q = `
INSERT INTO auth_limiter (subject, ip_hash, attempts, blocked_until, updated_at)
VALUES ($1, $2, 1, 'epoch', $3)
ON CONFLICT (subject, ip_hash) DO UPDATE
SET
  attempts = CASE WHEN $3 - auth_limiter.updated_at > $4::interval THEN 1 ELSE auth_limiter.attempts + 1 END,
  updated_at = $3
RETURNING attempts`
	var attempts int
	if err := l.q.QueryRow(ctx, q, subject, ipHash, now, l.cfg.Window).Scan(&attempts); err != nil {
		return false, 0, err
	}
	if attempts < l.cfg.MaxAttempts {
		return false, 0, nil
	}
	const upd = `UPDATE auth_limiter SET blocked_until = $3 WHERE subject = $1 AND ip_hash = $2`
	if _, err := l.q.Exec(ctx, upd, subject, ipHash, now.Add(l.cfg.BlockFor)); err != nil {
		return false, 0, err
	}
	return true, l.cfg.BlockFor, nil
}
