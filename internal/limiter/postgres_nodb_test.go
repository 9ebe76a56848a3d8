package limiter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct{ scan func(dest ...any) error }

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

type fakeQuerier struct {
	rowErr       error
	blockedUntil time.Time
	attempts     int

	execSQL []string
	execErr error
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execSQL = append(f.execSQL, sql)
	return pgconn.CommandTag{}, f.execErr
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	return fakeRow{scan: func(dest ...any) error {
		if f.rowErr != nil {
			return f.rowErr
		}
		switch {
		case strings.Contains(sql, "SELECT blocked_until"):
			*(dest[0].(*time.Time)) = f.blockedUntil
		case strings.Contains(sql, "RETURNING attempts"):
			*(dest[0].(*int)) = f.attempts
		default:
			return errors.New("unexpected query")
		}
		return nil
	}}
}

var testCfg = Config{Window: 15 * time.Minute, MaxAttempts: 5, BlockFor: 10 * time.Minute}

func fixedLimiter(q pgxQuerier, now time.Time) *PG {
	l := NewPG(q, testCfg)
	l.now = func() time.Time { return now }
	return l
}

func TestAllow(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	ok, dur, err := fixedLimiter(&fakeQuerier{rowErr: pgx.ErrNoRows}, now).Allow(context.Background(), "signin:a@b.co", []byte("h"))
	if err != nil || !ok || dur != 0 {
		t.Fatalf("no row: ok=%v dur=%v err=%v", ok, dur, err)
	}

	ok, dur, err = fixedLimiter(&fakeQuerier{blockedUntil: now.Add(3 * time.Minute)}, now).Allow(context.Background(), "s", nil)
	if err != nil || ok || dur != 3*time.Minute {
		t.Fatalf("blocked: ok=%v dur=%v err=%v", ok, dur, err)
	}

	ok, _, err = fixedLimiter(&fakeQuerier{blockedUntil: now.Add(-time.Second)}, now).Allow(context.Background(), "s", nil)
	if err != nil || !ok {
		t.Fatalf("expired block: ok=%v err=%v", ok, err)
	}

	ok, _, err = fixedLimiter(&fakeQuerier{rowErr: errors.New("db boom")}, now).Allow(context.Background(), "s", nil)
	if err == nil || ok {
		t.Fatalf("want error propagated, ok=%v err=%v", ok, err)
	}
}

func TestSuccess(t *testing.T) {
	t.Parallel()

	fq := &fakeQuerier{}
	if err := NewPG(fq, testCfg).Success(context.Background(), "s", nil); err != nil {
		t.Fatalf("success: %v", err)
	}
	if len(fq.execSQL) != 1 || !strings.Contains(fq.execSQL[0], "INSERT INTO auth_limiter") {
		t.Fatalf("unexpected exec: %v", fq.execSQL)
	}

	if err := NewPG(&fakeQuerier{execErr: errors.New("exec fail")}, testCfg).Success(context.Background(), "s", nil); err == nil {
		t.Fatalf("want exec error")
	}
}

func TestFailure(t *testing.T) {
	t.Parallel()

	fq := &fakeQuerier{attempts: 2}
	blocked, dur, err := NewPG(fq, testCfg).Failure(context.Background(), "s", nil)
	if err != nil || blocked || dur != 0 || len(fq.execSQL) != 0 {
		t.Fatalf("below threshold: blocked=%v dur=%v err=%v exec=%v", blocked, dur, err, fq.execSQL)
	}

	fq = &fakeQuerier{attempts: 5}
	blocked, dur, err = NewPG(fq, testCfg).Failure(context.Background(), "s", nil)
	if err != nil || !blocked || dur != 10*time.Minute {
		t.Fatalf("at threshold: blocked=%v dur=%v err=%v", blocked, dur, err)
	}
	if len(fq.execSQL) != 1 || !strings.Contains(fq.execSQL[0], "UPDATE auth_limiter SET blocked_until") {
		t.Fatalf("must set blocked_until, exec=%v", fq.execSQL)
	}

	if _, _, err := NewPG(&fakeQuerier{rowErr: errors.New("query")}, testCfg).Failure(context.Background(), "s", nil); err == nil {
		t.Fatalf("want error from RETURNING")
	}
}

func TestSubjectAndHashIP(t *testing.T) {
	t.Parallel()

	if got := Subject(ScopeLink, "  Ricardo@X.com "); got != "link:ricardo@x.com" {
		t.Fatalf("Subject: %q", got)
	}
	a, b, c := HashIP("1.2.3.4:1"), HashIP("1.2.3.4:1"), HashIP("5.6.7.8:2")
	if string(a) != string(b) || string(a) == string(c) || len(a) != 32 {
		t.Fatalf("HashIP mismatch")
	}
	if ok, _, _ := (Nop{}).Allow(context.Background(), "s", nil); !ok {
		t.Fatalf("Nop must allow")
	}
}
