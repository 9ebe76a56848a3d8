package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/and161185/micromuu/internal/client/backend"
	"github.com/and161185/micromuu/internal/client/identity"
	"github.com/and161185/micromuu/internal/client/kv"
	"github.com/and161185/micromuu/internal/client/pending"
	"github.com/and161185/micromuu/internal/client/session"
)

// Store kinds.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config is what the CLI flags select.
type Config struct {
	Addr               string
	CACert             string
	InsecureSkipVerify bool
	Plaintext          bool
	AuthMode           string
	Store              string
	StorePath          string
	RedisURL           string
	ContinueURL        string
	Timeout            time.Duration

	In  io.Reader
	Out io.Writer
}

// Open dials the server, restores the stored session and starts the
// reconciler.
func Open(ctx context.Context, cfg Config, log *zap.Logger) (*App, error) {
	strategy, err := session.StrategyFor(cfg.AuthMode)
	if err != nil {
		return nil, err
	}
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var ident *identity.Client
	cc, err := backend.Dial(ctx, backend.DialConfig{
		Addr:               cfg.Addr,
		CACert:             cfg.CACert,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Plaintext:          cfg.Plaintext,
		Token: func() string {
			if ident == nil {
				return ""
			}
			return ident.Token()
		},
	})
	if err != nil {
		_ = closeStore()
		return nil, fmt.Errorf("dial %s: %w", cfg.Addr, err)
	}

	ident = identity.New(backend.NewIdentityAPI(cc), store, cfg.ContinueURL, log.Named("identity"))
	if err := ident.Restore(ctx); err != nil {
		_ = cc.Close()
		_ = closeStore()
		return nil, err
	}
	profiles := backend.NewProfileAPI(cc)
	sess := session.New(session.Config{
		Identity: ident,
		Profiles: profiles,
		Pending:  pending.New(store),
		Strategy: strategy,
		Log:      log.Named("session"),
	})
	sess.Start(ctx)

	a := New(Deps{
		Identity: ident,
		Session:  sess,
		Profiles: profiles,
		Farms:    backend.NewFarmAPI(cc),
		In:       cfg.In,
		Out:      cfg.Out,
		Log:      log,
		Timeout:  cfg.Timeout,
	})
	a.closers = append(a.closers, closeStore, cc.Close)
	log.Debug("client ready", zap.String("addr", cfg.Addr), zap.String("store", cfg.Store), zap.String("auth", strategy.Name()))
	return a, nil
}

func openStore(ctx context.Context, cfg Config) (kv.Store, func() error, error) {
	switch cfg.Store {
	case StoreMemory:
		return kv.NewMemory(), func() error { return nil }, nil
	case StoreRedis:
		r, err := kv.NewRedis(ctx, cfg.RedisURL, "micromuu:")
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil
	case "", StoreSQLite:
		path := cfg.StorePath
		if path == "" {
			path = filepath.Join(ConfigDir(), "micromuu.db")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, nil, err
		}
		s, err := kv.OpenSQLite(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
