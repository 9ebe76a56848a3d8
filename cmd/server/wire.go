package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/and161185/micromuu/internal/migrate"
	"github.com/and161185/micromuu/internal/repository"
	"github.com/and161185/micromuu/internal/repository/mongostore"
	"github.com/and161185/micromuu/internal/repository/postgres"
	"github.com/and161185/micromuu/internal/storage"
)

// backends holds the opened stores; close releases them.
type backends struct {
	db       *postgres.DB
	users    repository.UserRepository
	links    repository.LinkRepository
	profiles repository.ProfileRepository
	farms    repository.FarmRepository
	images   storage.ImageStore
	closers  []func()
}

func (b *backends) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// openBackends migrates and opens Postgres, the document store and the photo bucket.
func openBackends(ctx context.Context, c *config, log *zap.Logger) (*backends, error) {
	b := &backends{}
	if err := migrate.Up(ctx, c.dsn, log); err != nil {
		return nil, fmt.Errorf("migrate up: %w", err)
	}
	db, err := postgres.New(ctx, c.dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	b.db = db
	b.closers = append(b.closers, db.Close)
	b.users = postgres.NewUserRepo(db)
	b.links = postgres.NewLinkRepo(db)

	switch c.store {
	case "postgres":
		b.profiles = postgres.NewProfileRepo(db)
		b.farms = postgres.NewFarmRepo(db)
	case "mongo":
		ms, err := mongostore.Connect(ctx, c.mongoURI, c.mongoDB)
		if err != nil {
			b.close()
			return nil, fmt.Errorf("mongo: %w", err)
		}
		b.closers = append(b.closers, func() { _ = ms.Close(context.Background()) })
		b.profiles = ms.Profiles()
		b.farms = ms.Farms()
	default:
		b.close()
		return nil, errors.New("unknown --store " + c.store)
	}

	if c.s3Bucket == "" {
		log.Warn("no bucket configured; farm photos are kept in memory")
		b.images = storage.NewMemory()
		return b, nil
	}
	s3, err := storage.NewS3(ctx, storage.S3Config{
		Bucket:        c.s3Bucket,
		Region:        c.s3Region,
		Endpoint:      c.s3Endpoint,
		AccessKey:     c.s3AccessKey,
		SecretKey:     c.s3SecretKey,
		UsePathStyle:  c.s3PathStyle,
		PublicBaseURL: c.s3PublicBase,
		URLExpiry:     c.s3URLExpiry,
	})
	if err != nil {
		b.close()
		return nil, fmt.Errorf("s3: %w", err)
	}
	b.images = s3
	return b, nil
}
