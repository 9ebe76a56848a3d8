package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/and161185/micromuu/internal/repository"
	"github.com/and161185/micromuu/internal/storage"
)

// Purger removes a user and everything they own. It backs the operator
// cleanup command and is not reachable over the API.
type Purger struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	farms    repository.FarmRepository
	images   storage.ImageStore
	log      *zap.Logger
}

// NewPurger constructs a Purger.
func NewPurger(users repository.UserRepository, profiles repository.ProfileRepository, farms repository.FarmRepository, images storage.ImageStore, log *zap.Logger) *Purger {
	return &Purger{users: users, profiles: profiles, farms: farms, images: images, log: log}
}

// PurgeUser deletes photos, farms, the profile and the account of email.
func (p *Purger) PurgeUser(ctx context.Context, email string) error {
	u, err := p.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return fmt.Errorf("lookup %s: %w", email, err)
	}
	farms, err := p.farms.ListAllByUser(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("list farms: %w", err)
	}
	for _, f := range farms {
		if err := p.images.Delete(ctx, storage.FarmImageKey(u.ID, f.ID)); err != nil {
			return err
		}
	}
	if err := p.farms.DeleteByUser(ctx, u.ID); err != nil {
		return fmt.Errorf("delete farms: %w", err)
	}
	if err := p.profiles.Delete(ctx, u.ID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if err := p.users.Delete(ctx, u.ID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	p.log.Info("user purged", zap.String("user_id", u.ID.String()), zap.Int("farms", len(farms)))
	return nil
}
