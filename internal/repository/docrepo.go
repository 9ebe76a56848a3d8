package repository

import (
	"context"
	"time"

	"github.com/and161185/micromuu/internal/model"
	"github.com/gofrs/uuid/v5"
)

// ProfileRepository stores one profile document per user.
type ProfileRepository interface {
	// Create inserts the profile; ErrAlreadyExists if one exists.
	Create(ctx context.Context, p *model.Profile) error
	// Get loads the profile of userID.
	Get(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	// Exists reports whether userID has a profile.
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
	// Update applies the non-nil fields and stamps updated_at.
	Update(ctx context.Context, userID uuid.UUID, u model.ProfileUpdate, at time.Time) error
	// Delete removes the profile; used only by the purge utility.
	Delete(ctx context.Context, userID uuid.UUID) error
}

// FarmRepository stores farm documents.
type FarmRepository interface {
	// Create inserts a farm.
	Create(ctx context.Context, f *model.Farm) error
	// Get loads a farm by id regardless of owner.
	Get(ctx context.Context, id uuid.UUID) (*model.Farm, error)
	// ListActiveByUser returns active farms of userID, newest first.
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]model.Farm, error)
	// ListAllByUser returns every farm of userID regardless of status.
	ListAllByUser(ctx context.Context, userID uuid.UUID) ([]model.Farm, error)
	// Update applies non-nil fields to a farm of userID and stamps updated_at.
	Update(ctx context.Context, userID, id uuid.UUID, u model.FarmUpdate, at time.Time) error
	// Archive flips an active farm of userID to archived, stamping archived_at and updated_at.
	// Returns false when the farm exists but was already archived.
	Archive(ctx context.Context, userID, id uuid.UUID, at time.Time) (bool, error)
	// DeleteByUser removes every farm of userID; used only by the purge utility.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
