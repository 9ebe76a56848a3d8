package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
	"github.com/and161185/micromuu/internal/repository"
	"github.com/and161185/micromuu/internal/storage"
	"github.com/and161185/micromuu/internal/validate"
)

// DefaultMaxImageBytes caps farm photo uploads.
const DefaultMaxImageBytes = 5 << 20

// FarmService defines farm CRUD, soft-archive and photo handling.
// Farms of other users are reported as not found.
type FarmService interface {
	// Create stores an active farm and returns its generated id.
	Create(ctx context.Context, userID uuid.UUID, in model.CreateFarm) (uuid.UUID, error)
	// ListByUser returns active farms, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Farm, error)
	// Get returns a farm of userID.
	Get(ctx context.Context, userID, farmID uuid.UUID) (*model.Farm, error)
	// Update applies a partial update and stamps updatedAt.
	Update(ctx context.Context, userID, farmID uuid.UUID, u model.FarmUpdate) error
	// Archive soft-deletes the farm; irreversible.
	Archive(ctx context.Context, userID, farmID uuid.UUID) error
	// UploadImage overwrites the farm photo and returns its URL.
	UploadImage(ctx context.Context, userID, farmID uuid.UUID, data []byte, contentType string) (string, error)
	// DeleteImage removes the farm photo; a missing object is fine.
	DeleteImage(ctx context.Context, userID, farmID uuid.UUID) error
}

type FarmServiceImpl struct {
	repo     repository.FarmRepository
	images   storage.ImageStore
	maxImage int
	now      func() time.Time
}

// NewFarmService constructs FarmService with an upload size limit.
func NewFarmService(repo repository.FarmRepository, images storage.ImageStore, maxImage int) *FarmServiceImpl {
	if maxImage <= 0 {
		maxImage = DefaultMaxImageBytes
	}
	return &FarmServiceImpl{repo: repo, images: images, maxImage: maxImage, now: time.Now}
}

// Create validates input, generates the id and stamps both timestamps.
func (s *FarmServiceImpl) Create(ctx context.Context, userID uuid.UUID, in model.CreateFarm) (uuid.UUID, error) {
	if userID == uuid.Nil {
		return uuid.Nil, errs.ErrUnauthorized
	}
	if err := validate.Farm(in.Name, in.Location); err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	now := s.now().UTC()
	f := &model.Farm{
		ID:        id,
		UserID:    userID,
		Name:      strings.TrimSpace(in.Name),
		Location:  strings.TrimSpace(in.Location),
		ImageURL:  in.ImageURL,
		Status:    model.FarmActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return uuid.Nil, fmt.Errorf("create farm: %w", err)
	}
	return id, nil
}

func (s *FarmServiceImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Farm, error) {
	return s.repo.ListActiveByUser(ctx, userID)
}

func (s *FarmServiceImpl) Get(ctx context.Context, userID, farmID uuid.UUID) (*model.Farm, error) {
	f, err := s.repo.Get(ctx, farmID)
	if err != nil {
		return nil, err
	}
	if f.UserID != userID {
		return nil, errs.ErrNotFound
	}
	return f, nil
}

func (s *FarmServiceImpl) Update(ctx context.Context, userID, farmID uuid.UUID, u model.FarmUpdate) error {
	if err := validate.FarmUpdate(u); err != nil {
		return err
	}
	u.Name, u.Location = trimPtr(u.Name), trimPtr(u.Location)
	return s.repo.Update(ctx, userID, farmID, u, s.now().UTC())
}

// Archive stamps archivedAt and updatedAt together; re-archiving is a no-op.
func (s *FarmServiceImpl) Archive(ctx context.Context, userID, farmID uuid.UUID) error {
	_, err := s.repo.Archive(ctx, userID, farmID, s.now().UTC())
	return err
}

func (s *FarmServiceImpl) UploadImage(ctx context.Context, userID, farmID uuid.UUID, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty image", errs.ErrValidation)
	}
	if len(data) > s.maxImage {
		return "", fmt.Errorf("%w: image exceeds %d bytes", errs.ErrValidation, s.maxImage)
	}
	if _, err := s.Get(ctx, userID, farmID); err != nil {
		return "", err
	}
	return s.images.Put(ctx, storage.FarmImageKey(userID, farmID), data, contentType)
}

func (s *FarmServiceImpl) DeleteImage(ctx context.Context, userID, farmID uuid.UUID) error {
	if _, err := s.Get(ctx, userID, farmID); err != nil {
		return err
	}
	return s.images.Delete(ctx, storage.FarmImageKey(userID, farmID))
}
