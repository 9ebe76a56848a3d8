package service

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
	"github.com/and161185/micromuu/internal/repository"
	"github.com/and161185/micromuu/internal/validate"
)

// ProfileService is CRUD over the single profile document of a user.
// The caller must be the profile owner.
type ProfileService interface {
	Create(ctx context.Context, caller uuid.UUID, p model.Profile) (*model.Profile, error)
	Get(ctx context.Context, caller, userID uuid.UUID) (*model.Profile, error)
	Exists(ctx context.Context, caller, userID uuid.UUID) (bool, error)
	Update(ctx context.Context, caller, userID uuid.UUID, u model.ProfileUpdate) error
}

type ProfileServiceImpl struct {
	repo repository.ProfileRepository
	now  func() time.Time
}

// NewProfileService constructs ProfileService.
func NewProfileService(repo repository.ProfileRepository) *ProfileServiceImpl {
	return &ProfileServiceImpl{repo: repo, now: time.Now}
}

func ownProfile(caller, userID uuid.UUID) error {
	if caller == uuid.Nil || caller != userID {
		return errs.ErrForbidden
	}
	return nil
}

// Create validates and stores the profile with a server timestamp.
func (s *ProfileServiceImpl) Create(ctx context.Context, caller uuid.UUID, p model.Profile) (*model.Profile, error) {
	if err := ownProfile(caller, p.UserID); err != nil {
		return nil, err
	}
	data := model.RegistrationData{Name: p.Name, LastName: p.LastName, Email: p.Email}
	if err := validate.Registration(data); err != nil {
		return nil, err
	}
	out := &model.Profile{
		UserID:    p.UserID,
		Name:      strings.TrimSpace(p.Name),
		LastName:  strings.TrimSpace(p.LastName),
		Email:     strings.TrimSpace(p.Email),
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProfileServiceImpl) Get(ctx context.Context, caller, userID uuid.UUID) (*model.Profile, error) {
	if err := ownProfile(caller, userID); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID)
}

func (s *ProfileServiceImpl) Exists(ctx context.Context, caller, userID uuid.UUID) (bool, error) {
	if err := ownProfile(caller, userID); err != nil {
		return false, err
	}
	return s.repo.Exists(ctx, userID)
}

// Update applies the partial update and stamps updatedAt.
func (s *ProfileServiceImpl) Update(ctx context.Context, caller, userID uuid.UUID, u model.ProfileUpdate) error {
	if err := ownProfile(caller, userID); err != nil {
		return err
	}
	if err := validate.ProfileUpdate(u); err != nil {
		return err
	}
	return s.repo.Update(ctx, userID, trimProfileUpdate(u), s.now().UTC())
}

func trimProfileUpdate(u model.ProfileUpdate) model.ProfileUpdate {
	return model.ProfileUpdate{Name: trimPtr(u.Name), LastName: trimPtr(u.LastName), Email: trimPtr(u.Email)}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
