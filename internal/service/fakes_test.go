package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/limiter"
	"github.com/and161185/micromuu/internal/model"
	"github.com/and161185/micromuu/internal/repository"
)

type fakeUsers struct {
	byEmail map[string]*model.User

	createErr error
	getErr    error
	deleted   []uuid.UUID
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func newFakeUsers() *fakeUsers { return &fakeUsers{byEmail: map[string]*model.User{}} }

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byEmail[u.Email]; exists {
		return errs.ErrAlreadyExists
	}
	cpy := *u
	f.byEmail[u.Email] = &cpy
	return nil
}
func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}
func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}
func (f *fakeUsers) TouchSignIn(_ context.Context, id uuid.UUID, at time.Time) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.LastSignInAt = &at
			return nil
		}
	}
	return errs.ErrNotFound
}
func (f *fakeUsers) Delete(_ context.Context, id uuid.UUID) error {
	for k, u := range f.byEmail {
		if u.ID == id {
			delete(f.byEmail, k)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakeLinks struct {
	byHash map[string]*model.SignInLink
}

var _ repository.LinkRepository = (*fakeLinks)(nil)

func newFakeLinks() *fakeLinks { return &fakeLinks{byHash: map[string]*model.SignInLink{}} }

func (f *fakeLinks) Create(_ context.Context, l *model.SignInLink) error {
	c := *l
	f.byHash[string(l.TokenHash)] = &c
	return nil
}
func (f *fakeLinks) Consume(_ context.Context, hash []byte, email string, now time.Time) (*model.SignInLink, error) {
	l, ok := f.byHash[string(hash)]
	if !ok || l.Email != email || l.UsedAt != nil || l.IsExpired(now) {
		return nil, errs.ErrNotFound
	}
	l.UsedAt = &now
	c := *l
	return &c, nil
}

type fakeLimiter struct {
	allowOK  bool
	allowErr error

	failBlocked bool
	failErr     error

	allowCalls   int
	failureCalls int
	successCalls int
}

var _ limiter.Limiter = (*fakeLimiter)(nil)

func (l *fakeLimiter) Allow(context.Context, string, []byte) (bool, time.Duration, error) {
	l.allowCalls++
	return l.allowOK, 0, l.allowErr
}
func (l *fakeLimiter) Success(context.Context, string, []byte) error {
	l.successCalls++
	return nil
}
func (l *fakeLimiter) Failure(context.Context, string, []byte) (bool, time.Duration, error) {
	l.failureCalls++
	return l.failBlocked, 0, l.failErr
}

type fakeProfiles struct {
	mu       sync.Mutex
	byUser   map[uuid.UUID]*model.Profile
	existErr error
}

var _ repository.ProfileRepository = (*fakeProfiles)(nil)

func newFakeProfiles() *fakeProfiles { return &fakeProfiles{byUser: map[uuid.UUID]*model.Profile{}} }

func (f *fakeProfiles) Create(_ context.Context, p *model.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byUser[p.UserID]; ok {
		return errs.ErrAlreadyExists
	}
	c := *p
	f.byUser[p.UserID] = &c
	return nil
}
func (f *fakeProfiles) Get(_ context.Context, userID uuid.UUID) (*model.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byUser[userID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *p
	return &c, nil
}
func (f *fakeProfiles) Exists(_ context.Context, userID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existErr != nil {
		return false, f.existErr
	}
	_, ok := f.byUser[userID]
	return ok, nil
}
func (f *fakeProfiles) Update(_ context.Context, userID uuid.UUID, u model.ProfileUpdate, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byUser[userID]
	if !ok {
		return errs.ErrNotFound
	}
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.LastName != nil {
		p.LastName = *u.LastName
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	p.UpdatedAt = &at
	return nil
}
func (f *fakeProfiles) Delete(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byUser, userID)
	return nil
}

type fakeFarms struct {
	byID map[uuid.UUID]*model.Farm
}

var _ repository.FarmRepository = (*fakeFarms)(nil)

func newFakeFarms() *fakeFarms { return &fakeFarms{byID: map[uuid.UUID]*model.Farm{}} }

func (f *fakeFarms) Create(_ context.Context, farm *model.Farm) error {
	c := *farm
	f.byID[farm.ID] = &c
	return nil
}
func (f *fakeFarms) Get(_ context.Context, id uuid.UUID) (*model.Farm, error) {
	farm, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *farm
	return &c, nil
}
func (f *fakeFarms) list(userID uuid.UUID, activeOnly bool) []model.Farm {
	var out []model.Farm
	for _, farm := range f.byID {
		if farm.UserID != userID || (activeOnly && farm.Status != model.FarmActive) {
			continue
		}
		out = append(out, *farm)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
func (f *fakeFarms) ListActiveByUser(_ context.Context, userID uuid.UUID) ([]model.Farm, error) {
	return f.list(userID, true), nil
}
func (f *fakeFarms) ListAllByUser(_ context.Context, userID uuid.UUID) ([]model.Farm, error) {
	return f.list(userID, false), nil
}
func (f *fakeFarms) Update(_ context.Context, userID, id uuid.UUID, u model.FarmUpdate, at time.Time) error {
	farm, ok := f.byID[id]
	if !ok || farm.UserID != userID {
		return errs.ErrNotFound
	}
	if u.Name != nil {
		farm.Name = *u.Name
	}
	if u.Location != nil {
		farm.Location = *u.Location
	}
	if u.ImageURL != nil {
		farm.ImageURL = *u.ImageURL
	}
	farm.UpdatedAt = at
	return nil
}
func (f *fakeFarms) Archive(_ context.Context, userID, id uuid.UUID, at time.Time) (bool, error) {
	farm, ok := f.byID[id]
	if !ok || farm.UserID != userID {
		return false, errs.ErrNotFound
	}
	if farm.Status == model.FarmArchived {
		return false, nil
	}
	farm.Status = model.FarmArchived
	farm.ArchivedAt = &at
	farm.UpdatedAt = at
	return true, nil
}
func (f *fakeFarms) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	for id, farm := range f.byID {
		if farm.UserID == userID {
			delete(f.byID, id)
		}
	}
	return nil
}
