package app

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	u "github.com/gofrs/uuid/v5"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/micromuu/internal/client/identity"
	"github.com/and161185/micromuu/internal/client/kv"
	"github.com/and161185/micromuu/internal/client/pending"
	"github.com/and161185/micromuu/internal/client/session"
	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
)

type fakeProvider struct {
	mu        sync.Mutex
	uids      map[string]u.UUID
	passwords map[string]string
	links     []string
}

var _ identity.Provider = (*fakeProvider)(nil)

func (f *fakeProvider) ident(email string) *model.Identity {
	key := strings.ToLower(strings.TrimSpace(email))
	uid, ok := f.uids[key]
	if !ok {
		uid = u.Must(u.NewV4())
		f.uids[key] = uid
	}
	return &model.Identity{UID: uid, Email: key, IDToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}
}

func (f *fakeProvider) SignUp(_ context.Context, email, password string) (*model.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.passwords[email]; ok {
		return nil, errs.ErrEmailInUse
	}
	f.passwords[email] = password
	return f.ident(email), nil
}

func (f *fakeProvider) SignIn(_ context.Context, email, password string) (*model.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pw, ok := f.passwords[email]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	if pw != password {
		return nil, errs.ErrWrongPassword
	}
	return f.ident(email), nil
}

func (f *fakeProvider) SendSignInLink(_ context.Context, email, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.links = append(f.links, email)
	return nil
}

func (f *fakeProvider) CompleteSignInWithLink(_ context.Context, email, _ string) (*model.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ident(email), nil
}

type fakeProfiles struct {
	mu     sync.Mutex
	byUser map[u.UUID]model.Profile
}

var _ ProfileAPI = (*fakeProfiles)(nil)

func (f *fakeProfiles) Exists(_ context.Context, id u.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.byUser[id]
	return ok, nil
}

func (f *fakeProfiles) Create(_ context.Context, p model.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byUser[p.UserID]; ok {
		return errs.ErrAlreadyExists
	}
	p.CreatedAt = time.Now()
	f.byUser[p.UserID] = p
	return nil
}

func (f *fakeProfiles) Get(_ context.Context, id u.UUID) (model.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byUser[id]
	if !ok {
		return model.Profile{}, errs.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfiles) Update(_ context.Context, id u.UUID, upd model.ProfileUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byUser[id]
	if !ok {
		return errs.ErrNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.LastName != nil {
		p.LastName = *upd.LastName
	}
	if upd.Email != nil {
		p.Email = *upd.Email
	}
	now := time.Now()
	p.UpdatedAt = &now
	f.byUser[id] = p
	return nil
}

type fakeFarms struct {
	mu      sync.Mutex
	farms   []model.Farm
	images  map[u.UUID][]byte
	deleted []u.UUID
}

var _ FarmAPI = (*fakeFarms)(nil)

func (f *fakeFarms) Create(_ context.Context, in model.CreateFarm) (u.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	id := u.Must(u.NewV4())
	f.farms = append([]model.Farm{{ID: id, Name: in.Name, Location: in.Location, ImageURL: in.ImageURL,
		Status: model.FarmActive, CreatedAt: now, UpdatedAt: now}}, f.farms...)
	return id, nil
}

func (f *fakeFarms) List(context.Context) ([]model.Farm, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Farm
	for _, fm := range f.farms {
		if fm.Status == model.FarmActive {
			out = append(out, fm)
		}
	}
	return out, nil
}

func (f *fakeFarms) find(id u.UUID) *model.Farm {
	for i := range f.farms {
		if f.farms[i].ID == id {
			return &f.farms[i]
		}
	}
	return nil
}

func (f *fakeFarms) Get(_ context.Context, id u.UUID) (model.Farm, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fm := f.find(id); fm != nil {
		return *fm, nil
	}
	return model.Farm{}, errs.ErrNotFound
}

func (f *fakeFarms) Update(_ context.Context, id u.UUID, upd model.FarmUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	fm := f.find(id)
	if fm == nil {
		return errs.ErrNotFound
	}
	if upd.Name != nil {
		fm.Name = *upd.Name
	}
	if upd.Location != nil {
		fm.Location = *upd.Location
	}
	if upd.ImageURL != nil {
		fm.ImageURL = *upd.ImageURL
	}
	fm.UpdatedAt = time.Now()
	return nil
}

func (f *fakeFarms) Archive(_ context.Context, id u.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	fm := f.find(id)
	if fm == nil {
		return errs.ErrNotFound
	}
	if fm.Status == model.FarmArchived {
		return nil
	}
	now := time.Now()
	fm.Status, fm.ArchivedAt, fm.UpdatedAt = model.FarmArchived, &now, now
	return nil
}

func (f *fakeFarms) UploadImage(_ context.Context, id u.UUID, data []byte, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.images[id] = data
	return "https://img.test/" + id.String() + "/profile.jpg", nil
}

func (f *fakeFarms) DeleteImage(_ context.Context, id u.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.images, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type harness struct {
	t        *testing.T
	provider *fakeProvider
	profiles *fakeProfiles
	farms    *fakeFarms
	store    *kv.Memory
	out      *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{
		t:        t,
		provider: &fakeProvider{uids: map[string]u.UUID{}, passwords: map[string]string{}},
		profiles: &fakeProfiles{byUser: map[u.UUID]model.Profile{}},
		farms:    &fakeFarms{images: map[u.UUID][]byte{}},
		store:    kv.NewMemory(),
		out:      &bytes.Buffer{},
	}
}

// open starts a fresh process over the same device store and backend.
func (h *harness) open(strategy session.AuthStrategy, input string) *App {
	h.t.Helper()
	log := zaptest.NewLogger(h.t)
	ident := identity.New(h.provider, h.store, "", log)
	if err := ident.Restore(context.Background()); err != nil {
		h.t.Fatalf("restore: %v", err)
	}
	sess := session.New(session.Config{
		Identity: ident, Profiles: h.profiles, Pending: pending.New(h.store), Strategy: strategy, Log: log,
	})
	sess.Start(context.Background())
	a := New(Deps{
		Identity: ident, Session: sess, Profiles: h.profiles, Farms: h.farms,
		In: strings.NewReader(input), Out: h.out, Log: log, Timeout: 2 * time.Second,
	})
	a.readPassword = func() (string, error) { return a.ask("password") }
	h.t.Cleanup(func() { _ = a.Close() })
	return a
}

func (h *harness) output() string {
	s := h.out.String()
	h.out.Reset()
	return s
}
