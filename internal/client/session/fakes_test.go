package session

import (
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
	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
)

// fakeProvider issues one stable uid per email.
type fakeProvider struct {
	mu        sync.Mutex
	uids      map[string]u.UUID
	passwords map[string]string
	links     []string
	signInErr error
	linkErr   error
}

var _ identity.Provider = (*fakeProvider)(nil)

func newFakeProvider() *fakeProvider {
	return &fakeProvider{uids: map[string]u.UUID{}, passwords: map[string]string{}}
}

func (f *fakeProvider) identityFor(email string) *model.Identity {
	key := strings.ToLower(email)
	uid, ok := f.uids[key]
	if !ok {
		uid = u.Must(u.NewV4())
		f.uids[key] = uid
	}
	return &model.Identity{UID: uid, Email: key, IDToken: "tok-" + key, ExpiresAt: time.Now().Add(time.Hour)}
}

func (f *fakeProvider) SignUp(_ context.Context, email, password string) (*model.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.passwords[strings.ToLower(email)]; ok {
		return nil, errs.ErrEmailInUse
	}
	f.passwords[strings.ToLower(email)] = password
	return f.identityFor(email), nil
}

func (f *fakeProvider) SignIn(_ context.Context, email, password string) (*model.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	pw, ok := f.passwords[strings.ToLower(email)]
	switch {
	case !ok:
		return nil, errs.ErrUserNotFound
	case pw != password:
		return nil, errs.ErrWrongPassword
	}
	return f.identityFor(email), nil
}

func (f *fakeProvider) SendSignInLink(_ context.Context, email, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.linkErr != nil {
		return f.linkErr
	}
	f.links = append(f.links, email)
	return nil
}

func (f *fakeProvider) CompleteSignInWithLink(_ context.Context, email, _ string) (*model.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.identityFor(email), nil
}

func (f *fakeProvider) linkCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.links)
}

type fakeProfiles struct {
	mu        sync.Mutex
	byUser    map[u.UUID]model.Profile
	creates   int
	exists    int
	existsErr error
	createErr error
	gate      chan struct{} // when set, Exists blocks until it receives
}

var _ Profiles = (*fakeProfiles)(nil)

func newFakeProfiles() *fakeProfiles { return &fakeProfiles{byUser: map[u.UUID]model.Profile{}} }

func (f *fakeProfiles) Exists(ctx context.Context, userID u.UUID) (bool, error) {
	f.mu.Lock()
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exists++
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.byUser[userID]
	return ok, nil
}

func (f *fakeProfiles) Create(_ context.Context, p model.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byUser[p.UserID]; ok {
		return errs.ErrAlreadyExists
	}
	f.creates++
	f.byUser[p.UserID] = p
	return nil
}

func (f *fakeProfiles) set(fn func(*fakeProfiles)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *fakeProfiles) snapshot() (creates, exists int, all []model.Profile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.byUser {
		all = append(all, p)
	}
	return f.creates, f.exists, all
}

type harness struct {
	t        *testing.T
	provider *fakeProvider
	profiles *fakeProfiles
	store    *kv.Memory
	ident    *identity.Client
	pending  *pending.Store
	r        *Reconciler
	now      time.Time
	clockMu  sync.Mutex
}

func (h *harness) clock() time.Time {
	h.clockMu.Lock()
	defer h.clockMu.Unlock()
	return h.now
}

func (h *harness) advance(d time.Duration) {
	h.clockMu.Lock()
	defer h.clockMu.Unlock()
	h.now = h.now.Add(d)
}

func newHarness(t *testing.T, strategy AuthStrategy) *harness {
	t.Helper()
	log := zaptest.NewLogger(t)
	h := &harness{
		t:        t,
		provider: newFakeProvider(),
		profiles: newFakeProfiles(),
		store:    kv.NewMemory(),
		now:      time.Now(),
	}
	h.ident = identity.New(h.provider, h.store, "", log)
	h.pending = pending.NewWithClock(h.store, h.clock)
	h.r = New(Config{Identity: h.ident, Profiles: h.profiles, Pending: h.pending, Strategy: strategy, Log: log})
	t.Cleanup(h.r.Close)
	return h
}

func (h *harness) start() {
	h.r.Start(context.Background())
}

func (h *harness) await(pred func(State) bool) State {
	h.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	st, err := h.r.Await(ctx, pred)
	if err != nil {
		h.t.Fatalf("await: %v (state %+v)", err, st)
	}
	return st
}
