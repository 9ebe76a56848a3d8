// Package session reconciles the identity provider's session with the
// rancher's profile and pending registration. It is the single source of
// truth for who is signed in and how far onboarding got.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	u "github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
	"github.com/and161185/micromuu/internal/validate"
)

// ErrClosed is returned by Await after Close.
var ErrClosed = errors.New("session closed")

// Identity is the client side of the identity provider.
type Identity interface {
	Subscribe() (<-chan *model.Identity, func())
	SignUp(ctx context.Context, email, password string) (*model.Identity, error)
	SignIn(ctx context.Context, email, password string) (*model.Identity, error)
	SendSignInLink(ctx context.Context, email string) error
	StoredEmail(ctx context.Context) (string, error)
	IsSignInLink(link string) bool
	CompleteSignInWithLink(ctx context.Context, email, link string) (*model.Identity, error)
	SignOut(ctx context.Context) error
}

// Profiles is the part of the profile service the session needs.
type Profiles interface {
	Exists(ctx context.Context, userID u.UUID) (bool, error)
	Create(ctx context.Context, p model.Profile) error
}

// Pending stores registration data until the identity exists.
type Pending interface {
	Put(ctx context.Context, data model.RegistrationData) error
	Get(ctx context.Context) (*model.PendingRegistration, error)
	Clear(ctx context.Context) error
}

// Config wires a Reconciler. A nil Strategy means Passwordless.
type Config struct {
	Identity Identity
	Profiles Profiles
	Pending  Pending
	Strategy AuthStrategy
	Log      *zap.Logger
}

// Reconciler owns the identity event stream and the derived session state.
type Reconciler struct {
	id       Identity
	profiles Profiles
	pending  Pending
	strategy AuthStrategy
	log      *zap.Logger

	// reconcileMu serializes passes with the operations that publish
	// profile state themselves.
	reconcileMu sync.Mutex

	mu      sync.Mutex
	state   State
	changed chan struct{}
	cancel  context.CancelFunc
	closed  bool

	done      chan struct{}
	closeOnce sync.Once
}

// New returns a Reconciler in the loading state. Call Start to consume events.
func New(cfg Config) *Reconciler {
	if cfg.Strategy == nil {
		cfg.Strategy = Passwordless{}
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}
	return &Reconciler{
		id:       cfg.Identity,
		profiles: cfg.Profiles,
		pending:  cfg.Pending,
		strategy: cfg.Strategy,
		log:      cfg.Log,
		state:    State{IsLoading: true},
		changed:  make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Strategy returns the configured variant.
func (r *Reconciler) Strategy() AuthStrategy { return r.strategy }

// Start subscribes to identity changes. It is a no-op when already started
// or closed.
func (r *Reconciler) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil || r.closed {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	events, unsubscribe := r.id.Subscribe()
	go r.run(ctx, events, unsubscribe)
}

// Close unsubscribes and waits for the event loop to exit.
func (r *Reconciler) Close() {
	r.closeOnce.Do(func() {
		r.mu.Lock()
		r.closed = true
		cancel := r.cancel
		r.mu.Unlock()
		if cancel == nil {
			close(r.done)
			return
		}
		cancel()
		<-r.done
	})
}

func (r *Reconciler) run(ctx context.Context, events <-chan *model.Identity, unsubscribe func()) {
	defer close(r.done)
	defer unsubscribe()
	for {
		select {
		case <-ctx.Done():
			return
		case id, ok := <-events:
			if !ok {
				return
			}
			r.reconcileMu.Lock()
			// A newer event may have queued while waiting for the lock.
			select {
			case newer, ok := <-events:
				if ok {
					id = newer
				}
			default:
			}
			if !r.reflects(id) {
				r.reconcile(ctx, id)
			}
			r.reconcileMu.Unlock()
		}
	}
}

// reflects reports whether a settled state was already published for id, as
// password registration does before its sign-up event is consumed.
func (r *Reconciler) reflects(id *model.Identity) bool {
	st := r.State()
	return id != nil && st.User == id && !st.IsLoading && st.Err == nil && st.HasProfile != nil
}

// Refresh re-runs reconciliation for the current identity and returns the
// outcome of that pass.
func (r *Reconciler) Refresh(ctx context.Context) error {
	r.reconcileMu.Lock()
	defer r.reconcileMu.Unlock()
	st := r.State()
	if st.IsLoading && st.User == nil {
		return nil
	}
	r.reconcile(ctx, st.User)
	return r.State().Err
}

// State returns the current snapshot.
func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Await blocks until pred holds. A failed pass that does not satisfy pred is
// returned as its error.
func (r *Reconciler) Await(ctx context.Context, pred func(State) bool) (State, error) {
	for {
		r.mu.Lock()
		st, ch := r.state, r.changed
		r.mu.Unlock()

		if pred(st) {
			return st, nil
		}
		if st.Err != nil {
			return st, st.Err
		}
		select {
		case <-ch:
		case <-r.done:
			return r.State(), ErrClosed
		case <-ctx.Done():
			return st, ctx.Err()
		}
	}
}

func (r *Reconciler) update(f func(*State)) {
	r.mu.Lock()
	f(&r.state)
	ch := r.changed
	r.changed = make(chan struct{})
	r.mu.Unlock()
	close(ch)
}

// reconcile runs one pass for id. Callers hold reconcileMu.
func (r *Reconciler) reconcile(ctx context.Context, id *model.Identity) {
	if id == nil {
		r.update(func(s *State) { *s = State{} })
		return
	}
	r.update(func(s *State) {
		// The welcome flag belongs to the rancher who earned it.
		if s.User == nil || s.User.UID != id.UID {
			s.IsNewUser = false
		}
		s.User, s.IsAuthenticated, s.IsLoading = id, true, true
		s.HasProfile, s.Err = nil, nil
	})

	has, consumed, err := r.resolveProfile(ctx, id)
	if err != nil {
		r.log.Warn("session reconciliation failed", zap.String("uid", id.UID.String()), zap.Error(err))
	}
	r.update(func(s *State) {
		s.IsLoading = false
		if err != nil {
			s.HasProfile, s.Err = nil, err
			return
		}
		s.HasProfile = boolPtr(has)
		s.IsNewUser = s.IsNewUser || consumed
	})
}

// resolveProfile reports whether id has a profile and whether this pass
// created it from the pending registration.
func (r *Reconciler) resolveProfile(ctx context.Context, id *model.Identity) (has, consumed bool, err error) {
	exists, err := r.profiles.Exists(ctx, id.UID)
	if err != nil {
		return false, false, fmt.Errorf("check profile: %w", err)
	}
	if exists {
		return true, false, nil
	}

	rec, err := r.pending.Get(ctx)
	if err != nil {
		return false, false, fmt.Errorf("read pending registration: %w", err)
	}
	if rec == nil {
		return false, false, nil
	}
	if !strings.EqualFold(strings.TrimSpace(rec.Email), strings.TrimSpace(id.Email)) {
		r.log.Debug("pending registration belongs to another email")
		return false, false, nil
	}

	p := model.Profile{
		UserID:   id.UID,
		Name:     strings.TrimSpace(rec.Name),
		LastName: strings.TrimSpace(rec.LastName),
		Email:    strings.TrimSpace(rec.Email),
	}
	if err := r.profiles.Create(ctx, p); err != nil && !errors.Is(err, errs.ErrAlreadyExists) {
		return false, false, fmt.Errorf("create profile: %w", err)
	}
	if err := r.pending.Clear(ctx); err != nil {
		r.log.Warn("clear pending registration", zap.Error(err))
	}
	r.log.Info("profile created from pending registration", zap.String("uid", id.UID.String()))
	return true, true, nil
}

// Login starts sign-in with the configured strategy. Passwordless returns
// once the provider accepted the link request.
func (r *Reconciler) Login(ctx context.Context, c Credentials) error {
	return r.strategy.login(ctx, r, c)
}

// Register starts registration with the configured strategy.
func (r *Reconciler) Register(ctx context.Context, reg Registration) error {
	return r.strategy.register(ctx, r, reg)
}

// HandleEmailLink completes a passwordless sign-in with the email stored by
// Login or Register. It reports false without side effects for anything that
// is not a sign-in link, and ErrNoStoredEmail when this device never asked
// for one.
func (r *Reconciler) HandleEmailLink(ctx context.Context, link string) (bool, error) {
	if !r.strategy.handlesLinks() || !r.id.IsSignInLink(link) {
		return false, nil
	}
	email, err := r.id.StoredEmail(ctx)
	if err != nil {
		return false, err
	}
	if email == "" {
		return false, errs.ErrNoStoredEmail
	}
	return r.completeLink(ctx, link, email)
}

// HandleEmailLinkWithEmail completes a sign-in link for an email the rancher
// re-entered after ErrNoStoredEmail.
func (r *Reconciler) HandleEmailLinkWithEmail(ctx context.Context, link, email string) (bool, error) {
	if !r.strategy.handlesLinks() || !r.id.IsSignInLink(link) {
		return false, nil
	}
	if err := validate.Login(email); err != nil {
		return false, err
	}
	return r.completeLink(ctx, link, strings.TrimSpace(email))
}

func (r *Reconciler) completeLink(ctx context.Context, link, email string) (bool, error) {
	if _, err := r.id.CompleteSignInWithLink(ctx, email, link); err != nil {
		return false, err
	}
	return true, nil
}

// Logout signs out and resets the derived flags.
func (r *Reconciler) Logout(ctx context.Context) error {
	if err := r.id.SignOut(ctx); err != nil {
		return err
	}
	r.reconcileMu.Lock()
	defer r.reconcileMu.Unlock()
	r.update(func(s *State) { *s = State{} })
	return nil
}

// ClearNewUserFlag acknowledges the welcome screen.
func (r *Reconciler) ClearNewUserFlag() {
	r.update(func(s *State) { s.IsNewUser = false })
}

// CompleteProfile creates the missing profile of a signed-in rancher whose
// pending registration expired or was never written.
func (r *Reconciler) CompleteProfile(ctx context.Context, data model.RegistrationData) error {
	r.reconcileMu.Lock()
	defer r.reconcileMu.Unlock()

	st := r.State()
	if st.Phase() != PhaseNoProfile {
		return errs.ErrNotAllowed
	}
	p := model.Profile{
		UserID:   st.User.UID,
		Name:     strings.TrimSpace(data.Name),
		LastName: strings.TrimSpace(data.LastName),
		Email:    strings.TrimSpace(data.Email),
	}
	if err := r.profiles.Create(ctx, p); err != nil && !errors.Is(err, errs.ErrAlreadyExists) {
		return fmt.Errorf("create profile: %w", err)
	}
	r.update(func(s *State) {
		s.HasProfile = boolPtr(true)
		s.IsNewUser = true
	})
	return nil
}
