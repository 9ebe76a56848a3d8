package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
	"github.com/and161185/micromuu/internal/validate"
)

// Strategy names accepted by StrategyFor.
const (
	ModePasswordless = "passwordless"
	ModePassword     = "password"
)

// Credentials is the login form. Password is ignored by Passwordless.
type Credentials struct {
	Email    string
	Password string
}

// Registration is the registration form. Password and Confirm are ignored by
// Passwordless.
type Registration struct {
	Data     model.RegistrationData
	Password string
	Confirm  string
}

// AuthStrategy is how the session signs a rancher in. The variants are
// Passwordless and Password.
type AuthStrategy interface {
	Name() string
	// ValidateLogin and ValidateRegistration run the form rules of the
	// variant; callers check them before Login or Register.
	ValidateLogin(Credentials) error
	ValidateRegistration(Registration) error

	login(ctx context.Context, r *Reconciler, c Credentials) error
	register(ctx context.Context, r *Reconciler, reg Registration) error
	handlesLinks() bool
}

// StrategyFor maps a configuration mode to its variant.
func StrategyFor(mode string) (AuthStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModePasswordless:
		return Passwordless{}, nil
	case ModePassword:
		return Password{}, nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", mode)
	}
}

// Passwordless signs in with emailed one-time links. Registration data waits
// in the pending store until the link is redeemed.
type Passwordless struct{}

var _ AuthStrategy = Passwordless{}

func (Passwordless) Name() string { return ModePasswordless }

func (Passwordless) ValidateLogin(c Credentials) error { return validate.Login(c.Email) }

func (Passwordless) ValidateRegistration(reg Registration) error {
	return validate.Registration(reg.Data)
}

func (Passwordless) handlesLinks() bool { return true }

func (Passwordless) login(ctx context.Context, r *Reconciler, c Credentials) error {
	return sendLink(ctx, r, c.Email)
}

func (Passwordless) register(ctx context.Context, r *Reconciler, reg Registration) error {
	if err := r.pending.Put(ctx, reg.Data); err != nil {
		return fmt.Errorf("save pending registration: %w", err)
	}
	return sendLink(ctx, r, reg.Data.Email)
}

func sendLink(ctx context.Context, r *Reconciler, email string) error {
	err := r.id.SendSignInLink(ctx, strings.TrimSpace(email))
	if err != nil && !errors.Is(err, errs.ErrAuthRequest) {
		return fmt.Errorf("%w: %w", errs.ErrAuthRequest, err)
	}
	return err
}

// Password signs in with email and password and creates the profile at
// registration time.
type Password struct{}

var _ AuthStrategy = Password{}

func (Password) Name() string { return ModePassword }

func (Password) ValidateLogin(c Credentials) error {
	if err := validate.Login(c.Email); err != nil {
		return err
	}
	if c.Password == "" {
		return &validate.Error{Fields: map[string]string{validate.FieldPassword: validate.ReasonRequired}}
	}
	return nil
}

func (Password) ValidateRegistration(reg Registration) error {
	return validate.PasswordRegistration(reg.Data, reg.Password, reg.Confirm)
}

func (Password) handlesLinks() bool { return false }

func (Password) login(ctx context.Context, r *Reconciler, c Credentials) error {
	_, err := r.id.SignIn(ctx, strings.TrimSpace(c.Email), c.Password)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errs.ErrInvalidCredentials),
		errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrWrongPassword),
		errors.Is(err, errs.ErrSignIn):
		return err
	default:
		return fmt.Errorf("%w: %w", errs.ErrSignIn, err)
	}
}

func (Password) register(ctx context.Context, r *Reconciler, reg Registration) error {
	// Holding the pass lock keeps the sign-up event from publishing
	// hasProfile=false before the profile exists.
	r.reconcileMu.Lock()
	defer r.reconcileMu.Unlock()

	email := strings.TrimSpace(reg.Data.Email)
	id, err := r.id.SignUp(ctx, email, reg.Password)
	if err != nil {
		return err
	}
	p := model.Profile{
		UserID:   id.UID,
		Name:     strings.TrimSpace(reg.Data.Name),
		LastName: strings.TrimSpace(reg.Data.LastName),
		Email:    email,
	}
	if err := r.profiles.Create(ctx, p); err != nil && !errors.Is(err, errs.ErrAlreadyExists) {
		return fmt.Errorf("create profile: %w", err)
	}
	r.update(func(s *State) {
		*s = State{User: id, IsAuthenticated: true, HasProfile: boolPtr(true), IsNewUser: true}
	})
	return nil
}
