// Package app is the micromuu rancher CLI: one screen per route, driven by the
// session reconciler and guarded by the navigation gate.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	u "github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/micromuu/internal/client/identity"
	"github.com/and161185/micromuu/internal/client/nav"
	"github.com/and161185/micromuu/internal/client/session"
	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
)

// ProfileAPI is the profile document service as the screens use it.
type ProfileAPI interface {
	session.Profiles
	Get(ctx context.Context, userID u.UUID) (model.Profile, error)
	Update(ctx context.Context, userID u.UUID, upd model.ProfileUpdate) error
}

// FarmAPI is the farm document service of the signed-in rancher.
type FarmAPI interface {
	Create(ctx context.Context, in model.CreateFarm) (u.UUID, error)
	List(ctx context.Context) ([]model.Farm, error)
	Get(ctx context.Context, id u.UUID) (model.Farm, error)
	Update(ctx context.Context, id u.UUID, upd model.FarmUpdate) error
	Archive(ctx context.Context, id u.UUID) error
	UploadImage(ctx context.Context, farmID u.UUID, data []byte, contentType string) (string, error)
	DeleteImage(ctx context.Context, farmID u.UUID) error
}

// Deps are the collaborators of an App.
type Deps struct {
	Identity *identity.Client
	Session  *session.Reconciler
	Profiles ProfileAPI
	Farms    FarmAPI
	In       io.Reader
	Out      io.Writer
	Log      *zap.Logger
	Timeout  time.Duration
}

// App runs the screens.
type App struct {
	ident    *identity.Client
	sess     *session.Reconciler
	profiles ProfileAPI
	farms    FarmAPI
	in       *bufio.Reader
	out      io.Writer
	theme    Theme
	log      *zap.Logger
	timeout  time.Duration

	readPassword func() (string, error)
	closers      []func() error
	lastFarms    []model.Farm
}

// New builds an App. The session must already be started.
func New(d Deps) *App {
	if d.In == nil {
		d.In = os.Stdin
	}
	if d.Out == nil {
		d.Out = os.Stdout
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Timeout <= 0 {
		d.Timeout = 15 * time.Second
	}
	a := &App{
		ident:    d.Identity,
		sess:     d.Session,
		profiles: d.Profiles,
		farms:    d.Farms,
		in:       bufio.NewReader(d.In),
		out:      d.Out,
		theme:    NewTheme(d.Out),
		log:      d.Log,
		timeout:  d.Timeout,
	}
	a.readPassword = a.terminalPassword
	return a
}

// Close stops the session and releases stores and connections.
func (a *App) Close() error {
	a.sess.Close()
	var errsOut []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errsOut = append(errsOut, err)
		}
	}
	return errors.Join(errsOut...)
}

// ConfigDir is $XDG_CONFIG_HOME/micromuu or ~/.config/micromuu.
func ConfigDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "micromuu")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "micromuu")
}

func (a *App) call(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.timeout)
}

// settle waits until the session leaves the loading phase.
func (a *App) settle(ctx context.Context) (session.State, error) {
	ctx, cancel := a.call(ctx)
	defer cancel()
	st, err := a.sess.Await(ctx, session.Settled)
	if err != nil && st.IsLoading {
		return st, err
	}
	return st, nil
}

// awaitSignedIn waits for the pass that follows a sign-in.
func (a *App) awaitSignedIn(ctx context.Context) (session.State, error) {
	ctx, cancel := a.call(ctx)
	defer cancel()
	return a.sess.Await(ctx, session.InPhase(session.PhaseNoProfile, session.PhaseWithProfile))
}

// enter settles the session and checks that want is reachable. On a redirect
// the gate screen is shown and ErrNotAllowed returned.
func (a *App) enter(ctx context.Context, want nav.Route) (session.State, error) {
	st, err := a.settle(ctx)
	if err != nil {
		return st, err
	}
	if got := nav.Guard(st, want); got != want {
		a.printf("%s\n", a.theme.Muted.Render(redirectHint(got)))
		return st, errs.ErrNotAllowed
	}
	return st, nil
}

func redirectHint(r nav.Route) string {
	switch r {
	case nav.Login:
		return "Sign in first: micromuu login, or micromuu register."
	case nav.CompleteProfile:
		return "Your profile is incomplete: run micromuu profile complete."
	case nav.Loading:
		return "Still loading your session."
	case nav.SessionError:
		return "The session could not be checked: run micromuu status."
	default:
		return "You are already signed in."
	}
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(s string) {
	_, _ = fmt.Fprintln(a.out, s)
}

func (a *App) success(s string) { a.println(a.theme.Success.Render(s)) }

// PrintError writes the rancher-facing message of err.
func (a *App) PrintError(err error) {
	a.println(a.theme.Error.Render(Describe(err)))
}

// Describe turns an error into a rancher-facing message.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case isFieldError(err):
		return fieldMessage(err)
	case errors.Is(err, errs.ErrNoStoredEmail):
		return "This device did not ask for that link. Enter the email it was sent to."
	case errors.Is(err, errs.ErrRateLimited):
		return "Too many attempts. Rest the horses and try again later."
	case errors.Is(err, errs.ErrInvalidLink):
		return "That sign-in link expired or was already used. Ask for a new one."
	case errors.Is(err, errs.ErrInvalidCredentials):
		return "Those credentials don't look right."
	case errors.Is(err, errs.ErrUserNotFound):
		return "No account found for that email."
	case errors.Is(err, errs.ErrWrongPassword):
		return "Wrong password, partner."
	case errors.Is(err, errs.ErrEmailInUse):
		return "That email already has an account."
	case errors.Is(err, errs.ErrAuthRequest):
		return "Could not send the sign-in link."
	case errors.Is(err, errs.ErrSignIn):
		return "Sign in failed."
	case errors.Is(err, errs.ErrNotAllowed):
		return "Not available right now."
	case errors.Is(err, errs.ErrUnauthorized):
		return "Your session expired. Log in again."
	case errors.Is(err, errs.ErrForbidden):
		return "That belongs to another rancher."
	case errors.Is(err, errs.ErrNotFound):
		return "Not found."
	case errors.Is(err, errs.ErrValidation):
		return "Please check the form: " + strings.TrimPrefix(err.Error(), errs.ErrValidation.Error()+": ")
	case errors.Is(err, context.DeadlineExceeded):
		return "The server took too long to answer."
	default:
		return err.Error()
	}
}
