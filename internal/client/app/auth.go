package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/and161185/micromuu/internal/client/nav"
	"github.com/and161185/micromuu/internal/client/session"
	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
)

// RegisterInput is the registration form; empty fields are prompted.
type RegisterInput struct {
	Name     string
	LastName string
	Email    string
	Password string
}

// Status prints the gate route and the session snapshot. A failed session
// is retried once.
func (a *App) Status(ctx context.Context) error {
	st, err := a.settle(ctx)
	if err != nil {
		return err
	}
	if st.Phase() == session.PhaseFailed {
		cctx, cancel := a.call(ctx)
		_ = a.sess.Refresh(cctx)
		cancel()
		st = a.sess.State()
	}

	who := "nobody"
	if st.User != nil {
		who = st.User.Email
	}
	profile := "unknown"
	if st.HasProfile != nil {
		profile = map[bool]string{true: "yes", false: "no"}[*st.HasProfile]
	}
	lines := []string{
		a.theme.Title.Render("Session"),
		fmt.Sprintf("route:     %s", nav.Gate(st)),
		fmt.Sprintf("phase:     %s", st.Phase()),
		fmt.Sprintf("signed in: %s", who),
		fmt.Sprintf("profile:   %s", profile),
		fmt.Sprintf("new user:  %t", st.IsNewUser),
		fmt.Sprintf("auth mode: %s", a.sess.Strategy().Name()),
	}
	if st.Err != nil {
		lines = append(lines, a.theme.Error.Render("error:     "+st.Err.Error()))
	}
	a.println(a.theme.Card.Render(strings.Join(lines, "\n")))
	return nil
}

// Register runs the registration screen.
func (a *App) Register(ctx context.Context, in RegisterInput) error {
	if _, err := a.enter(ctx, nav.Register); err != nil {
		return err
	}
	a.println(a.theme.brand())
	var err error
	if in.Name, err = a.orAsk(in.Name, "Name"); err != nil {
		return err
	}
	if in.LastName, err = a.orAsk(in.LastName, "Last name"); err != nil {
		return err
	}
	if in.Email, err = a.orAsk(in.Email, "Email"); err != nil {
		return err
	}
	reg := session.Registration{
		Data:     model.RegistrationData{Name: in.Name, LastName: in.LastName, Email: in.Email},
		Password: in.Password,
		Confirm:  in.Password,
	}
	if a.sess.Strategy().Name() == session.ModePassword && in.Password == "" {
		if reg.Password, err = a.askPassword("Password"); err != nil {
			return err
		}
		if reg.Confirm, err = a.askPassword("Confirm password"); err != nil {
			return err
		}
	}
	if err := a.sess.Strategy().ValidateRegistration(reg); err != nil {
		return err
	}

	cctx, cancel := a.call(ctx)
	defer cancel()
	if err := a.sess.Register(cctx, reg); err != nil {
		return err
	}
	if a.sess.Strategy().Name() == session.ModePasswordless {
		a.inboxHint(reg.Data.Email)
		return nil
	}
	return a.showGate(ctx, a.sess.State())
}

// Login runs the login screen.
func (a *App) Login(ctx context.Context, email, password string) error {
	if _, err := a.enter(ctx, nav.Login); err != nil {
		return err
	}
	var err error
	if email, err = a.orAsk(email, "Email"); err != nil {
		return err
	}
	withPassword := a.sess.Strategy().Name() == session.ModePassword
	if withPassword && password == "" {
		if password, err = a.askPassword("Password"); err != nil {
			return err
		}
	}
	c := session.Credentials{Email: email, Password: password}
	if err := a.sess.Strategy().ValidateLogin(c); err != nil {
		return err
	}

	cctx, cancel := a.call(ctx)
	defer cancel()
	if err := a.sess.Login(cctx, c); err != nil {
		return err
	}
	if !withPassword {
		a.inboxHint(email)
		return nil
	}
	st, err := a.awaitSignedIn(ctx)
	if err != nil {
		return err
	}
	return a.showGate(ctx, st)
}

func (a *App) inboxHint(email string) {
	a.success("Link sent! Check your inbox at " + strings.TrimSpace(email) + ".")
	a.println(a.theme.Muted.Render("Open it on this device, or run: micromuu link '<url>'"))
}

// Link opens a micromuu:// deep link. Sign-in links complete the
// passwordless sign-in; an email is asked for when this device has none.
func (a *App) Link(ctx context.Context, link, email string) error {
	route, known := nav.Resolve(link)
	if !a.ident.IsSignInLink(link) {
		if !known {
			return fmt.Errorf("%w: not a micromuu link", errs.ErrValidation)
		}
		st, err := a.settle(ctx)
		if err != nil {
			return err
		}
		a.printf("Opening %s\n", nav.Guard(st, route))
		return nil
	}
	if _, err := a.enter(ctx, nav.Login); err != nil {
		return err
	}

	cctx, cancel := a.call(ctx)
	defer cancel()
	var done bool
	var err error
	if email != "" {
		done, err = a.sess.HandleEmailLinkWithEmail(cctx, link, email)
	} else {
		done, err = a.sess.HandleEmailLink(cctx, link)
		if errors.Is(err, errs.ErrNoStoredEmail) {
			a.PrintError(err)
			if email, err = a.ask("Email"); err != nil {
				return err
			}
			done, err = a.sess.HandleEmailLinkWithEmail(cctx, link, email)
		}
	}
	if err != nil {
		return err
	}
	if !done {
		a.println(a.theme.Muted.Render("Sign-in links are not used in " + a.sess.Strategy().Name() + " mode."))
		return nil
	}
	st, err := a.awaitSignedIn(ctx)
	if err != nil {
		return err
	}
	return a.showGate(ctx, st)
}

// Welcome shows the onboarding screen once and acknowledges it.
func (a *App) Welcome(ctx context.Context) error {
	st, err := a.enter(ctx, nav.Welcome)
	if err != nil {
		return err
	}
	if err := a.welcome(ctx, st); err != nil {
		return err
	}
	a.sess.ClearNewUserFlag()
	return a.Dashboard(ctx)
}

func (a *App) welcome(ctx context.Context, st session.State) error {
	name := st.User.Email
	cctx, cancel := a.call(ctx)
	defer cancel()
	if p, err := a.profiles.Get(cctx, st.User.UID); err == nil {
		name = p.Name
	} else if !errors.Is(err, errs.ErrNotFound) {
		return err
	}
	a.println(a.theme.Card.Render(strings.Join([]string{
		a.theme.brand(),
		"",
		a.theme.Title.Render("Welcome to the ranch, " + name + "!"),
		a.theme.Text.Render("Your profile is ready. Add your first farm with: micromuu farms add"),
	}, "\n")))
	return nil
}

// Logout signs out.
func (a *App) Logout(ctx context.Context) error {
	st, err := a.settle(ctx)
	if err != nil {
		return err
	}
	if st.Phase() == session.PhaseUnauthenticated {
		a.println(a.theme.Muted.Render("Already signed out."))
		return nil
	}
	cctx, cancel := a.call(ctx)
	defer cancel()
	if err := a.sess.Logout(cctx); err != nil {
		return err
	}
	a.success("See you down the trail.")
	return nil
}

// showGate renders the screen the gate lands on for st.
func (a *App) showGate(ctx context.Context, st session.State) error {
	switch r := nav.Gate(st); r {
	case nav.Welcome:
		if err := a.welcome(ctx, st); err != nil {
			return err
		}
		a.println(a.theme.Muted.Render("Run micromuu welcome to continue to your dashboard."))
		return nil
	case nav.Dashboard:
		return a.Dashboard(ctx)
	case nav.SessionError:
		return st.Err
	default:
		a.println(a.theme.Muted.Render(redirectHint(r)))
		return nil
	}
}
