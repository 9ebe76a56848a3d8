package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/and161185/micromuu/internal/client/nav"
	"github.com/and161185/micromuu/internal/model"
	"github.com/and161185/micromuu/internal/validate"
)

// ProfileInput holds profile form values. Nil fields are prompted (complete)
// or kept (edit).
type ProfileInput struct {
	Name     *string
	LastName *string
	Email    *string
}

func (in ProfileInput) empty() bool { return in.Name == nil && in.LastName == nil && in.Email == nil }

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ProfileShow prints the rancher's profile.
func (a *App) ProfileShow(ctx context.Context) error {
	st, err := a.enter(ctx, nav.Profile)
	if err != nil {
		return err
	}
	cctx, cancel := a.call(ctx)
	defer cancel()
	p, err := a.profiles.Get(cctx, st.User.UID)
	if err != nil {
		return err
	}
	lines := []string{
		a.theme.Title.Render(p.Name + " " + p.LastName),
		a.theme.Text.Render(p.Email),
		a.theme.Muted.Render("since " + p.CreatedAt.Local().Format("2006-01-02")),
	}
	if p.UpdatedAt != nil {
		lines = append(lines, a.theme.Muted.Render("updated "+p.UpdatedAt.Local().Format("2006-01-02 15:04")))
	}
	a.println(a.theme.Card.Render(strings.Join(lines, "\n")))
	return nil
}

// ProfileComplete re-asks the registration details of a signed-in rancher
// without a profile.
func (a *App) ProfileComplete(ctx context.Context, in ProfileInput) error {
	st, err := a.enter(ctx, nav.CompleteProfile)
	if err != nil {
		return err
	}
	a.println(a.theme.Text.Render("Let's finish your registration."))
	data := model.RegistrationData{Name: deref(in.Name), LastName: deref(in.LastName), Email: deref(in.Email)}
	if data.Name, err = a.orAsk(data.Name, "Name"); err != nil {
		return err
	}
	if data.LastName, err = a.orAsk(data.LastName, "Last name"); err != nil {
		return err
	}
	if data.Email == "" {
		data.Email = st.User.Email
	}
	if err := validate.Registration(data); err != nil {
		return err
	}

	cctx, cancel := a.call(ctx)
	defer cancel()
	if err := a.sess.CompleteProfile(cctx, data); err != nil {
		return err
	}
	return a.showGate(ctx, a.sess.State())
}

// ProfileEdit updates the given fields, prompting for each when none is given.
func (a *App) ProfileEdit(ctx context.Context, in ProfileInput) error {
	st, err := a.enter(ctx, nav.Profile)
	if err != nil {
		return err
	}
	cctx, cancel := a.call(ctx)
	defer cancel()

	upd := model.ProfileUpdate{Name: in.Name, LastName: in.LastName, Email: in.Email}
	if in.empty() {
		cur, err := a.profiles.Get(cctx, st.User.UID)
		if err != nil {
			return err
		}
		for _, f := range []struct {
			label string
			cur   string
			dst   **string
		}{
			{"Name", cur.Name, &upd.Name},
			{"Last name", cur.LastName, &upd.LastName},
			{"Email", cur.Email, &upd.Email},
		} {
			v, changed, err := a.askDefault(f.label, f.cur)
			if err != nil {
				return err
			}
			if changed {
				*f.dst = &v
			}
		}
	}
	if upd == (model.ProfileUpdate{}) {
		a.println(a.theme.Muted.Render("Nothing to change."))
		return nil
	}
	if err := validate.ProfileUpdate(upd); err != nil {
		return err
	}
	if err := a.profiles.Update(cctx, st.User.UID, upd); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	a.success("Profile saved.")
	return nil
}
