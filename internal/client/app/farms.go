package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	u "github.com/gofrs/uuid/v5"

	"github.com/and161185/micromuu/internal/client/nav"
	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
	"github.com/and161185/micromuu/internal/validate"
)

// MaxImageBytes bounds farm photos before upload.
const MaxImageBytes = 5 << 20

// FarmInput is the add-farm form.
type FarmInput struct {
	Name      string
	Location  string
	ImagePath string
}

// FarmEdit changes a farm. Nil fields are kept. With nothing set the fields
// are prompted.
type FarmEdit struct {
	Name        *string
	Location    *string
	ImagePath   string
	RemoveImage bool
}

func (e FarmEdit) empty() bool {
	return e.Name == nil && e.Location == nil && e.ImagePath == "" && !e.RemoveImage
}

// Dashboard greets the rancher and lists the active farms.
func (a *App) Dashboard(ctx context.Context) error {
	st, err := a.enter(ctx, nav.Dashboard)
	if err != nil {
		return err
	}
	cctx, cancel := a.call(ctx)
	defer cancel()

	name := st.User.Email
	if p, err := a.profiles.Get(cctx, st.User.UID); err == nil {
		name = p.Name
	} else if !errors.Is(err, errs.ErrNotFound) {
		return err
	}
	farms, err := a.farms.List(cctx)
	if err != nil {
		return fmt.Errorf("list farms: %w", err)
	}
	a.lastFarms = farms

	a.println(a.theme.Title.Render("Howdy, " + name + "!"))
	if len(farms) == 0 {
		a.println(a.theme.Muted.Render("No farms yet. Add one with: micromuu farms add"))
		return nil
	}
	a.println(a.theme.Text.Render(fmt.Sprintf("Your farms (%d):", len(farms))))
	for i, f := range farms {
		line := fmt.Sprintf("%2d. %s", i+1, f.Name)
		if f.Location != "" {
			line += a.theme.Muted.Render("  " + f.Location)
		}
		if f.ImageURL != "" {
			line += "  " + a.theme.Badge.Render("photo")
		}
		a.println(line)
	}
	return nil
}

// FarmAdd creates a farm, then uploads its photo when one is given.
func (a *App) FarmAdd(ctx context.Context, in FarmInput) error {
	if _, err := a.enter(ctx, nav.AddFarm); err != nil {
		return err
	}
	var err error
	if strings.TrimSpace(in.Name) == "" {
		if in.Name, err = a.ask("Farm name"); err != nil {
			return err
		}
		if in.Location, err = a.ask("Location (optional)"); err != nil {
			return err
		}
		if in.ImagePath, err = a.ask("Photo file (optional)"); err != nil {
			return err
		}
	}
	if err := validate.Farm(in.Name, in.Location); err != nil {
		return err
	}
	var img []byte
	var imgType string
	if in.ImagePath != "" {
		if img, imgType, err = readImage(in.ImagePath); err != nil {
			return err
		}
	}

	cctx, cancel := a.call(ctx)
	defer cancel()
	id, err := a.farms.Create(cctx, model.CreateFarm{Name: strings.TrimSpace(in.Name), Location: strings.TrimSpace(in.Location)})
	if err != nil {
		return fmt.Errorf("create farm: %w", err)
	}
	if img != nil {
		url, err := a.farms.UploadImage(cctx, id, img, imgType)
		if err != nil {
			return fmt.Errorf("farm saved without photo: %w", err)
		}
		if err := a.farms.Update(cctx, id, model.FarmUpdate{ImageURL: &url}); err != nil {
			return fmt.Errorf("farm saved without photo: %w", err)
		}
	}
	a.success("Farm " + strings.TrimSpace(in.Name) + " added.")
	a.println(a.theme.Muted.Render("id " + id.String()))
	return nil
}

// FarmShow prints one farm. ref is its id or its position in the last list.
func (a *App) FarmShow(ctx context.Context, ref string) error {
	if _, err := a.enter(ctx, nav.EditFarm); err != nil {
		return err
	}
	cctx, cancel := a.call(ctx)
	defer cancel()
	f, err := a.farm(cctx, ref)
	if err != nil {
		return err
	}
	a.println(a.farmCard(f))
	return nil
}

func (a *App) farmCard(f model.Farm) string {
	lines := []string{a.theme.Title.Render(f.Name)}
	if f.Location != "" {
		lines = append(lines, a.theme.Text.Render(f.Location))
	}
	lines = append(lines, a.theme.Badge.Render(string(f.Status)))
	if f.ImageURL != "" {
		lines = append(lines, a.theme.Accent.Render("photo: "+f.ImageURL))
	}
	lines = append(lines,
		a.theme.Muted.Render("created "+f.CreatedAt.Local().Format("2006-01-02 15:04")),
		a.theme.Muted.Render("updated "+f.UpdatedAt.Local().Format("2006-01-02 15:04")),
	)
	if f.ArchivedAt != nil {
		lines = append(lines, a.theme.Muted.Render("archived "+f.ArchivedAt.Local().Format("2006-01-02 15:04")))
	}
	lines = append(lines, a.theme.Muted.Render("id "+f.ID.String()))
	return a.theme.Card.Render(strings.Join(lines, "\n"))
}

// FarmEditRun applies e to the farm ref. A new photo replaces the old one at
// the same path; RemoveImage deletes the object and clears the URL.
func (a *App) FarmEditRun(ctx context.Context, ref string, e FarmEdit) error {
	if _, err := a.enter(ctx, nav.EditFarm); err != nil {
		return err
	}
	cctx, cancel := a.call(ctx)
	defer cancel()
	f, err := a.farm(cctx, ref)
	if err != nil {
		return err
	}

	if e.empty() {
		name, changed, err := a.askDefault("Farm name", f.Name)
		if err != nil {
			return err
		}
		if changed {
			e.Name = &name
		}
		loc, changed, err := a.askDefault("Location", f.Location)
		if err != nil {
			return err
		}
		if changed {
			e.Location = &loc
		}
		if e.ImagePath, err = a.ask("New photo file (empty keeps)"); err != nil {
			return err
		}
	}

	upd := model.FarmUpdate{Name: e.Name, Location: e.Location}
	if err := validate.FarmUpdate(upd); err != nil {
		return err
	}
	var img []byte
	var imgType string
	if e.ImagePath != "" {
		if img, imgType, err = readImage(e.ImagePath); err != nil {
			return err
		}
	}

	switch {
	case img != nil:
		url, err := a.farms.UploadImage(cctx, f.ID, img, imgType)
		if err != nil {
			return fmt.Errorf("upload photo: %w", err)
		}
		upd.ImageURL = &url
	case e.RemoveImage:
		if err := a.farms.DeleteImage(cctx, f.ID); err != nil {
			return fmt.Errorf("remove photo: %w", err)
		}
		none := ""
		upd.ImageURL = &none
	}
	if upd == (model.FarmUpdate{}) {
		a.println(a.theme.Muted.Render("Nothing to change."))
		return nil
	}
	if err := a.farms.Update(cctx, f.ID, upd); err != nil {
		return fmt.Errorf("update farm: %w", err)
	}
	a.success("Farm saved.")
	return nil
}

// FarmArchive archives the farm ref after confirmation unless yes is set.
func (a *App) FarmArchive(ctx context.Context, ref string, yes bool) error {
	if _, err := a.enter(ctx, nav.EditFarm); err != nil {
		return err
	}
	cctx, cancel := a.call(ctx)
	defer cancel()
	f, err := a.farm(cctx, ref)
	if err != nil {
		return err
	}
	if !yes {
		ans, err := a.ask("Archive " + f.Name + "? This cannot be undone. [y/N]")
		if err != nil {
			return err
		}
		if !strings.EqualFold(ans, "y") && !strings.EqualFold(ans, "yes") {
			a.println(a.theme.Muted.Render("Kept."))
			return nil
		}
	}
	if err := a.farms.Archive(cctx, f.ID); err != nil {
		return fmt.Errorf("archive farm: %w", err)
	}
	a.success("Farm " + f.Name + " archived.")
	return nil
}

// farm resolves ref as a farm id or a 1-based position in the dashboard list.
func (a *App) farm(ctx context.Context, ref string) (model.Farm, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.Farm{}, fmt.Errorf("%w: farm id or number required", errs.ErrValidation)
	}
	if id, err := u.FromString(ref); err == nil {
		return a.farms.Get(ctx, id)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(ref, "#"))
	if err != nil || n < 1 {
		return model.Farm{}, fmt.Errorf("%w: %q is not a farm id or number", errs.ErrValidation, ref)
	}
	if a.lastFarms == nil {
		if a.lastFarms, err = a.farms.List(ctx); err != nil {
			return model.Farm{}, err
		}
	}
	if n > len(a.lastFarms) {
		return model.Farm{}, errs.ErrNotFound
	}
	return a.farms.Get(ctx, a.lastFarms[n-1].ID)
}

func readImage(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read photo: %w", err)
	}
	switch {
	case len(data) == 0:
		return nil, "", fmt.Errorf("%w: photo file is empty", errs.ErrValidation)
	case len(data) > MaxImageBytes:
		return nil, "", fmt.Errorf("%w: photo is larger than 5 MiB", errs.ErrValidation)
	}
	ct := http.DetectContentType(data)
	if !strings.HasPrefix(ct, "image/") {
		return nil, "", fmt.Errorf("%w: %s is not an image", errs.ErrValidation, path)
	}
	return data, ct, nil
}
