package app

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/and161185/micromuu/internal/client/nav"
	"github.com/and161185/micromuu/internal/errs"
)

const shellHelp = `Commands:
  status                      session and current screen
  register | login            sign up or sign in
  link <url>                  open a micromuu:// link
  welcome                     acknowledge the welcome screen
  profile [edit|complete]     show or change your profile
  farms                       dashboard with your farms
  add                         add a farm
  show|edit|archive <n|id>    one farm
  image <n|id> <file>         replace a farm photo
  rmimage <n|id>              remove a farm photo
  logout
  exit | quit`

// Shell is a long-lived session: state such as the new-user flag survives
// between screens. It returns on EOF or exit.
func (a *App) Shell(ctx context.Context) error {
	a.println(a.theme.brand())
	a.println(a.theme.Muted.Render("Type help for commands."))
	for {
		route := nav.Gate(a.sess.State())
		a.printf("%s ", a.theme.Accent.Render("micromuu ["+string(route)+"]>"))
		line, err := a.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				a.println("")
				return nil
			}
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		if parts[0] == "exit" || parts[0] == "quit" {
			a.println("Happy trails!")
			return nil
		}
		if err := a.dispatch(ctx, parts); err != nil && !errors.Is(err, errs.ErrNotAllowed) {
			a.PrintError(err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func arg(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

func (a *App) dispatch(ctx context.Context, parts []string) error {
	switch parts[0] {
	case "help", "?":
		a.println(shellHelp)
		return nil
	case "status":
		return a.Status(ctx)
	case "register":
		return a.Register(ctx, RegisterInput{})
	case "login":
		return a.Login(ctx, "", "")
	case "link":
		return a.Link(ctx, arg(parts, 1), arg(parts, 2))
	case "welcome":
		return a.Welcome(ctx)
	case "profile":
		switch arg(parts, 1) {
		case "", "show":
			return a.ProfileShow(ctx)
		case "edit":
			return a.ProfileEdit(ctx, ProfileInput{})
		case "complete":
			return a.ProfileComplete(ctx, ProfileInput{})
		}
	case "complete":
		return a.ProfileComplete(ctx, ProfileInput{})
	case "farms", "dashboard", "list", "ls":
		return a.Dashboard(ctx)
	case "add":
		return a.FarmAdd(ctx, FarmInput{})
	case "show":
		return a.FarmShow(ctx, arg(parts, 1))
	case "edit":
		return a.FarmEditRun(ctx, arg(parts, 1), FarmEdit{})
	case "archive":
		return a.FarmArchive(ctx, arg(parts, 1), false)
	case "image":
		if arg(parts, 2) == "" {
			return errs.ErrValidation
		}
		return a.FarmEditRun(ctx, arg(parts, 1), FarmEdit{ImagePath: arg(parts, 2)})
	case "rmimage":
		return a.FarmEditRun(ctx, arg(parts, 1), FarmEdit{RemoveImage: true})
	case "logout":
		return a.Logout(ctx)
	}
	a.println(a.theme.Muted.Render("Unknown command: " + strings.Join(parts, " ") + " (try help)"))
	return nil
}
