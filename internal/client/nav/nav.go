// Package nav maps session state and deep links to screens.
package nav

import (
	"net/url"
	"strings"

	"github.com/and161185/micromuu/internal/client/session"
)

// Route names a screen as "stack/screen".
type Route string

const (
	Loading         Route = "loading"
	SessionError    Route = "error"
	Login           Route = "auth/login"
	Register        Route = "auth/register"
	VerifyEmail     Route = "auth/verify-email"
	CompleteProfile Route = "auth/complete-profile"
	Welcome         Route = "main/welcome"
	Dashboard       Route = "main/dashboard"
	AddFarm         Route = "main/add-farm"
	EditFarm        Route = "main/edit-farm"
	Profile         Route = "main/profile"
)

// Scheme is the deep link prefix the app registers.
const Scheme = "micromuu://"

var allowed = map[session.Phase][]Route{
	session.PhaseLoading:         {Loading},
	session.PhaseFailed:          {SessionError},
	session.PhaseUnauthenticated: {Login, Register, VerifyEmail},
	session.PhaseNoProfile:       {CompleteProfile},
	session.PhaseWithProfile:     {Welcome, Dashboard, AddFarm, EditFarm, Profile},
}

// Gate returns the landing screen for s.
func Gate(s session.State) Route {
	switch s.Phase() {
	case session.PhaseLoading:
		return Loading
	case session.PhaseUnauthenticated:
		return Login
	case session.PhaseFailed:
		return SessionError
	case session.PhaseNoProfile:
		return CompleteProfile
	}
	if s.IsNewUser {
		return Welcome
	}
	return Dashboard
}

// Guard returns want when the phase of s permits it, else the Gate route.
func Guard(s session.State, want Route) Route {
	for _, r := range allowed[s.Phase()] {
		if r == want {
			return r
		}
	}
	return Gate(s)
}

// Stack returns the stack half of r.
func (r Route) Stack() string {
	if i := strings.IndexByte(string(r), '/'); i >= 0 {
		return string(r)[:i]
	}
	return string(r)
}

var linkPaths = map[string]Route{
	"auth/callback": Login,
	"register":      Register,
	"welcome":       Welcome,
	"dashboard":     Dashboard,
}

// Resolve maps a micromuu:// deep link to its screen. Query parameters are
// ignored; a sign-in link resolves to Login, which completes it.
func Resolve(link string) (Route, bool) {
	if !strings.HasPrefix(strings.ToLower(link), Scheme) {
		return "", false
	}
	u, err := url.Parse(link)
	if err != nil {
		return "", false
	}
	path := strings.Trim(u.Host+u.Path, "/")
	r, ok := linkPaths[strings.ToLower(path)]
	return r, ok
}
