package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/and161185/micromuu/internal/client/session"
	"github.com/and161185/micromuu/internal/model"
)

func ptr(b bool) *bool { return &b }

func TestGate(t *testing.T) {
	t.Parallel()
	user := &model.Identity{Email: "a@b.co"}

	cases := []struct {
		name string
		st   session.State
		want Route
	}{
		{"initial", session.State{IsLoading: true}, Loading},
		{"signed out", session.State{}, Login},
		{"reconciling", session.State{User: user, IsAuthenticated: true, IsLoading: true}, Loading},
		{"failed", session.State{User: user, IsAuthenticated: true, Err: errors.New("x")}, SessionError},
		{"no profile", session.State{User: user, IsAuthenticated: true, HasProfile: ptr(false)}, CompleteProfile},
		{"new user", session.State{User: user, IsAuthenticated: true, HasProfile: ptr(true), IsNewUser: true}, Welcome},
		{"returning", session.State{User: user, IsAuthenticated: true, HasProfile: ptr(true)}, Dashboard},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Gate(tc.st), tc.name)
	}
}

func TestGuard(t *testing.T) {
	t.Parallel()
	user := &model.Identity{Email: "a@b.co"}
	out := session.State{}
	in := session.State{User: user, IsAuthenticated: true, HasProfile: ptr(true)}
	incomplete := session.State{User: user, IsAuthenticated: true, HasProfile: ptr(false)}

	require.Equal(t, Register, Guard(out, Register))
	require.Equal(t, Login, Guard(out, Dashboard))
	require.Equal(t, AddFarm, Guard(in, AddFarm))
	require.Equal(t, Dashboard, Guard(in, Login))
	require.Equal(t, CompleteProfile, Guard(incomplete, Dashboard))
	require.Equal(t, "main", Guard(in, EditFarm).Stack())
	require.Equal(t, "loading", Loading.Stack())
}

func TestResolve(t *testing.T) {
	t.Parallel()

	r, ok := Resolve("micromuu://auth/callback")
	require.True(t, ok)
	require.Equal(t, Login, r)

	r, ok = Resolve("micromuu://auth/callback?mode=signIn&oobCode=abc")
	require.True(t, ok)
	require.Equal(t, Login, r)

	r, ok = Resolve("MICROMUU://register")
	require.True(t, ok)
	require.Equal(t, Register, r)

	for _, bad := range []string{"https://example.com/auth/callback", "micromuu://nowhere", "", "micromuu"} {
		_, ok := Resolve(bad)
		require.False(t, ok, bad)
	}
}
