package session

import (
	"github.com/and161185/micromuu/internal/model"
)

// Phase is the coarse session state the navigation gate routes on.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseUnauthenticated
	PhaseNoProfile
	PhaseWithProfile
	PhaseFailed // last reconciliation pass returned an error
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseUnauthenticated:
		return "unauthenticated"
	case PhaseNoProfile:
		return "authenticated-no-profile"
	case PhaseWithProfile:
		return "authenticated-with-profile"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a snapshot of the session. HasProfile is nil while loading, while
// unauthenticated and after a failed pass. It is never mutated through the
// pointer; every transition allocates a new value.
type State struct {
	User            *model.Identity
	IsLoading       bool
	IsAuthenticated bool
	HasProfile      *bool
	IsNewUser       bool
	Err             error
}

// Phase derives the coarse phase from s.
func (s State) Phase() Phase {
	switch {
	case s.IsLoading:
		return PhaseLoading
	case !s.IsAuthenticated:
		return PhaseUnauthenticated
	case s.Err != nil || s.HasProfile == nil:
		return PhaseFailed
	case *s.HasProfile:
		return PhaseWithProfile
	default:
		return PhaseNoProfile
	}
}

// InPhase returns an Await predicate matching any of phases.
func InPhase(phases ...Phase) func(State) bool {
	return func(s State) bool {
		p := s.Phase()
		for _, want := range phases {
			if p == want {
				return true
			}
		}
		return false
	}
}

// Settled matches every phase except loading.
func Settled(s State) bool { return !s.IsLoading }

func boolPtr(v bool) *bool { return &v }
