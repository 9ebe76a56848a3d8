// Package pending persists registration details between the registration
// request and the first authenticated session.
package pending

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/and161185/micromuu/internal/client/kv"
	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
)

// Key is the single storage slot; a new registration replaces the old one.
const Key = "pendingRegistration"

// MaxAge is how long a pending registration stays usable.
const MaxAge = time.Hour

// Store reads and writes the pending registration.
type Store struct {
	kv  kv.Store
	now func() time.Time
}

// New returns a Store over s using the wall clock.
func New(s kv.Store) *Store { return NewWithClock(s, time.Now) }

// NewWithClock lets tests control expiry.
func NewWithClock(s kv.Store, now func() time.Time) *Store {
	return &Store{kv: s, now: now}
}

// Put stamps createdAt and overwrites any stored record.
func (s *Store) Put(ctx context.Context, data model.RegistrationData) error {
	rec := model.PendingRegistration{RegistrationData: data, CreatedAt: s.now().UnixMilli()}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, Key, b); err != nil {
		return fmt.Errorf("store pending registration: %w", err)
	}
	return nil
}

// Get returns the record, or nil when none is stored or it has expired.
// An expired record is deleted.
func (s *Store) Get(ctx context.Context) (*model.PendingRegistration, error) {
	b, err := s.kv.Get(ctx, Key)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load pending registration: %w", err)
	}

	var rec model.PendingRegistration
	if err := json.Unmarshal(b, &rec); err != nil {
		// unreadable record is as good as absent
		return nil, s.Clear(ctx)
	}
	if s.now().UnixMilli()-rec.CreatedAt > MaxAge.Milliseconds() {
		return nil, s.Clear(ctx)
	}
	return &rec, nil
}

// Clear removes the record; no error if nothing is stored.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear pending registration: %w", err)
	}
	return nil
}
