// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"
	"time"

	"github.com/and161185/micromuu/internal/model"
	"github.com/gofrs/uuid/v5"
)

// UserRepository stores identities.
type UserRepository interface {
	// Create inserts a new user; ErrAlreadyExists on a taken email.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetByEmail loads a user by lower-cased email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// TouchSignIn stamps last_sign_in_at.
	TouchSignIn(ctx context.Context, id uuid.UUID, at time.Time) error
	// Delete removes the user and cascades relational data.
	Delete(ctx context.Context, id uuid.UUID) error
}

// LinkRepository stores one-time sign-in links.
type LinkRepository interface {
	// Create stores a new link.
	Create(ctx context.Context, l *model.SignInLink) error
	// Consume marks an unused, unexpired link for email used and returns it.
	// Unknown, used, expired or mismatched links yield ErrNotFound.
	Consume(ctx context.Context, tokenHash []byte, email string, now time.Time) (*model.SignInLink, error)
}
