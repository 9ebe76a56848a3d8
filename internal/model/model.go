// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Tokens collects an issued ID token.
type Tokens struct {
	IDToken   string
	ExpiresAt time.Time
}

// User represents an identity stored on the server. Password fields are empty
// for passwordless accounts.
type User struct {
	ID           uuid.UUID // PK
	Email        string    // unique, lower-cased
	PwdHash      []byte    // Argon2id(password, SaltAuth)
	SaltAuth     []byte    // per-user auth salt
	CreatedAt    time.Time
	LastSignInAt *time.Time
}

// HasPassword reports whether the account can sign in with a password.
func (u *User) HasPassword() bool { return len(u.PwdHash) > 0 }

// SignInLink is a one-time passwordless sign-in token. Only its hash is stored.
type SignInLink struct {
	ID          uuid.UUID
	Email       string
	TokenHash   []byte
	ContinueURL string
	ExpiresAt   time.Time
	UsedAt      *time.Time
	CreatedAt   time.Time
}

// IsExpired reports whether the link can no longer be used at now.
func (l *SignInLink) IsExpired(now time.Time) bool { return !now.Before(l.ExpiresAt) }

// Profile is the single profile document of an identity.
type Profile struct {
	UserID    uuid.UUID
	Name      string
	LastName  string
	Email     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ProfileUpdate carries the fields to change; nil means keep.
type ProfileUpdate struct {
	Name     *string
	LastName *string
	Email    *string
}

// FarmStatus is the lifecycle state of a farm. It only moves active -> archived.
type FarmStatus string

const (
	FarmActive   FarmStatus = "active"
	FarmArchived FarmStatus = "archived"
)

// Farm is a farm document owned by exactly one user.
type Farm struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Location   string
	ImageURL   string // empty when no photo
	Status     FarmStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ArchivedAt *time.Time // set iff Status == FarmArchived
}

// CreateFarm is the input of farm creation.
type CreateFarm struct {
	Name     string
	Location string
	ImageURL string
}

// FarmUpdate carries the fields to change; nil means keep. An empty ImageURL clears the photo.
type FarmUpdate struct {
	Name     *string
	Location *string
	ImageURL *string
}

// RegistrationData is what a rancher submits on the registration form.
type RegistrationData struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
}

// PendingRegistration is registration data captured before the identity exists.
type PendingRegistration struct {
	RegistrationData
	CreatedAt int64 `json:"createdAt"` // epoch millis
}

// Identity is the signed-in user as seen by the client.
type Identity struct {
	UID       uuid.UUID `json:"uid"`
	Email     string    `json:"email"`
	IDToken   string    `json:"idToken"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the ID token is no longer usable at now.
func (i *Identity) Expired(now time.Time) bool { return !now.Before(i.ExpiresAt) }
