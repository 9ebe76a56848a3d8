// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., email taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized indicates failed authentication.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates an authenticated caller acting on someone else's data.
	ErrForbidden = errors.New("forbidden")

	// ErrRateLimited indicates temporary lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrValidation indicates rejected input; see validate.Error for field details.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidLink indicates an unknown, used, expired or mismatched sign-in link.
	ErrInvalidLink = errors.New("invalid sign-in link")
)

// Client-side authentication taxonomy. The identity client maps provider
// codes onto these 1:1.
var (
	// ErrAuthRequest indicates the provider rejected a sign-in link request.
	ErrAuthRequest = errors.New("auth request rejected")

	// ErrInvalidCredentials indicates malformed credentials or a passwordless account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound indicates no account exists for the email.
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword indicates the password did not match.
	ErrWrongPassword = errors.New("wrong password")

	// ErrSignIn is the generic sign-in failure.
	ErrSignIn = errors.New("sign in failed")

	// ErrEmailInUse indicates sign-up with an email that already has an account.
	ErrEmailInUse = errors.New("email already in use")

	// ErrNoStoredEmail indicates link completion without an email stored on this device.
	ErrNoStoredEmail = errors.New("no stored email for sign-in link")

	// ErrNotAllowed indicates an operation invalid for the current session phase.
	ErrNotAllowed = errors.New("operation not allowed in current state")
)
