package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/and161185/micromuu/internal/api"
	pkgcrypto "github.com/and161185/micromuu/internal/crypto"
	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/mail"
)

var testKey = []byte("secret")

func cheapHasher() *pkgcrypto.Hasher {
	return pkgcrypto.NewHasher(pkgcrypto.Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 16, SaltLen: 8})
}

func newIdentity(t *testing.T) (*IdentityServiceImpl, *fakeUsers, *fakeLimiter, *mail.Outbox) {
	t.Helper()
	users := newFakeUsers()
	lim := &fakeLimiter{allowOK: true}
	box := mail.NewOutbox()
	s := NewIdentityService(users, newFakeLinks(), lim, box, cheapHasher(), IdentityConfig{SignKey: testKey})
	return s, users, lim, box
}

func TestIdentity_SignUpAndSignIn(t *testing.T) {
	t.Parallel()
	s, users, lim, _ := newIdentity(t)
	ctx := context.Background()

	if _, _, err := s.SignUp(ctx, "nope", "secret1"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want ErrValidation on bad email, got %v", err)
	}
	if _, _, err := s.SignUp(ctx, "a@b.co", "123"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want ErrValidation on short password, got %v", err)
	}

	tok, u, err := s.SignUp(ctx, " Rancher@Farm.COM ", "secret1")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if u.Email != "rancher@farm.com" || tok.IDToken == "" {
		t.Fatalf("bad sign up result: %+v %+v", u, tok)
	}
	if _, _, err := s.SignUp(ctx, "rancher@farm.com", "other12"); !errors.Is(err, errs.ErrEmailInUse) {
		t.Fatalf("want ErrEmailInUse, got %v", err)
	}

	if _, _, err := s.SignIn(ctx, "rancher@farm.com", "wrong12", "1.2.3.4"); !errors.Is(err, errs.ErrWrongPassword) {
		t.Fatalf("want ErrWrongPassword, got %v", err)
	}
	if _, _, err := s.SignIn(ctx, "ghost@farm.com", "secret1", ""); !errors.Is(err, errs.ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
	if _, _, err := s.SignIn(ctx, "bad", "secret1", ""); !errors.Is(err, errs.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
	if lim.failureCalls != 2 {
		t.Fatalf("want 2 failures recorded, got %d", lim.failureCalls)
	}

	tok, got, err := s.SignIn(ctx, "RANCHER@farm.com", "secret1", "1.2.3.4")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if got.ID != u.ID || lim.successCalls != 1 {
		t.Fatalf("bad sign in: %+v successCalls=%d", got, lim.successCalls)
	}
	if users.byEmail["rancher@farm.com"].LastSignInAt == nil {
		t.Fatalf("last sign in not stamped")
	}

	var claims IDClaims
	if _, err := jwt.ParseWithClaims(tok.IDToken, &claims, func(*jwt.Token) (any, error) { return testKey, nil }); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Subject != u.ID.String() || claims.Email != u.Email || claims.Issuer != TokenIssuer {
		t.Fatalf("bad claims: %+v", claims)
	}
}

func TestIdentity_SignIn_RateLimited(t *testing.T) {
	t.Parallel()
	s, _, lim, _ := newIdentity(t)
	ctx := context.Background()
	if _, _, err := s.SignUp(ctx, "a@b.co", "secret1"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	lim.allowErr = errors.New("lim-err")
	if _, _, err := s.SignIn(ctx, "a@b.co", "secret1", ""); err == nil {
		t.Fatalf("want limiter error propagated")
	}
	lim.allowErr = nil

	lim.allowOK = false
	if _, _, err := s.SignIn(ctx, "a@b.co", "secret1", ""); !errors.Is(err, errs.ErrRateLimited) {
		t.Fatalf("want ErrRateLimited, got %v", err)
	}
	lim.allowOK = true

	lim.failBlocked = true
	if _, _, err := s.SignIn(ctx, "a@b.co", "wrong12", ""); !errors.Is(err, errs.ErrRateLimited) {
		t.Fatalf("want ErrRateLimited once blocked, got %v", err)
	}
}

func TestIdentity_SignInLink(t *testing.T) {
	t.Parallel()
	s, users, _, box := newIdentity(t)
	ctx := context.Background()

	if err := s.SendSignInLink(ctx, "user@domain", "", ""); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
	if err := s.SendSignInLink(ctx, "Juan@Ranch.mx", "", "10.0.0.1"); err != nil {
		t.Fatalf("SendSignInLink: %v", err)
	}
	link, ok := box.Last("juan@ranch.mx")
	if !ok || !strings.HasPrefix(link, api.DefaultContinueURL+"?") {
		t.Fatalf("bad link mailed: %q", link)
	}

	if _, _, err := s.CompleteSignInWithLink(ctx, "other@ranch.mx", link); !errors.Is(err, errs.ErrInvalidLink) {
		t.Fatalf("want ErrInvalidLink for mismatched email, got %v", err)
	}
	if _, _, err := s.CompleteSignInWithLink(ctx, "juan@ranch.mx", "https://example.com"); !errors.Is(err, errs.ErrInvalidLink) {
		t.Fatalf("want ErrInvalidLink for non-link, got %v", err)
	}

	tok, u, err := s.CompleteSignInWithLink(ctx, "juan@ranch.mx", link)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if tok.IDToken == "" || u.HasPassword() {
		t.Fatalf("want passwordless user with token: %+v", u)
	}
	if _, ok := users.byEmail["juan@ranch.mx"]; !ok {
		t.Fatalf("account not created on first link use")
	}

	if _, _, err := s.CompleteSignInWithLink(ctx, "juan@ranch.mx", link); !errors.Is(err, errs.ErrInvalidLink) {
		t.Fatalf("want ErrInvalidLink on reuse, got %v", err)
	}

	// passwordless accounts cannot sign in with a password
	if _, _, err := s.SignIn(ctx, "juan@ranch.mx", "anything", ""); !errors.Is(err, errs.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestIdentity_SignInLink_ExpiredAndExisting(t *testing.T) {
	t.Parallel()
	s, _, _, box := newIdentity(t)
	ctx := context.Background()

	_, u, err := s.SignUp(ctx, "a@b.co", "secret1")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if err := s.SendSignInLink(ctx, "a@b.co", "https://app.example/cb", ""); err != nil {
		t.Fatalf("SendSignInLink: %v", err)
	}
	link, _ := box.Last("a@b.co")
	if code, ok := api.ParseSignInLink(link); !ok || code == "" {
		t.Fatalf("unparsable link %q", link)
	}

	base := time.Now()
	s.now = func() time.Time { return base.Add(2 * time.Hour) }
	if _, _, err := s.CompleteSignInWithLink(ctx, "a@b.co", link); !errors.Is(err, errs.ErrInvalidLink) {
		t.Fatalf("want ErrInvalidLink after expiry, got %v", err)
	}

	s.now = time.Now
	if err := s.SendSignInLink(ctx, "a@b.co", "", ""); err != nil {
		t.Fatalf("SendSignInLink: %v", err)
	}
	link, _ = box.Last("a@b.co")
	_, got, err := s.CompleteSignInWithLink(ctx, "a@b.co", link)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("link sign-in should reuse the existing account")
	}
}

func TestIdentity_SendSignInLink_Limited(t *testing.T) {
	t.Parallel()
	s, _, lim, box := newIdentity(t)

	lim.allowOK = false
	if err := s.SendSignInLink(context.Background(), "a@b.co", "", ""); !errors.Is(err, errs.ErrRateLimited) {
		t.Fatalf("want ErrRateLimited, got %v", err)
	}
	if _, ok := box.Last("a@b.co"); ok {
		t.Fatalf("no mail expected while limited")
	}
}

func TestIdentity_LimiterErrorsAreLoggedNotReturned(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.WarnLevel)
	users := newFakeUsers()
	lim := &fakeLimiter{allowOK: true, failErr: errors.New("limiter table locked")}
	box := mail.NewOutbox()
	s := NewIdentityService(users, newFakeLinks(), lim, box, cheapHasher(), IdentityConfig{SignKey: testKey, Logger: zap.New(core)})
	ctx := context.Background()

	if err := s.SendSignInLink(ctx, "a@b.co", "", "10.0.0.1"); err != nil {
		t.Fatalf("SendSignInLink: %v", err)
	}
	if _, ok := box.Last("a@b.co"); !ok {
		t.Fatalf("link should still be mailed")
	}
	if _, _, err := s.SignUp(ctx, "a@b.co", "secret1"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if _, _, err := s.SignIn(ctx, "a@b.co", "wrong12", "10.0.0.1"); !errors.Is(err, errs.ErrWrongPassword) {
		t.Fatalf("want ErrWrongPassword, got %v", err)
	}

	if n := logs.FilterMessage("record sign-in link request").Len(); n != 1 {
		t.Fatalf("want 1 link warning, got %d", n)
	}
	if n := logs.FilterMessage("record sign-in failure").Len(); n != 1 {
		t.Fatalf("want 1 sign-in warning, got %d", n)
	}
	for _, e := range logs.All() {
		if e.Level != zap.WarnLevel {
			t.Fatalf("want warn level, got %v", e.Level)
		}
	}
}
