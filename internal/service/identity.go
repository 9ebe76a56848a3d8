// Package service contains the backend services: identity, profiles and farms.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/and161185/micromuu/internal/api"
	pkgcrypto "github.com/and161185/micromuu/internal/crypto"
	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/limiter"
	"github.com/and161185/micromuu/internal/mail"
	"github.com/and161185/micromuu/internal/model"
	"github.com/and161185/micromuu/internal/repository"
	"github.com/and161185/micromuu/internal/validate"
)

// IDClaims are the claims of an issued ID token.
type IDClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer is the iss claim of every ID token.
const TokenIssuer = "micromuu"

// IdentityService is the identity provider: password and passwordless sign-in.
type IdentityService interface {
	// SignUp creates a password account and signs it in.
	SignUp(ctx context.Context, email, password string) (model.Tokens, model.User, error)
	// SignIn authenticates with a password, rate-limited by (email, ip).
	SignIn(ctx context.Context, email, password, ip string) (model.Tokens, model.User, error)
	// SendSignInLink mails a one-time sign-in link.
	SendSignInLink(ctx context.Context, email, continueURL, ip string) error
	// CompleteSignInWithLink consumes the link and signs in, creating the account on first use.
	CompleteSignInWithLink(ctx context.Context, email, link string) (model.Tokens, model.User, error)
}

// IdentityConfig holds token and link settings.
type IdentityConfig struct {
	SignKey            []byte
	TokenTTL           time.Duration
	LinkTTL            time.Duration
	DefaultContinueURL string
	// Logger receives limiter bookkeeping failures. Nil discards them.
	Logger *zap.Logger
}

type IdentityServiceImpl struct {
	users  repository.UserRepository
	links  repository.LinkRepository
	lim    limiter.Limiter
	mailer mail.LinkSender
	hasher *pkgcrypto.Hasher
	cfg    IdentityConfig
	now    func() time.Time
}

// NewIdentityService constructs IdentityService with required dependencies.
func NewIdentityService(
	users repository.UserRepository,
	links repository.LinkRepository,
	lim limiter.Limiter,
	mailer mail.LinkSender,
	hasher *pkgcrypto.Hasher,
	cfg IdentityConfig,
) *IdentityServiceImpl {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	if cfg.LinkTTL <= 0 {
		cfg.LinkTTL = time.Hour
	}
	if cfg.DefaultContinueURL == "" {
		cfg.DefaultContinueURL = api.DefaultContinueURL
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &IdentityServiceImpl{
		users: users, links: links, lim: lim, mailer: mailer, hasher: hasher, cfg: cfg, now: time.Now,
	}
}

func normalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

// SignUp validates input and creates the account.
func (s *IdentityServiceImpl) SignUp(ctx context.Context, email, password string) (model.Tokens, model.User, error) {
	email = normalizeEmail(email)
	if err := validate.Login(email); err != nil {
		return model.Tokens{}, model.User{}, err
	}
	if err := validate.Password(password, password); err != nil {
		return model.Tokens{}, model.User{}, err
	}

	hash, salt, err := s.hasher.Hash(password)
	if err != nil {
		return model.Tokens{}, model.User{}, err
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return model.Tokens{}, model.User{}, err
	}
	u := &model.User{ID: uid, Email: email, PwdHash: hash, SaltAuth: salt}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return model.Tokens{}, model.User{}, errs.ErrEmailInUse
		}
		return model.Tokens{}, model.User{}, fmt.Errorf("create user: %w", err)
	}
	return s.signedIn(ctx, u)
}

// SignIn authenticates with rate limiting by (email, ip).
func (s *IdentityServiceImpl) SignIn(ctx context.Context, email, password, ip string) (model.Tokens, model.User, error) {
	email = normalizeEmail(email)
	if !validate.Email(email) || password == "" {
		return model.Tokens{}, model.User{}, errs.ErrInvalidCredentials
	}
	subject, ipHash := limiter.Subject(limiter.ScopeSignIn, email), limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, subject, ipHash)
	if err != nil {
		return model.Tokens{}, model.User{}, err
	}
	if !allowed {
		return model.Tokens{}, model.User{}, errs.ErrRateLimited
	}

	u, err := s.users.GetByEmail(ctx, email)
	var failure error
	switch {
	case errors.Is(err, errs.ErrNotFound):
		failure = errs.ErrUserNotFound
	case err != nil:
		return model.Tokens{}, model.User{}, err
	case !u.HasPassword():
		failure = errs.ErrInvalidCredentials
	case !s.hasher.Verify(password, u.SaltAuth, u.PwdHash):
		failure = errs.ErrWrongPassword
	}
	if failure != nil {
		// threshold reached on this attempt -> rate-limited
		blocked, _, ferr := s.lim.Failure(ctx, subject, ipHash)
		if ferr != nil {
			s.cfg.Logger.Warn("record sign-in failure", zap.Error(ferr))
		}
		if blocked {
			return model.Tokens{}, model.User{}, errs.ErrRateLimited
		}
		return model.Tokens{}, model.User{}, failure
	}

	if err := s.lim.Success(ctx, subject, ipHash); err != nil {
		s.cfg.Logger.Warn("reset sign-in attempts", zap.Error(err))
	}
	return s.signedIn(ctx, u)
}

// SendSignInLink stores a hashed one-time token and mails the link.
func (s *IdentityServiceImpl) SendSignInLink(ctx context.Context, email, continueURL, ip string) error {
	email = normalizeEmail(email)
	if err := validate.Login(email); err != nil {
		return err
	}
	if continueURL == "" {
		continueURL = s.cfg.DefaultContinueURL
	}

	subject, ipHash := limiter.Subject(limiter.ScopeLink, email), limiter.HashIP(ip)
	allowed, _, err := s.lim.Allow(ctx, subject, ipHash)
	if err != nil {
		return err
	}
	if !allowed {
		return errs.ErrRateLimited
	}
	// every request counts against the window
	if _, _, err := s.lim.Failure(ctx, subject, ipHash); err != nil {
		s.cfg.Logger.Warn("record sign-in link request", zap.Error(err))
	}

	tok, hash, err := pkgcrypto.NewLinkToken()
	if err != nil {
		return err
	}
	link, err := api.BuildSignInLink(continueURL, tok)
	if err != nil {
		return fmt.Errorf("%w: continue url: %v", errs.ErrValidation, err)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	rec := &model.SignInLink{
		ID: id, Email: email, TokenHash: hash, ContinueURL: continueURL,
		ExpiresAt: s.now().Add(s.cfg.LinkTTL),
	}
	if err := s.links.Create(ctx, rec); err != nil {
		return fmt.Errorf("store link: %w", err)
	}
	if err := s.mailer.SendSignInLink(ctx, email, link); err != nil {
		return fmt.Errorf("send link: %w", err)
	}
	return nil
}

// CompleteSignInWithLink consumes the link for email.
func (s *IdentityServiceImpl) CompleteSignInWithLink(ctx context.Context, email, link string) (model.Tokens, model.User, error) {
	email = normalizeEmail(email)
	code, ok := api.ParseSignInLink(link)
	if !ok || email == "" {
		return model.Tokens{}, model.User{}, errs.ErrInvalidLink
	}
	if _, err := s.links.Consume(ctx, pkgcrypto.HashToken(code), email, s.now()); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Tokens{}, model.User{}, errs.ErrInvalidLink
		}
		return model.Tokens{}, model.User{}, err
	}

	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrNotFound) {
		u, err = s.createPasswordless(ctx, email)
	}
	if err != nil {
		return model.Tokens{}, model.User{}, err
	}
	return s.signedIn(ctx, u)
}

func (s *IdentityServiceImpl) createPasswordless(ctx context.Context, email string) (*model.User, error) {
	uid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	u := &model.User{ID: uid, Email: email}
	err = s.users.Create(ctx, u)
	if errors.Is(err, errs.ErrAlreadyExists) {
		// lost a race with a concurrent completion
		return s.users.GetByEmail(ctx, email)
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *IdentityServiceImpl) signedIn(ctx context.Context, u *model.User) (model.Tokens, model.User, error) {
	now := s.now()
	_ = s.users.TouchSignIn(ctx, u.ID, now)
	u.LastSignInAt = &now

	tok, err := s.issueIDToken(u, now)
	if err != nil {
		return model.Tokens{}, model.User{}, err
	}
	return tok, *u, nil
}

// issueIDToken creates a signed HS256 JWT for the user.
func (s *IdentityServiceImpl) issueIDToken(u *model.User, now time.Time) (model.Tokens, error) {
	exp := now.Add(s.cfg.TokenTTL)
	claims := IDClaims{
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.SignKey)
	if err != nil {
		return model.Tokens{}, err
	}
	return model.Tokens{IDToken: signed, ExpiresAt: exp}, nil
}
