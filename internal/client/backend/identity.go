package backend

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc"

	pb "github.com/and161185/micromuu/gen/go/micromuu/v1"
	"github.com/and161185/micromuu/internal/convert"
	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
)

// IdentityAPI is the remote identity provider.
type IdentityAPI struct{ c pb.IdentityServiceClient }

// NewIdentityAPI returns an IdentityAPI over cc.
func NewIdentityAPI(cc grpc.ClientConnInterface) *IdentityAPI {
	return &IdentityAPI{c: pb.NewIdentityServiceClient(cc)}
}

// sessionResponse is every identity reply that signs a rancher in.
type sessionResponse interface {
	GetSession() *pb.Session
}

func identity(resp sessionResponse, err error, mapErr func(error) error) (*model.Identity, error) {
	if err != nil {
		return nil, mapErr(err)
	}
	id, err := convert.FromProtoSession(resp.GetSession())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrSignIn, err)
	}
	return id, nil
}

// SignUp creates a password account.
func (a *IdentityAPI) SignUp(ctx context.Context, email, password string) (*model.Identity, error) {
	req := &pb.SignUpRequest{}
	req.SetEmail(email)
	req.SetPassword(password)
	resp, err := a.c.SignUp(ctx, req)
	return identity(resp, err, func(err error) error {
		mapped := providerError(err)
		if isAny(mapped, errs.ErrEmailInUse, errs.ErrValidation) {
			return mapped
		}
		return fmt.Errorf("%w: %w", errs.ErrSignIn, mapped)
	})
}

// SignIn signs in with a password.
func (a *IdentityAPI) SignIn(ctx context.Context, email, password string) (*model.Identity, error) {
	req := &pb.SignInRequest{}
	req.SetEmail(email)
	req.SetPassword(password)
	resp, err := a.c.SignIn(ctx, req)
	return identity(resp, err, func(err error) error {
		mapped := providerError(err)
		switch {
		case isAny(mapped, errs.ErrInvalidCredentials, errs.ErrUserNotFound, errs.ErrWrongPassword):
			return mapped
		case errors.Is(mapped, errs.ErrValidation):
			return errs.ErrInvalidCredentials
		}
		return fmt.Errorf("%w: %w", errs.ErrSignIn, mapped)
	})
}

// SendSignInLink asks the provider to mail a sign-in link.
func (a *IdentityAPI) SendSignInLink(ctx context.Context, email, continueURL string) error {
	req := &pb.SendSignInLinkRequest{}
	req.SetEmail(email)
	req.SetContinueUrl(continueURL)
	if _, err := a.c.SendSignInLink(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrAuthRequest, providerError(err))
	}
	return nil
}

// CompleteSignInWithLink redeems a sign-in link.
func (a *IdentityAPI) CompleteSignInWithLink(ctx context.Context, email, link string) (*model.Identity, error) {
	req := &pb.CompleteSignInWithLinkRequest{}
	req.SetEmail(email)
	req.SetLink(link)
	resp, err := a.c.CompleteSignInWithLink(ctx, req)
	return identity(resp, err, func(err error) error {
		return fmt.Errorf("%w: %w", errs.ErrSignIn, providerError(err))
	})
}
