package backend

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/and161185/micromuu/internal/api"
	"github.com/and161185/micromuu/internal/errs"
)

// fromStatus maps a document service status back onto a sentinel.
func fromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.NotFound:
		return errs.ErrNotFound
	case codes.AlreadyExists:
		return errs.ErrAlreadyExists
	case codes.Unauthenticated:
		return errs.ErrUnauthorized
	case codes.PermissionDenied:
		return errs.ErrForbidden
	case codes.ResourceExhausted:
		return errs.ErrRateLimited
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", errs.ErrValidation, st.Message())
	case codes.FailedPrecondition:
		return errs.ErrInvalidLink
	case codes.Canceled:
		return context.Canceled
	case codes.DeadlineExceeded:
		return context.DeadlineExceeded
	default:
		return fmt.Errorf("rpc %s: %s", st.Code(), st.Message())
	}
}

// providerError maps a provider code carried in the status message. Codes
// without a sentinel fall back to fromStatus.
func providerError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Message() {
	case api.CodeInvalidCredential:
		return errs.ErrInvalidCredentials
	case api.CodeUserNotFound:
		return errs.ErrUserNotFound
	case api.CodeWrongPassword:
		return errs.ErrWrongPassword
	case api.CodeEmailInUse:
		return errs.ErrEmailInUse
	case api.CodeTooManyRequests:
		return errs.ErrRateLimited
	case api.CodeInvalidActionCode:
		return errs.ErrInvalidLink
	case api.CodeWeakPassword, api.CodeInvalidEmail, api.CodeArgumentError:
		return fmt.Errorf("%w: %s", errs.ErrValidation, st.Message())
	}
	return fromStatus(err)
}

func isAny(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
