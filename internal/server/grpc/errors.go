package grpcserver

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/and161185/micromuu/internal/api"
	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/validate"
)

// toStatus maps service errors of the document services onto gRPC codes.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errs.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, errs.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, errs.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, "no auth")
	case errors.Is(err, errs.ErrForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.Is(err, errs.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, "rate limited")
	case errors.Is(err, errs.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errs.ErrInvalidLink):
		return status.Error(codes.FailedPrecondition, "invalid link")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		return status.Errorf(codes.Internal, "internal: %v", err)
	}
}

// identityStatus maps identity errors onto codes whose message is a stable
// provider code the client maps back.
func identityStatus(err error) error {
	var ve *validate.Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errs.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, api.CodeInvalidCredential)
	case errors.Is(err, errs.ErrUserNotFound):
		return status.Error(codes.NotFound, api.CodeUserNotFound)
	case errors.Is(err, errs.ErrWrongPassword):
		return status.Error(codes.Unauthenticated, api.CodeWrongPassword)
	case errors.Is(err, errs.ErrEmailInUse):
		return status.Error(codes.AlreadyExists, api.CodeEmailInUse)
	case errors.Is(err, errs.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, api.CodeTooManyRequests)
	case errors.Is(err, errs.ErrInvalidLink):
		return status.Error(codes.FailedPrecondition, api.CodeInvalidActionCode)
	case errors.As(err, &ve):
		if _, ok := ve.Fields[validate.FieldPassword]; ok {
			return status.Error(codes.InvalidArgument, api.CodeWeakPassword)
		}
		return status.Error(codes.InvalidArgument, api.CodeInvalidEmail)
	case errors.Is(err, errs.ErrValidation):
		return status.Error(codes.InvalidArgument, api.CodeArgumentError)
	default:
		return status.Error(codes.Internal, api.CodeInternal)
	}
}
