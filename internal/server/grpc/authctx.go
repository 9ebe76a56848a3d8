package grpcserver

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Caller is the rancher behind a verified ID token.
type Caller struct {
	ID    uuid.UUID
	Email string // from the email claim; may be empty
}

type callerKey struct{}

// WithCaller attaches c to ctx.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFrom returns the caller stored by AuthUnary. A nil id never counts.
func CallerFrom(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(Caller)
	return c, ok && c.ID != uuid.Nil
}

func callerID(ctx context.Context) (uuid.UUID, error) {
	c, ok := CallerFrom(ctx)
	if !ok {
		return uuid.Nil, status.Error(codes.Unauthenticated, "no auth")
	}
	return c.ID, nil
}
