package grpcserver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/and161185/micromuu/internal/service"
)

// Verifier checks ID tokens issued by the identity service.
type Verifier struct {
	signKey []byte
}

// NewVerifier returns a Verifier for HS256 tokens signed with key.
func NewVerifier(key []byte) *Verifier { return &Verifier{signKey: key} }

// verify reads "authorization: Bearer <JWT>", checks the HS256 signature and
// returns the subject as the caller.
func (v *Verifier) verify(ctx context.Context) (Caller, error) {
	tok, err := bearerTokenFromMD(ctx)
	if err != nil {
		return Caller{}, err
	}

	var claims service.IDClaims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return v.signKey, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return Caller{}, errors.New("invalid token")
	}

	val := jwt.NewValidator(jwt.WithLeeway(30*time.Second), jwt.WithIssuer(service.TokenIssuer), jwt.WithExpirationRequired())
	if err := val.Validate(&claims); err != nil {
		return Caller{}, errors.New("token expired or not valid yet")
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return Caller{}, errors.New("bad subject")
	}
	return Caller{ID: id, Email: claims.Email}, nil
}

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("no metadata")
	}
	for _, v := range md.Get("authorization") {
		v = strings.TrimSpace(v)
		if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
			t := strings.TrimSpace(v[7:])
			if t != "" {
				return t, nil
			}
		}
	}
	return "", errors.New("no bearer token")
}

// AuthUnary requires a valid bearer token on every method outside the
// public prefixes and stores the Caller in the context.
func AuthUnary(v *Verifier, public ...string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		for _, p := range public {
			if strings.HasPrefix(info.FullMethod, p) {
				return next(ctx, req)
			}
		}
		c, err := v.verify(ctx)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "no auth")
		}
		return next(WithCaller(ctx, c), req)
	}
}
