// Package grpcserver exposes the micromuu gRPC API handlers.
package grpcserver

import (
	"context"
	"net"

	pb "github.com/and161185/micromuu/gen/go/micromuu/v1"
	"github.com/and161185/micromuu/internal/convert"
	"github.com/and161185/micromuu/internal/service"
)

// IdentityHandler serves micromuu.v1.IdentityService. It needs no bearer token.
type IdentityHandler struct {
	pb.UnimplementedIdentityServiceServer
	svc        service.IdentityService
	onLinkSent func()
}

var _ pb.IdentityServiceServer = (*IdentityHandler)(nil)

// NewIdentityHandler wires the identity service. onLinkSent may be nil.
func NewIdentityHandler(svc service.IdentityService, onLinkSent func()) *IdentityHandler {
	if onLinkSent == nil {
		onLinkSent = func() {}
	}
	return &IdentityHandler{svc: svc, onLinkSent: onLinkSent}
}

// remoteIP returns the peer host without the port, so reconnects share a limiter bucket.
func remoteIP(ctx context.Context) string {
	addr := remoteAddr(ctx)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// SignUp creates a password account.
func (h *IdentityHandler) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {
	tok, u, err := h.svc.SignUp(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, identityStatus(err)
	}
	resp := &pb.SignUpResponse{}
	resp.SetSession(convert.ToProtoSession(tok, u))
	return resp, nil
}

// SignIn authenticates with a password.
func (h *IdentityHandler) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {
	tok, u, err := h.svc.SignIn(ctx, req.GetEmail(), req.GetPassword(), remoteIP(ctx))
	if err != nil {
		return nil, identityStatus(err)
	}
	resp := &pb.SignInResponse{}
	resp.SetSession(convert.ToProtoSession(tok, u))
	return resp, nil
}

// SendSignInLink mails a one-time link.
func (h *IdentityHandler) SendSignInLink(ctx context.Context, req *pb.SendSignInLinkRequest) (*pb.SendSignInLinkResponse, error) {
	if err := h.svc.SendSignInLink(ctx, req.GetEmail(), req.GetContinueUrl(), remoteIP(ctx)); err != nil {
		return nil, identityStatus(err)
	}
	h.onLinkSent()
	return &pb.SendSignInLinkResponse{}, nil
}

// CompleteSignInWithLink redeems a link.
func (h *IdentityHandler) CompleteSignInWithLink(ctx context.Context, req *pb.CompleteSignInWithLinkRequest) (*pb.CompleteSignInWithLinkResponse, error) {
	tok, u, err := h.svc.CompleteSignInWithLink(ctx, req.GetEmail(), req.GetLink())
	if err != nil {
		return nil, identityStatus(err)
	}
	resp := &pb.CompleteSignInWithLinkResponse{}
	resp.SetSession(convert.ToProtoSession(tok, u))
	return resp, nil
}
