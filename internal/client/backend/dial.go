// Package backend holds the client stubs of the micromuu gRPC API with errors
// mapped back onto internal/errs sentinels.
package backend

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// DialConfig selects the server and its transport security.
type DialConfig struct {
	Addr               string
	CACert             string // PEM file; empty uses system roots
	InsecureSkipVerify bool
	Plaintext          bool
	Token              func() string // current ID token; empty means anonymous
}

type bearerCreds struct {
	token  func() string
	secure bool
}

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	if b.token == nil {
		return nil, nil
	}
	tok := b.token()
	if tok == "" {
		return nil, nil
	}
	return map[string]string{"authorization": "Bearer " + tok}, nil
}

func (b bearerCreds) RequireTransportSecurity() bool { return b.secure }

// LoadTLS builds client transport credentials.
func LoadTLS(caPath string, insecureSkipVerify bool) (credentials.TransportCredentials, error) {
	if insecureSkipVerify {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil //nolint:gosec // opt-in for self-signed dev servers
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}), nil
}

// DialOptions returns the transport and bearer options for cfg.
func DialOptions(cfg DialConfig) ([]grpc.DialOption, error) {
	var creds credentials.TransportCredentials
	if cfg.Plaintext {
		creds = insecure.NewCredentials()
	} else {
		var err error
		if creds, err = LoadTLS(cfg.CACert, cfg.InsecureSkipVerify); err != nil {
			return nil, err
		}
	}
	return []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithPerRPCCredentials(bearerCreds{token: cfg.Token, secure: !cfg.Plaintext}),
	}, nil
}

// Dial connects to cfg.Addr.
func Dial(ctx context.Context, cfg DialConfig, extra ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts, err := DialOptions(cfg)
	if err != nil {
		return nil, err
	}
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	return grpc.DialContext(ctx, cfg.Addr, append(opts, extra...)...)
}
