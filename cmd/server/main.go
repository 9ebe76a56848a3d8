// Command micromuu-server starts the micromuu gRPC server.
//
// Usage:
//
//	micromuu-server [flags]
//	micromuu-server purge-user --email <address>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/and161185/micromuu/gen/go/micromuu/v1"
	pkgcrypto "github.com/and161185/micromuu/internal/crypto"
	"github.com/and161185/micromuu/internal/limiter"
	"github.com/and161185/micromuu/internal/mail"
	"github.com/and161185/micromuu/internal/metrics"
	grpcserver "github.com/and161185/micromuu/internal/server/grpc"
	"github.com/and161185/micromuu/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	if len(os.Args) > 1 && os.Args[1] == "purge-user" {
		err = purgeUser(ctx, os.Args[2:], logger)
	} else {
		err = serve(ctx, os.Args[1:], logger)
	}
	if err != nil {
		logger.Error("fatal", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// serve runs migrations and the gRPC server until ctx is done.
func serve(ctx context.Context, args []string, logger *zap.Logger) error {
	fs := flag.NewFlagSet("micromuu-server", flag.ExitOnError)
	c := bindServe(fs)
	_ = fs.Parse(args)

	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", c.addr),
		zap.String("store", c.store),
	)
	if c.jwtKey == "" {
		return errors.New("missing jwt signing key (--jwt-key)")
	}

	opts := []grpc.ServerOption{}
	if c.insecure {
		logger.Warn("serving plaintext (--insecure)")
		opts = append(opts, grpc.Creds(insecure.NewCredentials()))
	} else {
		creds, err := credentials.NewServerTLSFromFile(c.certFile, c.keyFile)
		if err != nil {
			return fmt.Errorf("load TLS cert/key: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}

	b, err := openBackends(ctx, c, logger)
	if err != nil {
		return err
	}
	defer b.close()

	m := metrics.New()
	lim := limiter.NewPG(b.db.Pool, limiter.Config{Window: c.limitWindow, MaxAttempts: c.limitAttempts, BlockFor: c.limitBlock})

	identity := service.NewIdentityService(b.users, b.links, lim, mail.NewLogSender(logger), pkgcrypto.NewHasher(pkgcrypto.DefaultArgon2), service.IdentityConfig{
		SignKey:            []byte(c.jwtKey),
		TokenTTL:           c.tokenTTL,
		LinkTTL:            c.linkTTL,
		DefaultContinueURL: c.continueURL,
		Logger:             logger,
	})
	profiles := service.NewProfileService(b.profiles)
	farms := service.NewFarmService(b.farms, b.images, c.maxImage)

	// a photo upload carries the whole image in one message
	opts = append(opts, grpc.MaxRecvMsgSize(c.maxImage+64<<10), grpc.ChainUnaryInterceptor(
		grpcserver.RecoverUnary(logger),
		grpcserver.LoggingUnary(logger),
		grpcserver.MetricsUnary(m),
		grpcserver.AuthUnary(grpcserver.NewVerifier([]byte(c.jwtKey)),
			"/"+pb.IdentityService_ServiceDesc.ServiceName+"/",
			"/grpc.health.v1.Health/",
			"/grpc.reflection."),
	))
	s := grpc.NewServer(opts...)
	pb.RegisterIdentityServiceServer(s, grpcserver.NewIdentityHandler(identity, m.LinksSent.Inc))
	pb.RegisterProfileServiceServer(s, grpcserver.NewProfilesHandler(profiles))
	pb.RegisterFarmServiceServer(s, grpcserver.NewFarmsHandler(farms))

	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if c.dev {
		reflection.Register(s)
	}

	var metricsSrv *http.Server
	if c.metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		metricsSrv = &http.Server{Addr: c.metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server", zap.Error(err))
			}
		}()
	}

	lis, err := net.Listen("tcp", c.addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", c.addr), zap.Bool("tls", !c.insecure))
		errCh <- s.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		hs.Shutdown()
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			s.Stop()
		}
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	}

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	logger.Info("shutdown complete")
	return nil
}

// purgeUser removes an account and everything it owns. Test tooling only.
func purgeUser(ctx context.Context, args []string, logger *zap.Logger) error {
	fs := flag.NewFlagSet("purge-user", flag.ExitOnError)
	c := &config{}
	bindStores(fs, c)
	email := fs.String("email", "", "account email (required)")
	_ = fs.Parse(args)
	if *email == "" {
		return errors.New("missing --email")
	}

	b, err := openBackends(ctx, c, logger)
	if err != nil {
		return err
	}
	defer b.close()

	p := service.NewPurger(b.users, b.profiles, b.farms, b.images, logger)
	return p.PurgeUser(ctx, *email)
}
