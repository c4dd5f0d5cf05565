package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/murkotick/catalog-admin/internal/bootstrap"
	"github.com/murkotick/catalog-admin/internal/config"
	"github.com/murkotick/catalog-admin/internal/pkg/clock"
	"github.com/murkotick/catalog-admin/internal/pkg/logger"
	"github.com/murkotick/catalog-admin/internal/transport/grpc/interceptors"
	grpcproduct "github.com/murkotick/catalog-admin/internal/transport/grpc/product"
	"github.com/murkotick/catalog-admin/internal/transport/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logrus.Fatalf("logger: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Info("shutdown signal received")
		cancel()
	}()

	store, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("open store")
	}
	defer store.Close()

	a, err := bootstrap.NewApp(cfg, store, clock.RealClock{}, log)
	if err != nil {
		log.WithError(err).Fatal("assemble application")
	}
	if err := a.Seed.EnsureBootstrapState(ctx); err != nil {
		log.WithError(err).Fatal("seed identity store")
	}

	// gRPC server
	grpcSrv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		interceptors.UnaryLogging(log),
		interceptors.UnaryAuth(a.Tokens, a.Gate, grpcproduct.Operations, grpcproduct.PublicMethods),
	))
	grpcproduct.RegisterCatalogAdminServer(grpcSrv, grpcproduct.NewHandler(a.Commands, a.Queries, a.Login, log))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.WithError(err).Fatalf("listen %s", cfg.GRPCAddr)
	}
	go func() {
		log.WithField("addr", cfg.GRPCAddr).Info("gRPC server listening")
		if err := grpcSrv.Serve(lis); err != nil {
			log.WithError(err).Error("grpc serve")
			cancel()
		}
	}()

	// HTTP server
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	httpSrv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: router.New(router.Deps{
			Commands: a.Commands,
			Queries:  a.Queries,
			Login:    a.Login,
			Gate:     a.Gate,
			Tokens:   a.Tokens,
			Log:      log,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("HTTP server listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("http serve")
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer stop()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("http shutdown")
	}

	stopped := make(chan struct{})
	go func() {
		grpcSrv.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		grpcSrv.Stop()
	}

	log.Info("server stopped")
}
