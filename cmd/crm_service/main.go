package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/akimovv/SessionBooker/internal/clock"
	"github.com/akimovv/SessionBooker/internal/config"
	"github.com/akimovv/SessionBooker/internal/crm"
	"github.com/wb-go/wbf/logger"
)

func main() {
	cfg := config.MustLoadCRMService()

	lg, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"CRMService",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	store, err := crm.NewStore(cfg.StorePath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	server := crm.NewServer(store, cfg.AuthToken, clock.NewSystem(), lg)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.Router(cfg.Gin.Mode),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		lg.LogAttrs(ctx, logger.InfoLevel, "CRM service starting",
			logger.String("addr", httpServer.Addr),
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		lg.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		log.Fatalf("crm service: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.WriteTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	lg.Info("CRM service stopped")
}
