package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/spec-kit/mock-bank-api/internal/config"
	"github.com/spec-kit/mock-bank-api/internal/observability"
	"github.com/spec-kit/mock-bank-api/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	app := ui.New(cfg.UI, logger)

	go func() {
		logger.Info("mock UI listening",
			zap.String("addr", cfg.UI.Addr()),
			zap.String("publicDir", cfg.UI.PublicDir),
		)
		if err := app.Listen(cfg.UI.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))

	_ = app.Shutdown()
}
