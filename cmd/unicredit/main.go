package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/playmixer/unicredit/internal/adapters/api/rest"
	"github.com/playmixer/unicredit/internal/adapters/logger"
	"github.com/playmixer/unicredit/internal/adapters/media"
	"github.com/playmixer/unicredit/internal/adapters/metrics"
	"github.com/playmixer/unicredit/internal/adapters/otp"
	"github.com/playmixer/unicredit/internal/adapters/store"
	"github.com/playmixer/unicredit/internal/core/config"
	"github.com/playmixer/unicredit/internal/core/ledger"
	"github.com/playmixer/unicredit/internal/core/marketplace"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("failed initilize config: %w", err)
	}
	if err := config.ParseFlags(cfg, os.Args[1:]); err != nil {
		return err
	}

	lgr, err := logger.New(cfg.LogLevel, logger.OutputPath(cfg.LogPath))
	if err != nil {
		return fmt.Errorf("failed initialize logger: %w", err)
	}
	defer func() { _ = lgr.Sync() }()

	storage, err := store.New(ctx, cfg.Store, lgr)
	if err != nil {
		return fmt.Errorf("failed initilize storage: %w", err)
	}
	defer func() {
		if err := storage.CloseDB(); err != nil {
			lgr.Error("failed close database", zap.Error(err))
		}
	}()

	m := metrics.New()
	engine := ledger.New(ledger.Logger(lgr), ledger.Metrics(m))

	codes, err := otp.New(ctx, cfg.OTP, lgr)
	if err != nil {
		return fmt.Errorf("failed initialize otp store: %w", err)
	}
	dispatcher := otp.NewDispatcher(ctx, cfg.OTP, otp.Logger(lgr))
	defer func() {
		cancel()
		dispatcher.Wait()
	}()

	videos, err := media.New(cfg.Media, lgr)
	if err != nil {
		return fmt.Errorf("failed initialize media store: %w", err)
	}

	mart := marketplace.New(
		cfg.Marketplace,
		storage,
		marketplace.Logger(lgr),
		marketplace.Ledger(engine),
		marketplace.Codes(codes),
		marketplace.OTPSender(dispatcher),
		marketplace.MediaStore(videos),
	)

	options := []rest.Option{
		rest.Configure(cfg.Rest),
		rest.Logger(lgr),
		rest.Metrics(m),
	}
	if cfg.Media.UploadURL == "" {
		options = append(options, rest.MediaDir(cfg.Media.Dir))
	}
	server, err := rest.New(mart, options...)
	if err != nil {
		return fmt.Errorf("failed initialize rest server: %w", err)
	}

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("stop server, %w", err)
	}
	return nil
}
