package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/newsletter/internal/api/handlers/health"
	"github.com/aliskhannn/newsletter/internal/api/handlers/subscription"
	"github.com/aliskhannn/newsletter/internal/api/router"
	"github.com/aliskhannn/newsletter/internal/api/server"
	"github.com/aliskhannn/newsletter/internal/config"
	subscriptionrepo "github.com/aliskhannn/newsletter/internal/repository/subscription"
	subscriptionsvc "github.com/aliskhannn/newsletter/internal/service/subscription"
	"github.com/aliskhannn/newsletter/pkg/email"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must("./config")
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := dbpg.New(cfg.Database.DSN(), nil, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	err = retry.Do(func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return db.Master.PingContext(pingCtx)
	}, cfg.Startup.Retry)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("database is unreachable")
	}

	sender, err := newSender(cfg.EmailClient)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create email client")
	}

	confirmation, err := subscriptionsvc.NewConfirmation()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse confirmation templates")
	}

	repo := subscriptionrepo.NewRepository(db, zlog.Logger)
	service := subscriptionsvc.NewService(repo, sender, confirmation, zlog.Logger)
	subscriptionHandler := subscription.NewHandler(service, val, zlog.Logger)

	r := router.New(subscriptionHandler, health.NewHandler())
	s := server.New(cfg.Server.Addr(), r)

	go func() {
		zlog.Logger.Info().Str("addr", s.Addr).Msg("starting server")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close database")
	}
}

// newSender builds the email transport selected in the configuration.
func newSender(cfg config.EmailClient) (email.Sender, error) {
	sender, err := cfg.Sender()
	if err != nil {
		return nil, err
	}

	if cfg.Transport == config.TransportSMTP {
		return email.NewSMTPClient(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, sender, cfg.Timeout()), nil
	}

	return email.NewClient(cfg.BaseURL, sender, cfg.APIKey, cfg.Timeout()), nil
}
