// Command server runs the Mergington High School activities API.
//
// @title Mergington High School API
// @version 1.0
// @description API for viewing and signing up for extracurricular activities
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"mergington/config"
	"mergington/internal/adapters/email"
	"mergington/internal/adapters/seed"
	deliveryhttp "mergington/internal/delivery/http"
	"mergington/internal/delivery/http/controllers"
	"mergington/internal/metrics"
	"mergington/internal/repository/memory"
	"mergington/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	activities, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	repo, err := memory.NewSeededActivityRepository(ctx, activities)
	if err != nil {
		return err
	}
	logger.Info("catalog seeded", "activities", len(activities), "seed_file", cfg.SeedFile)

	mailer, err := email.NewMailer(logger, email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mail.AWSRegion,
			AccessKeyID:        cfg.Mail.AWSAccessKeyID,
			SecretAccessKey:    cfg.Mail.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Mail.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	emailService := services.NewEmailService(logger, mailer, email.NewTemplateRenderer())

	collector := metrics.New(prometheus.DefaultRegisterer)
	activityService := services.NewActivityService(logger, repo, collector)
	signups := services.NewSignupCoordinator(logger, repo, emailService, collector)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: deliveryhttp.NewRouter(deliveryhttp.RouterDeps{
			Logger:             logger,
			Activities:         controllers.NewActivityController(logger, activityService, signups),
			Metrics:            collector,
			MetricsHandler:     promhttp.Handler(),
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		signups.Wait()
		return nil
	})
	return g.Wait()
}
