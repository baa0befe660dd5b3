package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"fintrack/internal/amqp"
	"fintrack/internal/auth"
	"fintrack/internal/config"
	apphttp "fintrack/internal/http"
	applog "fintrack/internal/log"
	"fintrack/internal/services"
	"fintrack/internal/storage"
)

func main() {
	// .env is optional, real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := applog.New(applog.Config{
		Level:     cfg.SlogLevel(),
		Component: applog.ComponentApp,
		Handler: slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		}),
	})
	applog.SetDefault(logger)

	repo, err := storage.NewRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open database", applog.FieldError, err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			// Event publishing is best effort, the API still works without it.
			logger.Warn("AMQP unavailable, ledger events disabled", applog.FieldError, err)
			amqpClient = nil
		} else {
			defer amqpClient.Close()
			logger.Info("AMQP event publishing enabled",
				"exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	issuer := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)
	authSvc := services.NewAuthService(repo, issuer, cfg.BcryptCost)
	ledgerSvc := services.NewLedgerService(repo, amqpClient)
	goalSvc := services.NewGoalService(repo)
	reportSvc := services.NewReportService(repo)

	port, _ := strconv.Atoi(cfg.Port)
	srv := apphttp.NewServer(port, authSvc, ledgerSvc, goalSvc, reportSvc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting server", "port", cfg.Port, "db", cfg.SQLiteDBPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
