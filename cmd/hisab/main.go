package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hisab/internal/backend"
	"hisab/internal/config"
	"hisab/internal/core"
	apphttp "hisab/internal/http"
	"hisab/internal/ledger"
	applog "hisab/internal/log"
	"hisab/internal/notify"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.NewFromEnv(applog.ComponentApp)
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	result, err := backend.New(logger.Logger, backend.Config{
		Type:          backend.Type(cfg.DataBackend),
		SQLiteDBPath:  cfg.SQLiteDBPath,
		DataDirectory: cfg.DataDirectory,
	})
	if err != nil {
		logger.Error("Failed to initialize storage backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Storage cleanup error", "error", err)
			}
		}()
	}

	// Change notifications are optional; without a broker the API still
	// works, only the spreadsheet mirror goes stale.
	var notifiers []ledger.ChangeNotifier
	if cfg.AMQPURL != "" {
		notifyClient, err := notify.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without change notifications", "error", err)
		} else {
			defer notifyClient.Close()
			notifiers = append(notifiers, notifyClient)
			logger.Info("Initialized AMQP client",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ledgers := &ledger.Set{}
	for _, category := range core.Categories() {
		l, err := ledger.Open(ctx, category, result.Store, notifiers...)
		if err != nil {
			if l == nil {
				logger.Error("Failed to open ledger", "error", err, "category", category)
				os.Exit(1)
			}
			logger.Warn("Opened ledger with unreadable persisted state, starting empty",
				"error", err, "category", category)
		}
		switch category {
		case core.CategoryPersonal:
			ledgers.Personal = l
		case core.CategoryBusiness:
			ledgers.Business = l
		}
		logger.Info("Opened ledger", "category", category, "transactions", l.Count())
	}

	srv := apphttp.NewServer(":"+cfg.Port, ledgers, cfg.RateLimitPerMinute)

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting hisab server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
