package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/dectab"
	"github.com/aretw0/dectab/internal/config"
	"github.com/aretw0/dectab/internal/logging"
	"github.com/aretw0/dectab/internal/presentation/tui"
	httpAdapter "github.com/aretw0/dectab/pkg/adapters/http"
	"github.com/aretw0/dectab/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/dectab/pkg/adapters/redis"
	"github.com/aretw0/dectab/pkg/domain"
	"github.com/aretw0/dectab/pkg/observability"
	"github.com/aretw0/dectab/pkg/persistence/middleware"
	"github.com/aretw0/dectab/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Starts the recognizer as an HTTP service with a table store.
Tables are kept in memory unless a Redis address is configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServeConfig(cmd)
			if err != nil {
				return err
			}
			level, err := logging.ParseLevel(cfg.Log.Level)
			if err != nil {
				return err
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler, closeStore, err := buildServer(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer closeStore()

			tui.PrintBanner(cmd.ErrOrStderr())
			return serveHTTP(ctx, fmt.Sprintf(":%d", cfg.Server.Port), handler, logger)
		},
	}
	cmd.Flags().String("config", "dectab.yaml", "Configuration file (YAML or JSON)")
	cmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides the configuration)")
	cmd.Flags().String("redis", "", "Redis address for the table store (overrides the configuration)")
	return cmd
}

// loadServeConfig loads the configuration file and applies flags set on the command line.
func loadServeConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("redis") {
		cfg.Redis.Addr, _ = cmd.Flags().GetString("redis")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	return cfg, cfg.Validate()
}

// buildServer wires the toolkit, the table store and metrics into the HTTP handler.
// The returned function releases the store.
func buildServer(ctx context.Context, cfg config.Config, logger *slog.Logger) (http.Handler, func() error, error) {
	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	tk := dectab.New(
		dectab.WithLogger(logger),
		dectab.WithMaxInputSize(cfg.Limits.MaxInputSize),
		dectab.WithLifecycleHooks(observability.ChainHooks(metrics.Hooks(), auditHooks(logger))),
	)

	handler, err := httpAdapter.NewHandler(tk, store,
		httpAdapter.WithLogger(logger),
		httpAdapter.WithMetrics(reg),
	)
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	return handler, closeStore, nil
}

// auditHooks logs every recognition outcome at info level.
func auditHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRecognized: func(_ context.Context, e *domain.RecognitionEvent) {
			logger.Info("Table recognized", "orientation", e.Orientation, "rules", e.RuleCount, "duration", e.Duration)
		},
		OnRejected: func(_ context.Context, e *domain.RecognitionEvent) {
			logger.Info("Table rejected", "size", e.InputSize, "error", e.Err)
		},
	}
}

// openStore selects the table store and wraps it with encryption when a key is configured.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (ports.TableStore, func() error, error) {
	var encrypt middleware.Middleware
	if cfg.Storage.EncryptionKey != "" {
		key, err := middleware.ParseKey(cfg.Storage.EncryptionKey)
		if err != nil {
			return nil, nil, err
		}
		encrypt = middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
		logger.Info("Encrypting stored tables at rest")
	}
	wrap := func(s ports.TableStore) ports.TableStore {
		if encrypt == nil {
			return s
		}
		return encrypt(s)
	}

	if cfg.Redis.Addr == "" {
		logger.Info("Using in-memory table store")
		return wrap(memory.NewStore()), func() error { return nil }, nil
	}

	store := redisAdapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
		redisAdapter.WithPrefix(cfg.Redis.Prefix),
		redisAdapter.WithTTL(cfg.Redis.TTL.Duration),
	)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}
	logger.Info("Using Redis table store", "addr", cfg.Redis.Addr, "prefix", cfg.Redis.Prefix)
	return wrap(store), store.Close, nil
}

// serveHTTP runs the server until ctx is cancelled, then shuts it down gracefully.
func serveHTTP(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting dectab server", "addr", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("Start shutdown")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		logger.Info("dectab server stopped gracefully")
		return nil
	}
}
