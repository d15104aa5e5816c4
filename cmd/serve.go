package cmd

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

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/naveenraj/dairy-api/internal/auth"
	"github.com/naveenraj/dairy-api/internal/config"
	"github.com/naveenraj/dairy-api/internal/db"
	api "github.com/naveenraj/dairy-api/internal/http"
	"github.com/naveenraj/dairy-api/internal/http/guard"
	"github.com/naveenraj/dairy-api/internal/http/handlers"
	rl "github.com/naveenraj/dairy-api/internal/http/rate_limiter"
	"github.com/naveenraj/dairy-api/internal/repo"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dairy API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	defer database.Close()

	users := repo.NewPostgresUserRepository(database)
	handlers.SetUserRepo(users)
	handlers.SetEntryRepo(repo.NewPostgresEntryRepository(database))
	api.SetUserRepo(users)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	handlers.SetTokens(tokens)
	api.SetTokens(tokens)

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}
		defer rdb.Close()
		handlers.SetLoginGuard(guard.New(rdb, cfg.LoginMaxFailures, cfg.LoginLockout))
		slog.Info("login guard enabled", "addr", cfg.RedisAddr)
	}

	if cfg.RateLimitEnabled {
		go rl.StartVisitorCleanupLoop()
	}

	router := api.NewRouter(api.RouterConfig{
		AllowedOrigin: cfg.CORSAllowedOrigin,
		RateLimit:     cfg.RateLimitEnabled,
	})

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", cfg.ServerAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}
