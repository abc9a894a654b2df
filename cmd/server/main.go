package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/auditra/auditra/application/port/outbound"
	"github.com/auditra/auditra/application/usecase/activitylog"
	"github.com/auditra/auditra/infrastructure/config"
	"github.com/auditra/auditra/infrastructure/http/handler"
	"github.com/auditra/auditra/infrastructure/http/middleware"
	"github.com/auditra/auditra/infrastructure/persistence/postgres"
	"github.com/auditra/auditra/infrastructure/persistence/record"
	"github.com/auditra/auditra/infrastructure/persistence/redis"
	"github.com/auditra/auditra/infrastructure/service/jwt"
	"github.com/auditra/auditra/infrastructure/service/logger"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize structured logger
	structuredLogger := logger.NewStructuredLogger(logger.LoggerConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "auditra",
	})
	structuredLogger.Info(ctx, "Application starting", map[string]interface{}{
		"env":     cfg.Environment,
		"backend": cfg.StoreBackend,
	})

	// Initialize the key-value persistence backend
	kv, cleanup, err := newKVStore(ctx, cfg)
	if err != nil {
		structuredLogger.Error(ctx, "Failed to initialize store backend", err, map[string]interface{}{
			"backend": cfg.StoreBackend,
		})
		log.Fatalf("Failed to initialize store backend: %v", err)
	}
	defer cleanup()

	recordStore := record.NewStore(kv)

	// Initialize the activity log session (seeds an empty store)
	activityLogUseCase, err := activitylog.NewActivityLogUseCase(ctx, recordStore, cfg.SeedOnStart)
	if err != nil {
		structuredLogger.Error(ctx, "Failed to load activity log", err, nil)
		log.Fatalf("Failed to load activity log: %v", err)
	}

	// Initialize services and middleware
	tokenService, err := jwt.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL)
	if err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Initialize handlers and routes
	activityHandler := handler.NewActivityHandler(activityLogUseCase, authMiddleware)

	router := mux.NewRouter()
	activityHandler.RegisterRoutes(router)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status":"healthy"}`)
	}).Methods("GET")

	// Compose middleware: correlation ID, request logging, recovery
	var rootHandler http.Handler = router
	rootHandler = middleware.Recovery(structuredLogger)(rootHandler)
	rootHandler = middleware.RequestLogging(structuredLogger)(rootHandler)
	rootHandler = middleware.CorrelationIDMiddleware(rootHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:      rootHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		structuredLogger.Info(ctx, "Starting server", map[string]interface{}{
			"host": cfg.ServerHost,
			"port": cfg.ServerPort,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			structuredLogger.Error(ctx, "Server failed to start", err, map[string]interface{}{
				"host": cfg.ServerHost,
				"port": cfg.ServerPort,
			})
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	structuredLogger.Info(ctx, "Shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		structuredLogger.Error(ctx, "Server forced to shutdown", err, nil)
	}

	structuredLogger.Info(ctx, "Server exited", nil)
}

// newKVStore builds the configured persistence backend and returns it
// with its teardown function.
func newKVStore(ctx context.Context, cfg *config.Config) (outbound.KVStore, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}

		if err := postgres.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgres.NewKVStore(db), func() { db.Close() }, nil

	default:
		kv, err := redis.NewKVStore(cfg.RedisURL, logrus.New())
		if err != nil {
			return nil, nil, err
		}
		return kv, func() {}, nil
	}
}
