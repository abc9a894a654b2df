package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/auditra/auditra/application/port/outbound"
	"github.com/auditra/auditra/application/usecase/activitylog"
	"github.com/auditra/auditra/infrastructure/config"
	"github.com/auditra/auditra/infrastructure/persistence/postgres"
	"github.com/auditra/auditra/infrastructure/persistence/record"
	"github.com/auditra/auditra/infrastructure/persistence/redis"
)

// Seeds the configured backend with the fixed sample activity records.
// A no-op when the store already holds data.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var kv outbound.KVStore
	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect db: %v", err)
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("failed to ping db: %v", err)
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("failed to ensure schema: %v", err)
		}
		kv = postgres.NewKVStore(db)
	default:
		kv, err = redis.NewKVStore(cfg.RedisURL, logrus.New())
		if err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
	}

	records, err := activitylog.EnsureSeeded(ctx, record.NewStore(kv))
	if err != nil {
		log.Fatalf("failed to seed activity log: %v", err)
	}

	log.Printf("activity log ready: %d records", len(records))
}
