// Package db manages the optional relational backend. The API runs either
// against PostgreSQL or against the seeded in-memory store; this package
// only exists for the former, and its health ping feeds the degraded-mode
// flag on /health.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wealth-advisor/backend/config"
)

const (
	// connectPingTimeout bounds the reachability check at startup.
	connectPingTimeout = 5 * time.Second
	// healthPingTimeout bounds the per-request /health ping, which must
	// stay cheap even when the database is unreachable.
	healthPingTimeout = 2 * time.Second
)

// Database wraps the GORM connection to the relational backend.
type Database struct {
	db *gorm.DB
}

// NewPostgresConnection opens the relational backend, applies the pool
// limits from configuration, and verifies reachability before returning.
// Query logging stays off; request-level logging lives in the HTTP layer.
func NewPostgresConnection(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connectPingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Relational backend online",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
		"conn_max_lifetime", cfg.ConnMaxLifetime,
	)

	return &Database{db: db}, nil
}

// DB returns the underlying GORM handle for the repository layer.
func (d *Database) DB() *gorm.DB {
	return d.db
}

// HealthCheck reports whether the backend currently answers a ping. The
// result surfaces as "connected"/"disconnected" in the health endpoint;
// a false return degrades the report without failing the request.
func (d *Database) HealthCheck() bool {
	sqlDB, err := d.db.DB()
	if err != nil {
		slog.Error("Failed to get sql.DB for health check", "error", err)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthPingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		slog.Warn("Relational backend unreachable", "error", err)
		return false
	}
	return true
}

// Close releases the connection pool during shutdown.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	slog.Info("Relational backend closed")
	return nil
}

// AutoMigrate reconciles the schema for the given models. Ran once at
// startup over the six wealth-management tables.
func (d *Database) AutoMigrate(models ...interface{}) error {
	if err := d.db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}
