// Package db implements Postgres-backed persistence for devices, telemetry
// samples, and anomaly events.
package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/logger"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

// DB wraps a pgx pool and implements Service.
type DB struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

// New dials the configured database, applies pending migrations, and returns
// a ready Service.
func New(ctx context.Context, cfg *models.DatabaseConfig, log logger.Logger) (*DB, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	database := &DB{
		pool:   pool,
		logger: log,
	}

	if err := database.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return database, nil
}

// Close releases the underlying connection pool.
func (db *DB) Close() {
	db.pool.Close()
}
