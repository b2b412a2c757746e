package db

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

const defaultPostgresPort = 5432

// NewPool dials the configured Postgres cluster and returns a pgx pool used
// for all reads and writes.
func NewPool(ctx context.Context, cfg *models.DatabaseConfig) (*pgxpool.Pool, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: missing database configuration", ErrFailedOpenDB)
	}

	conf := *cfg
	if conf.Port == 0 {
		conf.Port = defaultPostgresPort
	}

	connURL := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", conf.Host, conf.Port),
		Path:   "/" + conf.Database,
	}

	if conf.Username != "" {
		if conf.Password != "" {
			connURL.User = url.UserPassword(conf.Username, conf.Password)
		} else {
			connURL.User = url.User(conf.Username)
		}
	}

	query := connURL.Query()

	sslMode := conf.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	query.Set("sslmode", sslMode)

	if conf.ApplicationName != "" {
		query.Set("application_name", conf.ApplicationName)
	}

	for k, v := range conf.ExtraRuntimeParams {
		if k == "" {
			continue
		}

		query.Set(k, v)
	}

	connURL.RawQuery = query.Encode()

	poolConfig, err := pgxpool.ParseConfig(connURL.String())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse connection string: %s", ErrFailedOpenDB, err)
	}

	if conf.MaxConnections > 0 {
		poolConfig.MaxConns = conf.MaxConnections
	}

	if conf.MinConnections > 0 {
		poolConfig.MinConns = conf.MinConnections
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFailedOpenDB, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: ping failed: %s", ErrFailedOpenDB, err)
	}

	return pool, nil
}
