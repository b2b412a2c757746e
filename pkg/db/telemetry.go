package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

const telemetrySelect = `
SELECT
	id,
	device_id,
	timestamp,
	temperature,
	battery,
	signal_strength,
	cpu_usage,
	memory_usage,
	disk_usage
FROM telemetry`

// InsertTelemetry persists one sample and returns it with the assigned id
// and timestamp.
func (db *DB) InsertTelemetry(ctx context.Context, sample *models.TelemetrySample) (*models.TelemetrySample, error) {
	stored := *sample

	err := db.pool.QueryRow(ctx, `
INSERT INTO telemetry (device_id, timestamp, temperature, battery, signal_strength, cpu_usage, memory_usage, disk_usage)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, timestamp`,
		sample.DeviceID,
		sample.Timestamp.UTC(),
		sample.Temperature,
		sample.Battery,
		sample.SignalStrength,
		sample.CPUUsage,
		sample.MemoryUsage,
		sample.DiskUsage,
	).Scan(&stored.ID, &stored.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("%w: telemetry for %s: %s", ErrFailedToInsert, sample.DeviceID, err)
	}

	return &stored, nil
}

// ListTelemetry returns samples matching the filter, newest first.
func (db *DB) ListTelemetry(ctx context.Context, filter TelemetryFilter) ([]models.TelemetrySample, error) {
	query := telemetrySelect + ` WHERE timestamp >= $1`
	args := []interface{}{filter.Since.UTC()}

	if filter.DeviceID != "" {
		args = append(args, filter.DeviceID)
		query += fmt.Sprintf(` AND device_id = $%d`, len(args))
	}

	query += ` ORDER BY timestamp DESC`

	args = append(args, filter.Limit)
	query += fmt.Sprintf(` LIMIT $%d`, len(args))

	args = append(args, filter.Offset)
	query += fmt.Sprintf(` OFFSET $%d`, len(args))

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: telemetry: %s", ErrFailedToQuery, err)
	}
	defer rows.Close()

	return gatherTelemetry(rows)
}

// GetLatestTelemetry returns the most recent sample for a device.
func (db *DB) GetLatestTelemetry(ctx context.Context, deviceID string) (*models.TelemetrySample, error) {
	row := db.pool.QueryRow(ctx,
		telemetrySelect+` WHERE device_id = $1 ORDER BY timestamp DESC LIMIT 1`, deviceID)

	sample, err := scanTelemetry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTelemetryNotFound
		}

		return nil, fmt.Errorf("%w: latest telemetry for %s: %s", ErrFailedToQuery, deviceID, err)
	}

	return sample, nil
}

func gatherTelemetry(rows pgx.Rows) ([]models.TelemetrySample, error) {
	var samples []models.TelemetrySample

	for rows.Next() {
		sample, err := scanTelemetry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: telemetry row: %s", ErrFailedToScan, err)
		}

		samples = append(samples, *sample)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: telemetry: %s", ErrFailedToQuery, err)
	}

	return samples, nil
}

func scanTelemetry(row pgx.Row) (*models.TelemetrySample, error) {
	var sample models.TelemetrySample

	if err := row.Scan(
		&sample.ID,
		&sample.DeviceID,
		&sample.Timestamp,
		&sample.Temperature,
		&sample.Battery,
		&sample.SignalStrength,
		&sample.CPUUsage,
		&sample.MemoryUsage,
		&sample.DiskUsage,
	); err != nil {
		return nil, err
	}

	return &sample, nil
}
