package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

const deviceSelect = `
SELECT
	id,
	device_id,
	name,
	lat,
	lng,
	status,
	last_seen,
	threshold_config,
	created_at,
	updated_at
FROM devices`

// GetDevice returns the device registered under deviceID.
func (db *DB) GetDevice(ctx context.Context, deviceID string) (*models.Device, error) {
	row := db.pool.QueryRow(ctx, deviceSelect+` WHERE device_id = $1`, deviceID)

	device, err := scanDevice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}

		return nil, fmt.Errorf("%w: device %s: %s", ErrFailedToQuery, deviceID, err)
	}

	return device, nil
}

// ListDevices returns all registered devices ordered by registration time.
func (db *DB) ListDevices(ctx context.Context) ([]models.Device, error) {
	rows, err := db.pool.Query(ctx, deviceSelect+` ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("%w: devices: %s", ErrFailedToQuery, err)
	}
	defer rows.Close()

	var devices []models.Device

	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: device row: %s", ErrFailedToScan, err)
		}

		devices = append(devices, *device)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: devices: %s", ErrFailedToQuery, err)
	}

	return devices, nil
}

// UpdateDeviceStatus sets the device's liveness state and last-seen time.
func (db *DB) UpdateDeviceStatus(
	ctx context.Context,
	deviceID string,
	status models.DeviceStatus,
	lastSeen time.Time,
) error {
	tag, err := db.pool.Exec(ctx, `
UPDATE devices
SET status = $2, last_seen = $3, updated_at = now()
WHERE device_id = $1`,
		deviceID, string(status), lastSeen.UTC())
	if err != nil {
		return fmt.Errorf("%w: device status %s: %s", ErrFailedToUpdate, deviceID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

func scanDevice(row pgx.Row) (*models.Device, error) {
	var (
		device        models.Device
		status        string
		thresholdJSON []byte
	)

	if err := row.Scan(
		&device.ID,
		&device.DeviceID,
		&device.Name,
		&device.Lat,
		&device.Lng,
		&status,
		&device.LastSeen,
		&thresholdJSON,
		&device.CreatedAt,
		&device.UpdatedAt,
	); err != nil {
		return nil, err
	}

	device.Status = models.DeviceStatus(status)

	if len(thresholdJSON) > 0 {
		var cfg models.ThresholdConfig
		if err := json.Unmarshal(thresholdJSON, &cfg); err != nil {
			return nil, err
		}

		device.ThresholdConfig = &cfg
	}

	return &device, nil
}
