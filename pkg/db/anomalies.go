package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

const anomalySelect = `
SELECT
	id,
	device_id,
	timestamp,
	anomaly_type,
	reason,
	severity,
	resolved
FROM anomalies`

// InsertAnomaly persists an anomaly event in the unresolved state.
func (db *DB) InsertAnomaly(ctx context.Context, event *models.AnomalyEvent) (*models.AnomalyEvent, error) {
	stored := *event
	stored.Resolved = false

	err := db.pool.QueryRow(ctx, `
INSERT INTO anomalies (device_id, timestamp, anomaly_type, reason, severity, resolved)
VALUES ($1, $2, $3, $4, $5, false)
RETURNING id, timestamp`,
		event.DeviceID,
		event.Timestamp.UTC(),
		event.AnomalyType,
		event.Reason,
		string(event.Severity),
	).Scan(&stored.ID, &stored.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("%w: anomaly for %s: %s", ErrFailedToInsert, event.DeviceID, err)
	}

	return &stored, nil
}

// GetAnomaly returns one anomaly event by id.
func (db *DB) GetAnomaly(ctx context.Context, id int64) (*models.AnomalyEvent, error) {
	row := db.pool.QueryRow(ctx, anomalySelect+` WHERE id = $1`, id)

	event, err := scanAnomaly(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAnomalyNotFound
		}

		return nil, fmt.Errorf("%w: anomaly %d: %s", ErrFailedToQuery, id, err)
	}

	return event, nil
}

// ListAnomalies returns anomaly events matching the filter, newest first.
func (db *DB) ListAnomalies(ctx context.Context, filter AnomalyFilter) ([]models.AnomalyEvent, error) {
	query := anomalySelect + ` WHERE timestamp >= $1`
	args := []interface{}{filter.Since.UTC()}

	if filter.DeviceID != "" {
		args = append(args, filter.DeviceID)
		query += fmt.Sprintf(` AND device_id = $%d`, len(args))
	}

	if filter.Resolved != nil {
		args = append(args, *filter.Resolved)
		query += fmt.Sprintf(` AND resolved = $%d`, len(args))
	}

	query += ` ORDER BY timestamp DESC`

	args = append(args, filter.Limit)
	query += fmt.Sprintf(` LIMIT $%d`, len(args))

	args = append(args, filter.Offset)
	query += fmt.Sprintf(` OFFSET $%d`, len(args))

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: anomalies: %s", ErrFailedToQuery, err)
	}
	defer rows.Close()

	var events []models.AnomalyEvent

	for rows.Next() {
		event, err := scanAnomaly(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: anomaly row: %s", ErrFailedToScan, err)
		}

		events = append(events, *event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: anomalies: %s", ErrFailedToQuery, err)
	}

	return events, nil
}

// ResolveAnomaly marks an anomaly resolved. Resolving an already-resolved
// anomaly succeeds and leaves it resolved.
func (db *DB) ResolveAnomaly(ctx context.Context, id int64) (*models.AnomalyEvent, error) {
	row := db.pool.QueryRow(ctx, `
UPDATE anomalies
SET resolved = true
WHERE id = $1
RETURNING id, device_id, timestamp, anomaly_type, reason, severity, resolved`, id)

	event, err := scanAnomaly(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAnomalyNotFound
		}

		return nil, fmt.Errorf("%w: resolve anomaly %d: %s", ErrFailedToUpdate, id, err)
	}

	return event, nil
}

func scanAnomaly(row pgx.Row) (*models.AnomalyEvent, error) {
	var (
		event    models.AnomalyEvent
		severity string
	)

	if err := row.Scan(
		&event.ID,
		&event.DeviceID,
		&event.Timestamp,
		&event.AnomalyType,
		&event.Reason,
		&severity,
		&event.Resolved,
	); err != nil {
		return nil, err
	}

	event.Severity = models.Severity(severity)

	return &event, nil
}
