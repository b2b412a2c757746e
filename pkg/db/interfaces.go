// Package db pkg/db/interfaces.go
package db

import (
	"context"
	"time"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

//go:generate mockgen -destination=mock_db.go -package=db github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/db Service

// TelemetryFilter narrows telemetry reads.
type TelemetryFilter struct {
	DeviceID string
	Since    time.Time
	Offset   int
	Limit    int
}

// AnomalyFilter narrows anomaly reads. A nil Resolved matches both states.
type AnomalyFilter struct {
	DeviceID string
	Resolved *bool
	Since    time.Time
	Offset   int
	Limit    int
}

// Service represents all database operations used by the core service.
type Service interface {
	Close()

	// Device operations.

	GetDevice(ctx context.Context, deviceID string) (*models.Device, error)
	ListDevices(ctx context.Context) ([]models.Device, error)
	UpdateDeviceStatus(ctx context.Context, deviceID string, status models.DeviceStatus, lastSeen time.Time) error

	// Telemetry operations.

	InsertTelemetry(ctx context.Context, sample *models.TelemetrySample) (*models.TelemetrySample, error)
	ListTelemetry(ctx context.Context, filter TelemetryFilter) ([]models.TelemetrySample, error)
	GetLatestTelemetry(ctx context.Context, deviceID string) (*models.TelemetrySample, error)

	// Anomaly operations.

	InsertAnomaly(ctx context.Context, event *models.AnomalyEvent) (*models.AnomalyEvent, error)
	GetAnomaly(ctx context.Context, id int64) (*models.AnomalyEvent, error)
	ListAnomalies(ctx context.Context, filter AnomalyFilter) ([]models.AnomalyEvent, error)
	ResolveAnomaly(ctx context.Context, id int64) (*models.AnomalyEvent, error)
}
