// Package registry owns device liveness state and threshold lookups.
package registry

import (
	"context"
	"time"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/db"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/logger"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

// Registry resolves devices and applies the single liveness transition this
// core performs: receipt of telemetry marks a device online. Demoting a
// silent device out of online is an extension point that needs a product
// decision; no timeout-driven transition happens here.
type Registry struct {
	store  db.Service
	logger logger.Logger
}

// New creates a device registry over the given store.
func New(store db.Service, log logger.Logger) *Registry {
	return &Registry{
		store:  store,
		logger: log,
	}
}

// GetDevice returns the device registered under deviceID, or
// db.ErrDeviceNotFound.
func (r *Registry) GetDevice(ctx context.Context, deviceID string) (*models.Device, error) {
	return r.store.GetDevice(ctx, deviceID)
}

// MarkOnline unconditionally sets the device to online and refreshes its
// last-seen timestamp, regardless of the prior state.
func (r *Registry) MarkOnline(ctx context.Context, deviceID string, at time.Time) error {
	if err := r.store.UpdateDeviceStatus(ctx, deviceID, models.DeviceStatusOnline, at); err != nil {
		return err
	}

	r.logger.Debug().
		Str("device_id", deviceID).
		Time("last_seen", at).
		Msg("Device marked online")

	return nil
}

// Thresholds returns the device's threshold configuration, or nil when the
// device has none configured. A nil configuration is not an error: such
// devices simply produce no threshold candidates.
func (r *Registry) Thresholds(ctx context.Context, deviceID string) (*models.ThresholdConfig, error) {
	device, err := r.store.GetDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	return device.ThresholdConfig, nil
}
