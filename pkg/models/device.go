package models

import (
	"time"
)

// DeviceStatus is the liveness state reported for a device.
type DeviceStatus string

const (
	DeviceStatusOnline  DeviceStatus = "online"
	DeviceStatusOffline DeviceStatus = "offline"
	DeviceStatusWarning DeviceStatus = "warning"
	DeviceStatusError   DeviceStatus = "error"
)

// Device represents a registered telemetry source.
type Device struct {
	ID              int64            `json:"id"`
	DeviceID        string           `json:"device_id"`
	Name            string           `json:"name"`
	Lat             *float64         `json:"lat,omitempty"`
	Lng             *float64         `json:"lng,omitempty"`
	Status          DeviceStatus     `json:"status"`
	LastSeen        *time.Time       `json:"last_seen,omitempty"`
	ThresholdConfig *ThresholdConfig `json:"threshold_config,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       *time.Time       `json:"updated_at,omitempty"`
}

// MetricBounds holds optional min/max limits for a single metric. A nil
// bound is never evaluated.
type MetricBounds struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// ThresholdConfig holds the per-metric bounds attached to a device. A nil
// metric entry means that metric is not evaluated at all.
type ThresholdConfig struct {
	Temperature    *MetricBounds `json:"temperature,omitempty"`
	Battery        *MetricBounds `json:"battery,omitempty"`
	SignalStrength *MetricBounds `json:"signal_strength,omitempty"`
	CPUUsage       *MetricBounds `json:"cpu_usage,omitempty"`
	MemoryUsage    *MetricBounds `json:"memory_usage,omitempty"`
	DiskUsage      *MetricBounds `json:"disk_usage,omitempty"`
}
