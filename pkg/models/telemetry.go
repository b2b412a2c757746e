package models

import (
	"time"
)

// TelemetrySample is one immutable set of metrics reported by a device.
// Every metric is optional: a nil field means the device did not report it,
// which is distinct from reporting zero.
type TelemetrySample struct {
	ID             int64     `json:"id"`
	DeviceID       string    `json:"device_id"`
	Timestamp      time.Time `json:"timestamp"`
	Temperature    *float64  `json:"temperature,omitempty"`
	Battery        *float64  `json:"battery,omitempty"`
	SignalStrength *float64  `json:"signal_strength,omitempty"`
	CPUUsage       *float64  `json:"cpu_usage,omitempty"`
	MemoryUsage    *float64  `json:"memory_usage,omitempty"`
	DiskUsage      *float64  `json:"disk_usage,omitempty"`
}

// TelemetryRequest is the ingestion payload accepted from devices.
type TelemetryRequest struct {
	DeviceID       string   `json:"device_id"`
	Temperature    *float64 `json:"temperature,omitempty"`
	Battery        *float64 `json:"battery,omitempty"`
	SignalStrength *float64 `json:"signal_strength,omitempty"`
	CPUUsage       *float64 `json:"cpu_usage,omitempty"`
	MemoryUsage    *float64 `json:"memory_usage,omitempty"`
	DiskUsage      *float64 `json:"disk_usage,omitempty"`
}

// Sample converts the request into an unpersisted sample stamped at t.
func (r *TelemetryRequest) Sample(t time.Time) *TelemetrySample {
	return &TelemetrySample{
		DeviceID:       r.DeviceID,
		Timestamp:      t,
		Temperature:    r.Temperature,
		Battery:        r.Battery,
		SignalStrength: r.SignalStrength,
		CPUUsage:       r.CPUUsage,
		MemoryUsage:    r.MemoryUsage,
		DiskUsage:      r.DiskUsage,
	}
}
