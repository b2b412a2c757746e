package models

import (
	"encoding/json"
	"time"
)

// Event types pushed to live subscribers.
const (
	EventTypeTelemetry    = "telemetry"
	EventTypeAnomaly      = "anomaly"
	EventTypeDeviceStatus = "device_status"
)

// StreamMessage is the envelope sent over the WebSocket.
type StreamMessage struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// CloudEvent is the envelope published to the events stream.
type CloudEvent struct {
	SpecVersion     string      `json:"specversion"`
	ID              string      `json:"id"`
	Source          string      `json:"source"`
	Type            string      `json:"type"`
	DataContentType string      `json:"datacontenttype"`
	Subject         string      `json:"subject"`
	Time            *time.Time  `json:"time,omitempty"`
	Data            interface{} `json:"data,omitempty"`
}

// AnomalyEventData is the CloudEvent payload for a raised anomaly.
type AnomalyEventData struct {
	AnomalyID   int64     `json:"anomaly_id"`
	DeviceID    string    `json:"device_id"`
	AnomalyType string    `json:"anomaly_type"`
	Reason      string    `json:"reason"`
	Severity    Severity  `json:"severity"`
	Timestamp   time.Time `json:"timestamp"`
}

// NotificationRequest is the payload forwarded to the external notification
// service.
type NotificationRequest struct {
	Type            string   `json:"type"`
	DeviceID        string   `json:"device_id"`
	Message         string   `json:"message"`
	Severity        Severity `json:"severity"`
	EmailRecipients []string `json:"email_recipients,omitempty"`
}

// PredictRequest is the metric payload sent to the external anomaly scorer.
type PredictRequest struct {
	DeviceID       string   `json:"device_id"`
	Temperature    *float64 `json:"temperature,omitempty"`
	Battery        *float64 `json:"battery,omitempty"`
	SignalStrength *float64 `json:"signal_strength,omitempty"`
	CPUUsage       *float64 `json:"cpu_usage,omitempty"`
	MemoryUsage    *float64 `json:"memory_usage,omitempty"`
	DiskUsage      *float64 `json:"disk_usage,omitempty"`
}

// PredictResponse is the scorer verdict.
type PredictResponse struct {
	IsAnomaly    bool    `json:"is_anomaly"`
	Confidence   float64 `json:"confidence"`
	AnomalyScore float64 `json:"anomaly_score"`
}
