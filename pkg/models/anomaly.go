package models

import (
	"time"
)

// Severity classifies how urgent an anomaly is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Anomaly type tags produced by the threshold evaluator and the external
// scorer.
const (
	AnomalyHighTemperature = "HIGH_TEMPERATURE"
	AnomalyLowTemperature  = "LOW_TEMPERATURE"
	AnomalyLowBattery      = "LOW_BATTERY"
	AnomalyWeakSignal      = "WEAK_SIGNAL"
	AnomalyML              = "ML_ANOMALY"
)

// AnomalyCandidate is a threshold violation detected for a sample before it
// has been persisted.
type AnomalyCandidate struct {
	Type     string   `json:"type"`
	Reason   string   `json:"reason"`
	Severity Severity `json:"severity"`
}

// AnomalyEvent is a persisted anomaly with its resolution state. Events are
// created unresolved and transition to resolved exactly once; they are never
// deleted.
type AnomalyEvent struct {
	ID          int64     `json:"id"`
	DeviceID    string    `json:"device_id"`
	Timestamp   time.Time `json:"timestamp"`
	AnomalyType string    `json:"anomaly_type"`
	Reason      string    `json:"reason,omitempty"`
	Severity    Severity  `json:"severity"`
	Resolved    bool      `json:"resolved"`
}
