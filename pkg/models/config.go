package models

import (
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/logger"
)

// CORSConfig holds the allowed origins for HTTP and WebSocket requests.
type CORSConfig struct {
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowCredentials bool     `json:"allow_credentials"`
}

// DatabaseConfig describes the Postgres cluster backing the core service.
type DatabaseConfig struct {
	Host               string            `json:"host"`
	Port               int               `json:"port"`
	Database           string            `json:"database"`
	Username           string            `json:"username"`
	Password           string            `json:"password"`
	SSLMode            string            `json:"ssl_mode"`
	ApplicationName    string            `json:"application_name"`
	MaxConnections     int32             `json:"max_connections"`
	MinConnections     int32             `json:"min_connections"`
	ExtraRuntimeParams map[string]string `json:"extra_runtime_params,omitempty"`
}

// NATSConfig describes the optional JetStream event bus. A missing URL
// disables event publication.
type NATSConfig struct {
	URL     string `json:"url"`
	Subject string `json:"subject"`
}

// EvaluatorConfig bounds the anomaly-evaluation worker pool.
type EvaluatorConfig struct {
	Workers     int    `json:"workers"`
	QueueSize   int    `json:"queue_size"`
	TaskTimeout string `json:"task_timeout"`
}

// CoreServiceConfig is the top-level configuration for cmd/core.
type CoreServiceConfig struct {
	ListenAddr  string          `json:"listen_addr"`
	APIKey      string          `json:"api_key,omitempty"`
	Database    DatabaseConfig  `json:"database"`
	NATS        *NATSConfig     `json:"nats,omitempty"`
	NotifierURL string          `json:"notifier_url,omitempty"`
	DetectorURL string          `json:"detector_url,omitempty"`
	Evaluator   EvaluatorConfig `json:"evaluator"`
	CORS        CORSConfig      `json:"cors"`
	Logging     *logger.Config  `json:"logging,omitempty"`
}
