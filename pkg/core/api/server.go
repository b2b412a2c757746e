// Package api provides the HTTP and WebSocket surface for the core service
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/alerting"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/db"
	srHttp "github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/http"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/ingest"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/logger"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/stream"
)

const (
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 15 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

// APIServer exposes ingestion, query, resolution, and live-subscription
// endpoints.
type APIServer struct {
	router      *mux.Router
	srv         *http.Server
	store       db.Service
	pipeline    *ingest.Pipeline
	alerts      *alerting.Manager
	broadcaster *stream.Broadcaster
	corsConfig  models.CORSConfig
	apiKey      string
	logger      logger.Logger
}

// NewAPIServer creates a new API server instance with the given configuration.
func NewAPIServer(config models.CORSConfig, options ...func(server *APIServer)) *APIServer {
	s := &APIServer{
		router:     mux.NewRouter(),
		corsConfig: config,
	}

	for _, o := range options {
		o(s)
	}

	s.setupRoutes()

	return s
}

// WithStore sets the persistence service for the API server.
func WithStore(store db.Service) func(server *APIServer) {
	return func(server *APIServer) {
		server.store = store
	}
}

// WithPipeline sets the ingestion pipeline for the API server.
func WithPipeline(pipeline *ingest.Pipeline) func(server *APIServer) {
	return func(server *APIServer) {
		server.pipeline = pipeline
	}
}

// WithAlerts sets the alerting manager for the API server.
func WithAlerts(alerts *alerting.Manager) func(server *APIServer) {
	return func(server *APIServer) {
		server.alerts = alerts
	}
}

// WithBroadcaster sets the event broadcaster for the API server.
func WithBroadcaster(broadcaster *stream.Broadcaster) func(server *APIServer) {
	return func(server *APIServer) {
		server.broadcaster = broadcaster
	}
}

// WithAPIKey enables API-key authentication on the protected routes.
func WithAPIKey(apiKey string) func(server *APIServer) {
	return func(server *APIServer) {
		server.apiKey = apiKey
	}
}

// WithLogger sets the logger for the API server.
func WithLogger(log logger.Logger) func(server *APIServer) {
	return func(server *APIServer) {
		server.logger = log
	}
}

func (s *APIServer) setupRoutes() {
	s.router.Use(func(next http.Handler) http.Handler {
		return srHttp.CommonMiddleware(next, s.corsConfig)
	})

	s.router.HandleFunc("/health", s.healthCheck).Methods(http.MethodGet, http.MethodOptions)

	protected := s.router.PathPrefix("/api").Subrouter()
	protected.Use(srHttp.APIKeyMiddleware(s.apiKey))

	protected.HandleFunc("/telemetry", s.submitTelemetry).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/telemetry", s.getTelemetry).Methods(http.MethodGet)
	protected.HandleFunc("/telemetry/latest/{device_id}", s.getLatestTelemetry).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/anomalies", s.getAnomalies).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/anomalies/{id}", s.getAnomaly).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/anomalies/{id}/resolve", s.resolveAnomaly).Methods(http.MethodPut, http.MethodOptions)
	protected.HandleFunc("/devices", s.getDevices).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/devices/{device_id}", s.getDevice).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/ws", s.handleWebSocket).Methods(http.MethodGet)
}

// Router exposes the configured handler, mainly for tests.
func (s *APIServer) Router() http.Handler {
	return s.router
}

func (s *APIServer) healthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSONResponse(w, map[string]string{
		"status":  "healthy",
		"service": "vigilance-core",
	}, s.logger)
}

// Start runs the HTTP server until Shutdown is called or it fails.
func (s *APIServer) Start(addr string) error {
	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	return s.srv.ListenAndServe()
}

// Shutdown stops accepting new connections and drains in-flight requests.
func (s *APIServer) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}

	return s.srv.Shutdown(ctx)
}

// writeJSONResponse writes a JSON response to the HTTP writer.
func writeJSONResponse(w http.ResponseWriter, data interface{}, log logger.Logger) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil && log != nil {
		log.Error().Err(err).Msg("Error encoding response")
	}
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)

	errResponse := models.ErrorResponse{
		Message: message,
		Status:  statusCode,
	}

	if err := json.NewEncoder(w).Encode(errResponse); err != nil {
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
