package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/db"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/ingest"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

const (
	defaultWindowHours = 24
	maxWindowHours     = 168

	defaultPageLimit = 100
	maxPageLimit     = 1000
)

// submitTelemetry ingests one sample from a device.
func (s *APIServer) submitTelemetry(w http.ResponseWriter, r *http.Request) {
	var req models.TelemetryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	stored, err := s.pipeline.Submit(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrMissingDeviceID):
			writeError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, db.ErrDeviceNotFound):
			writeError(w, "Device not found", http.StatusNotFound)
		default:
			s.logger.Error().Err(err).Str("device_id", req.DeviceID).Msg("Telemetry submission failed")
			writeError(w, "Failed to store telemetry", http.StatusInternalServerError)
		}

		return
	}

	writeJSONResponse(w, stored, s.logger)
}

// getTelemetry lists samples filtered by device and time window, newest
// first.
func (s *APIServer) getTelemetry(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	hours := parseIntParam(query, "hours", defaultWindowHours, 1, maxWindowHours)
	skip := parseIntParam(query, "skip", 0, 0, int(^uint(0)>>1))
	limit := parseIntParam(query, "limit", defaultPageLimit, 1, maxPageLimit)

	samples, err := s.store.ListTelemetry(r.Context(), db.TelemetryFilter{
		DeviceID: query.Get("device_id"),
		Since:    time.Now().UTC().Add(-time.Duration(hours) * time.Hour),
		Offset:   skip,
		Limit:    limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list telemetry")
		writeError(w, "Failed to list telemetry", http.StatusInternalServerError)

		return
	}

	if samples == nil {
		samples = []models.TelemetrySample{}
	}

	writeJSONResponse(w, samples, s.logger)
}

// getLatestTelemetry returns the newest sample for one device.
func (s *APIServer) getLatestTelemetry(w http.ResponseWriter, r *http.Request) {
	deviceID := mux.Vars(r)["device_id"]

	sample, err := s.store.GetLatestTelemetry(r.Context(), deviceID)
	if err != nil {
		if errors.Is(err, db.ErrTelemetryNotFound) {
			writeError(w, "No telemetry data found for this device", http.StatusNotFound)
			return
		}

		s.logger.Error().Err(err).Str("device_id", deviceID).Msg("Failed to get latest telemetry")
		writeError(w, "Failed to get latest telemetry", http.StatusInternalServerError)

		return
	}

	writeJSONResponse(w, sample, s.logger)
}

// parseIntParam reads an integer query parameter, clamping it to
// [min, max] and falling back to def when absent or malformed.
func parseIntParam(query url.Values, name string, def, min, max int) int {
	raw := query.Get(name)
	if raw == "" {
		return def
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
