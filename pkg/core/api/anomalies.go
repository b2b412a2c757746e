package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/db"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

// getAnomalies lists anomaly events filtered by device, resolution state,
// and time window, newest first.
func (s *APIServer) getAnomalies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	hours := parseIntParam(query, "hours", defaultWindowHours, 1, maxWindowHours)
	skip := parseIntParam(query, "skip", 0, 0, int(^uint(0)>>1))
	limit := parseIntParam(query, "limit", defaultPageLimit, 1, maxPageLimit)

	filter := db.AnomalyFilter{
		DeviceID: query.Get("device_id"),
		Since:    time.Now().UTC().Add(-time.Duration(hours) * time.Hour),
		Offset:   skip,
		Limit:    limit,
	}

	if raw := query.Get("resolved"); raw != "" {
		resolved, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, "Invalid resolved parameter", http.StatusBadRequest)
			return
		}

		filter.Resolved = &resolved
	}

	events, err := s.store.ListAnomalies(r.Context(), filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list anomalies")
		writeError(w, "Failed to list anomalies", http.StatusInternalServerError)

		return
	}

	if events == nil {
		events = []models.AnomalyEvent{}
	}

	writeJSONResponse(w, events, s.logger)
}

// getAnomaly returns one anomaly event by id.
func (s *APIServer) getAnomaly(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, "Invalid anomaly id", http.StatusBadRequest)
		return
	}

	event, err := s.store.GetAnomaly(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrAnomalyNotFound) {
			writeError(w, "Anomaly not found", http.StatusNotFound)
			return
		}

		s.logger.Error().Err(err).Int64("anomaly_id", id).Msg("Failed to get anomaly")
		writeError(w, "Failed to get anomaly", http.StatusInternalServerError)

		return
	}

	writeJSONResponse(w, event, s.logger)
}

// resolveAnomaly marks an anomaly resolved. Resolving one that is already
// resolved succeeds again.
func (s *APIServer) resolveAnomaly(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, "Invalid anomaly id", http.StatusBadRequest)
		return
	}

	if _, err := s.alerts.Resolve(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrAnomalyNotFound) {
			writeError(w, "Anomaly not found", http.StatusNotFound)
			return
		}

		s.logger.Error().Err(err).Int64("anomaly_id", id).Msg("Failed to resolve anomaly")
		writeError(w, "Failed to resolve anomaly", http.StatusInternalServerError)

		return
	}

	writeJSONResponse(w, models.ResolveResponse{Message: "Anomaly marked as resolved"}, s.logger)
}
