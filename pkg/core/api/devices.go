package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/db"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

// Device administration lives in a separate service; these read-only views
// exist so dashboards can resolve device identity and liveness.

func (s *APIServer) getDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := s.store.ListDevices(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list devices")
		writeError(w, "Failed to list devices", http.StatusInternalServerError)

		return
	}

	if devices == nil {
		devices = []models.Device{}
	}

	writeJSONResponse(w, devices, s.logger)
}

func (s *APIServer) getDevice(w http.ResponseWriter, r *http.Request) {
	deviceID := mux.Vars(r)["device_id"]

	device, err := s.store.GetDevice(r.Context(), deviceID)
	if err != nil {
		if errors.Is(err, db.ErrDeviceNotFound) {
			writeError(w, "Device not found", http.StatusNotFound)
			return
		}

		s.logger.Error().Err(err).Str("device_id", deviceID).Msg("Failed to get device")
		writeError(w, "Failed to get device", http.StatusInternalServerError)

		return
	}

	writeJSONResponse(w, device, s.logger)
}
