package detector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

func TestPredictorPositiveVerdict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)

		var req models.PredictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sensor-1", req.DeviceID)

		_ = json.NewEncoder(w).Encode(models.PredictResponse{
			IsAnomaly:  true,
			Confidence: 0.93,
		})
	}))
	defer server.Close()

	predictor := NewPredictor(server.URL)

	isAnomaly, confidence, err := predictor.Predict(context.Background(), &models.TelemetrySample{
		DeviceID:    "sensor-1",
		Temperature: floatPtr(99),
	})

	require.NoError(t, err)
	assert.True(t, isAnomaly)
	assert.InDelta(t, 0.93, confidence, 0.001)
}

func TestPredictorNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	predictor := NewPredictor(server.URL)

	isAnomaly, confidence, err := predictor.Predict(context.Background(), &models.TelemetrySample{DeviceID: "sensor-1"})

	require.Error(t, err)
	assert.False(t, isAnomaly)
	assert.Zero(t, confidence)
}

func TestPredictorServiceDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	predictor := NewPredictor(server.URL)

	isAnomaly, _, err := predictor.Predict(context.Background(), &models.TelemetrySample{DeviceID: "sensor-1"})

	require.Error(t, err)
	assert.False(t, isAnomaly)
}
