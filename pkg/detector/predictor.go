package detector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

const defaultPredictTimeout = 5 * time.Second

var errPredictorStatus = errors.New("anomaly detector returned non-OK status")

// Predictor calls the external anomaly scorer over HTTP. The scorer's
// algorithm is opaque to this service; only the predict contract matters.
type Predictor struct {
	baseURL string
	client  *http.Client
}

// NewPredictor creates a client for the scorer at baseURL.
func NewPredictor(baseURL string) *Predictor {
	return &Predictor{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: defaultPredictTimeout,
		},
	}
}

// Predict submits the sample's metrics and returns the scorer verdict. A
// transport failure or non-OK status is returned as an error; callers treat
// that as "no verdict", never as an anomaly.
func (p *Predictor) Predict(ctx context.Context, sample *models.TelemetrySample) (isAnomaly bool, confidence float64, err error) {
	payload := models.PredictRequest{
		DeviceID:       sample.DeviceID,
		Temperature:    sample.Temperature,
		Battery:        sample.Battery,
		SignalStrength: sample.SignalStrength,
		CPUUsage:       sample.CPUUsage,
		MemoryUsage:    sample.MemoryUsage,
		DiskUsage:      sample.DiskUsage,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return false, 0, fmt.Errorf("failed to marshal predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return false, 0, fmt.Errorf("failed to build predict request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return false, 0, fmt.Errorf("predict request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, 0, fmt.Errorf("%w: %d", errPredictorStatus, resp.StatusCode)
	}

	var result models.PredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, 0, fmt.Errorf("failed to decode predict response: %w", err)
	}

	return result.IsAnomaly, result.Confidence, nil
}
