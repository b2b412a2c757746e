package alerting

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

const defaultNotifyTimeout = 5 * time.Second

var errNotifierStatus = errors.New("notifier returned non-OK status")

// Notifier forwards anomaly alerts to the external notification service.
// Delivery is best-effort; the caller decides what to do with a failure.
type Notifier struct {
	baseURL string
	client  *http.Client
}

// NewNotifier creates a forwarder for the notification service at baseURL.
func NewNotifier(baseURL string) *Notifier {
	return &Notifier{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: defaultNotifyTimeout,
		},
	}
}

// Notify forwards one anomaly event.
func (n *Notifier) Notify(ctx context.Context, event *models.AnomalyEvent) error {
	payload := models.NotificationRequest{
		Type:     models.EventTypeAnomaly,
		DeviceID: event.DeviceID,
		Message:  event.Reason,
		Severity: event.Severity,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/notify", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notification request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", errNotifierStatus, resp.StatusCode)
	}

	return nil
}
