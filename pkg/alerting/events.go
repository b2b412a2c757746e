package alerting

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

const (
	eventSource      = "vigilanceos/core"
	anomalyEventType = "com.vigilanceos.anomaly.created"
	defaultSubject   = "events.anomaly.created"
)

// EventPublisher publishes anomaly CloudEvents to NATS JetStream.
type EventPublisher struct {
	js      jetstream.JetStream
	subject string
}

// NewEventPublisher creates a publisher for the given subject.
func NewEventPublisher(js jetstream.JetStream, subject string) *EventPublisher {
	if subject == "" {
		subject = defaultSubject
	}

	return &EventPublisher{
		js:      js,
		subject: subject,
	}
}

// ConnectEventPublisher dials NATS and returns a ready publisher along with
// the connection for shutdown.
func ConnectEventPublisher(cfg *models.NATSConfig) (*EventPublisher, *nats.Conn, error) {
	nc, err := nats.Connect(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return NewEventPublisher(js, cfg.Subject), nc, nil
}

// newAnomalyCloudEvent wraps an anomaly event in a CloudEvents 1.0
// envelope with a fresh event ID.
func newAnomalyCloudEvent(event *models.AnomalyEvent, subject string) models.CloudEvent {
	ts := event.Timestamp

	return models.CloudEvent{
		SpecVersion:     "1.0",
		ID:              uuid.New().String(),
		Source:          eventSource,
		Type:            anomalyEventType,
		DataContentType: "application/json",
		Subject:         subject,
		Time:            &ts,
		Data: models.AnomalyEventData{
			AnomalyID:   event.ID,
			DeviceID:    event.DeviceID,
			AnomalyType: event.AnomalyType,
			Reason:      event.Reason,
			Severity:    event.Severity,
			Timestamp:   event.Timestamp,
		},
	}
}

// PublishAnomalyEvent publishes one anomaly as a CloudEvent.
func (p *EventPublisher) PublishAnomalyEvent(ctx context.Context, event *models.AnomalyEvent) error {
	cloudEvent := newAnomalyCloudEvent(event, p.subject)

	eventBytes, err := json.Marshal(cloudEvent)
	if err != nil {
		return fmt.Errorf("failed to marshal anomaly event: %w", err)
	}

	if _, err := p.js.Publish(ctx, cloudEvent.Subject, eventBytes); err != nil {
		return fmt.Errorf("failed to publish anomaly event: %w", err)
	}

	return nil
}
