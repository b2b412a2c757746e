// Package alerting records anomaly events and distributes them: broadcast
// to live subscribers, best-effort hand-off to the external notifier, and
// optional CloudEvent publication to the event bus.
package alerting

import (
	"context"
	"time"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/db"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/logger"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/stream"
)

// Manager turns evaluator candidates into persisted anomaly events and fans
// them out. Forwarding failures are logged and swallowed; they never undo a
// persisted or broadcast event.
type Manager struct {
	store       db.Service
	broadcaster *stream.Broadcaster
	notifier    *Notifier
	events      *EventPublisher
	logger      logger.Logger
}

// NewManager creates an alerting manager. notifier and events may be nil
// when those channels are not configured.
func NewManager(
	store db.Service,
	broadcaster *stream.Broadcaster,
	notifier *Notifier,
	events *EventPublisher,
	log logger.Logger,
) *Manager {
	return &Manager{
		store:       store,
		broadcaster: broadcaster,
		notifier:    notifier,
		events:      events,
		logger:      log,
	}
}

// Process persists each candidate as an unresolved anomaly event, then
// broadcasts and forwards it. A failure on one candidate does not stop the
// others.
func (m *Manager) Process(ctx context.Context, deviceID string, candidates []models.AnomalyCandidate) {
	for _, candidate := range candidates {
		event, err := m.store.InsertAnomaly(ctx, &models.AnomalyEvent{
			DeviceID:    deviceID,
			Timestamp:   time.Now().UTC(),
			AnomalyType: candidate.Type,
			Reason:      candidate.Reason,
			Severity:    candidate.Severity,
		})
		if err != nil {
			m.logger.Error().
				Err(err).
				Str("device_id", deviceID).
				Str("anomaly_type", candidate.Type).
				Msg("Failed to persist anomaly event")

			continue
		}

		m.logger.Info().
			Str("device_id", deviceID).
			Str("anomaly_type", event.AnomalyType).
			Str("severity", string(event.Severity)).
			Int64("anomaly_id", event.ID).
			Msg("Anomaly detected")

		m.broadcaster.Broadcast(models.EventTypeAnomaly, event)

		if m.notifier != nil {
			if err := m.notifier.Notify(ctx, event); err != nil {
				m.logger.Warn().
					Err(err).
					Int64("anomaly_id", event.ID).
					Msg("Notification forwarding failed")
			}
		}

		if m.events != nil {
			if err := m.events.PublishAnomalyEvent(ctx, event); err != nil {
				m.logger.Warn().
					Err(err).
					Int64("anomaly_id", event.ID).
					Msg("Anomaly event publication failed")
			}
		}
	}
}

// Resolve marks an anomaly resolved. Resolving an already-resolved anomaly
// succeeds and leaves it resolved.
func (m *Manager) Resolve(ctx context.Context, id int64) (*models.AnomalyEvent, error) {
	event, err := m.store.ResolveAnomaly(ctx, id)
	if err != nil {
		return nil, err
	}

	m.logger.Info().
		Int64("anomaly_id", event.ID).
		Str("device_id", event.DeviceID).
		Msg("Anomaly resolved")

	return event, nil
}
