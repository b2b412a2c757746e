// Package ingest implements the telemetry ingestion pipeline: validate,
// persist, refresh device liveness, broadcast, and schedule anomaly
// evaluation.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/alerting"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/detector"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/db"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/logger"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/registry"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/stream"
)

// ErrMissingDeviceID rejects submissions without a device reference before
// any side effect.
var ErrMissingDeviceID = errors.New("device_id is required")

// scoreReasonFormat is the reason attached to scorer-raised anomalies.
const scoreReasonFormat = "Statistical anomaly detected (confidence %.2f)"

// Pipeline orchestrates one telemetry submission end to end. Only the
// device lookup and the durable write may block the caller; broadcast and
// evaluation are handed off without waiting.
type Pipeline struct {
	registry    *registry.Registry
	store       db.Service
	broadcaster *stream.Broadcaster
	alerts      *alerting.Manager
	predictor   *detector.Predictor
	pool        *WorkerPool
	logger      logger.Logger
}

// NewPipeline wires the ingestion pipeline. predictor may be nil when no
// external scorer is configured.
func NewPipeline(
	reg *registry.Registry,
	store db.Service,
	broadcaster *stream.Broadcaster,
	alerts *alerting.Manager,
	predictor *detector.Predictor,
	pool *WorkerPool,
	log logger.Logger,
) *Pipeline {
	return &Pipeline{
		registry:    reg,
		store:       store,
		broadcaster: broadcaster,
		alerts:      alerts,
		predictor:   predictor,
		pool:        pool,
		logger:      log,
	}
}

// Submit ingests one sample. It returns the stored record once persistence
// and the liveness update have succeeded; broadcast delivery and anomaly
// evaluation happen independently of the caller and their failures are
// never surfaced here.
func (p *Pipeline) Submit(ctx context.Context, req *models.TelemetryRequest) (*models.TelemetrySample, error) {
	if req == nil || req.DeviceID == "" {
		return nil, ErrMissingDeviceID
	}

	device, err := p.registry.GetDevice(ctx, req.DeviceID)
	if err != nil {
		return nil, err
	}

	stored, err := p.store.InsertTelemetry(ctx, req.Sample(time.Now().UTC()))
	if err != nil {
		return nil, err
	}

	// The liveness update must be visible before the broadcast so a
	// subscriber observing the event can trust the device state.
	if err := p.registry.MarkOnline(ctx, device.DeviceID, stored.Timestamp); err != nil {
		return nil, err
	}

	p.broadcaster.Broadcast(models.EventTypeTelemetry, stored)

	p.scheduleEvaluation(stored, device.ThresholdConfig)

	return stored, nil
}

// scheduleEvaluation queues threshold evaluation for the stored sample. A
// full queue drops the task rather than blocking ingestion.
func (p *Pipeline) scheduleEvaluation(sample *models.TelemetrySample, thresholds *models.ThresholdConfig) {
	accepted := p.pool.Dispatch(func(ctx context.Context) {
		p.evaluate(ctx, sample, thresholds)
	})

	if !accepted {
		p.logger.Warn().
			Str("device_id", sample.DeviceID).
			Int64("sample_id", sample.ID).
			Msg("Evaluation queue full, dropping anomaly evaluation")
	}
}

func (p *Pipeline) evaluate(ctx context.Context, sample *models.TelemetrySample, thresholds *models.ThresholdConfig) {
	candidates := detector.Evaluate(sample, thresholds)

	// Devices without threshold bounds still get a verdict from the
	// external scorer when one is configured. Scorer errors mean "no
	// verdict", never an anomaly.
	if thresholds == nil && p.predictor != nil {
		isAnomaly, confidence, err := p.predictor.Predict(ctx, sample)

		switch {
		case err != nil:
			p.logger.Debug().
				Err(err).
				Str("device_id", sample.DeviceID).
				Msg("Anomaly scorer unavailable")
		case isAnomaly:
			candidates = append(candidates, models.AnomalyCandidate{
				Type:     models.AnomalyML,
				Reason:   fmt.Sprintf(scoreReasonFormat, confidence),
				Severity: models.SeverityMedium,
			})
		}
	}

	if len(candidates) == 0 {
		return
	}

	p.alerts.Process(ctx, sample.DeviceID, candidates)
}

// Close drains the evaluation queue.
func (p *Pipeline) Close() {
	p.pool.Stop()
}
