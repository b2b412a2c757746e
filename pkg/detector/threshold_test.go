package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestEvaluateHighTemperature(t *testing.T) {
	sample := &models.TelemetrySample{
		DeviceID:    "sensor-1",
		Temperature: floatPtr(90),
	}
	thresholds := &models.ThresholdConfig{
		Temperature: &models.MetricBounds{Max: floatPtr(85)},
	}

	candidates := Evaluate(sample, thresholds)

	require.Len(t, candidates, 1)
	assert.Equal(t, models.AnomalyHighTemperature, candidates[0].Type)
	assert.Equal(t, models.SeverityHigh, candidates[0].Severity)
	assert.Equal(t, "Temperature 90.0°C exceeds threshold 85.0°C", candidates[0].Reason)
}

func TestEvaluateLowTemperature(t *testing.T) {
	sample := &models.TelemetrySample{
		DeviceID:    "sensor-1",
		Temperature: floatPtr(-5),
	}
	thresholds := &models.ThresholdConfig{
		Temperature: &models.MetricBounds{Min: floatPtr(0), Max: floatPtr(85)},
	}

	candidates := Evaluate(sample, thresholds)

	require.Len(t, candidates, 1)
	assert.Equal(t, models.AnomalyLowTemperature, candidates[0].Type)
	assert.Equal(t, models.SeverityMedium, candidates[0].Severity)
}

func TestEvaluateLowBatterySeverity(t *testing.T) {
	thresholds := &models.ThresholdConfig{
		Battery: &models.MetricBounds{Min: floatPtr(20)},
	}

	// Below the critical level the alert escalates to high.
	critical := Evaluate(&models.TelemetrySample{Battery: floatPtr(5)}, thresholds)
	require.Len(t, critical, 1)
	assert.Equal(t, models.AnomalyLowBattery, critical[0].Type)
	assert.Equal(t, models.SeverityHigh, critical[0].Severity)

	low := Evaluate(&models.TelemetrySample{Battery: floatPtr(15)}, thresholds)
	require.Len(t, low, 1)
	assert.Equal(t, models.AnomalyLowBattery, low[0].Type)
	assert.Equal(t, models.SeverityMedium, low[0].Severity)
}

func TestEvaluateWeakSignal(t *testing.T) {
	sample := &models.TelemetrySample{
		SignalStrength: floatPtr(-95),
	}
	thresholds := &models.ThresholdConfig{
		SignalStrength: &models.MetricBounds{Min: floatPtr(-80)},
	}

	candidates := Evaluate(sample, thresholds)

	require.Len(t, candidates, 1)
	assert.Equal(t, models.AnomalyWeakSignal, candidates[0].Type)
	assert.Equal(t, models.SeverityMedium, candidates[0].Severity)
}

func TestEvaluateMultipleViolations(t *testing.T) {
	sample := &models.TelemetrySample{
		Temperature:    floatPtr(100),
		Battery:        floatPtr(8),
		SignalStrength: floatPtr(-110),
	}
	thresholds := &models.ThresholdConfig{
		Temperature:    &models.MetricBounds{Max: floatPtr(85)},
		Battery:        &models.MetricBounds{Min: floatPtr(20)},
		SignalStrength: &models.MetricBounds{Min: floatPtr(-80)},
	}

	candidates := Evaluate(sample, thresholds)

	require.Len(t, candidates, 3)
	assert.Equal(t, models.AnomalyHighTemperature, candidates[0].Type)
	assert.Equal(t, models.AnomalyLowBattery, candidates[1].Type)
	assert.Equal(t, models.AnomalyWeakSignal, candidates[2].Type)
}

func TestEvaluateNoThresholdConfig(t *testing.T) {
	sample := &models.TelemetrySample{
		Temperature:    floatPtr(150),
		Battery:        floatPtr(1),
		SignalStrength: floatPtr(-120),
	}

	assert.Empty(t, Evaluate(sample, nil))
}

func TestEvaluateSkipsMissingMetricsAndBounds(t *testing.T) {
	// Metric reported but no bound configured for it.
	thresholds := &models.ThresholdConfig{
		Temperature: &models.MetricBounds{Max: floatPtr(85)},
	}
	sample := &models.TelemetrySample{
		Battery: floatPtr(1),
	}

	assert.Empty(t, Evaluate(sample, thresholds))

	// Bound configured but metric not reported. Absence is not zero.
	sample = &models.TelemetrySample{}
	assert.Empty(t, Evaluate(sample, thresholds))

	// Min-only temperature bound must not fire the max rule.
	minOnly := &models.ThresholdConfig{
		Temperature: &models.MetricBounds{Min: floatPtr(0)},
	}
	assert.Empty(t, Evaluate(&models.TelemetrySample{Temperature: floatPtr(50)}, minOnly))
}

func TestEvaluateIsPure(t *testing.T) {
	sample := &models.TelemetrySample{
		Temperature: floatPtr(90),
		Battery:     floatPtr(5),
	}
	thresholds := &models.ThresholdConfig{
		Temperature: &models.MetricBounds{Max: floatPtr(85)},
		Battery:     &models.MetricBounds{Min: floatPtr(20)},
	}

	first := Evaluate(sample, thresholds)

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Evaluate(sample, thresholds))
	}
}
