// Package detector evaluates telemetry samples against per-device threshold
// bounds and exposes a client for the external anomaly scorer.
package detector

import (
	"fmt"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

// Battery below this level escalates LOW_BATTERY to high severity.
const criticalBatteryLevel = 10

// Evaluate checks a sample against the device's threshold bounds and returns
// every violation found. It is pure: identical inputs always yield the same
// candidates, in rule order. A metric absent from the sample, or a bound not
// configured, skips that rule. A nil config yields no candidates.
func Evaluate(sample *models.TelemetrySample, thresholds *models.ThresholdConfig) []models.AnomalyCandidate {
	if sample == nil || thresholds == nil {
		return nil
	}

	var candidates []models.AnomalyCandidate

	if temp := sample.Temperature; temp != nil && thresholds.Temperature != nil {
		if max := thresholds.Temperature.Max; max != nil && *temp > *max {
			candidates = append(candidates, models.AnomalyCandidate{
				Type:     models.AnomalyHighTemperature,
				Reason:   fmt.Sprintf("Temperature %.1f°C exceeds threshold %.1f°C", *temp, *max),
				Severity: models.SeverityHigh,
			})
		} else if min := thresholds.Temperature.Min; min != nil && *temp < *min {
			candidates = append(candidates, models.AnomalyCandidate{
				Type:     models.AnomalyLowTemperature,
				Reason:   fmt.Sprintf("Temperature %.1f°C below threshold %.1f°C", *temp, *min),
				Severity: models.SeverityMedium,
			})
		}
	}

	if battery := sample.Battery; battery != nil && thresholds.Battery != nil {
		if min := thresholds.Battery.Min; min != nil && *battery < *min {
			severity := models.SeverityMedium
			if *battery < criticalBatteryLevel {
				severity = models.SeverityHigh
			}

			candidates = append(candidates, models.AnomalyCandidate{
				Type:     models.AnomalyLowBattery,
				Reason:   fmt.Sprintf("Battery %.1f%% below threshold %.1f%%", *battery, *min),
				Severity: severity,
			})
		}
	}

	if signal := sample.SignalStrength; signal != nil && thresholds.SignalStrength != nil {
		if min := thresholds.SignalStrength.Min; min != nil && *signal < *min {
			candidates = append(candidates, models.AnomalyCandidate{
				Type:     models.AnomalyWeakSignal,
				Reason:   fmt.Sprintf("Signal strength %.1fdBm below threshold %.1fdBm", *signal, *min),
				Severity: models.SeverityMedium,
			})
		}
	}

	return candidates
}
