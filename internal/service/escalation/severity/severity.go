// Package severity implements the pure severity classification policy.
// It has no dependencies and no side effects: every kind×confidence
// combination yields exactly one severity.
package severity

import "github.com/carewatch/carewatch-backend/internal/domain"

// Thresholds are the fall-detection confidence cutoffs. They come from
// configuration so they can be tuned without touching dispatch logic.
type Thresholds struct {
	// Critical: confidence at or above this tier is CRITICAL.
	Critical float64
	// Medium: confidence at or above this tier (but below Critical) is MEDIUM.
	Medium float64
}

// DefaultThresholds returns the production cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{Critical: 90, Medium: 50}
}

// Classify maps a triggering signal to a severity level.
//
//   - MANUAL_ALERT is always HIGH: a human explicitly asked for help,
//     never downgraded.
//   - GEOFENCE_EXIT is MEDIUM.
//   - FALL_DETECTION is tiered by confidence against the thresholds.
//
// Confidence is untrusted model output; values outside [0,100] are
// clamped, not rejected. A nil confidence on a fall event classifies as
// LOW (no signal strength is the weakest signal).
func Classify(t Thresholds, kind domain.EmergencyKind, confidence *float64) domain.Severity {
	switch kind {
	case domain.EmergencyKindManualAlert:
		return domain.SeverityHigh
	case domain.EmergencyKindGeofenceExit:
		return domain.SeverityMedium
	case domain.EmergencyKindFallDetection:
		c := 0.0
		if confidence != nil {
			c = Clamp(*confidence)
		}
		switch {
		case c >= t.Critical:
			return domain.SeverityCritical
		case c >= t.Medium:
			return domain.SeverityMedium
		default:
			return domain.SeverityLow
		}
	default:
		// Unknown kinds are filtered by input validation before they get
		// here; treat any that slip through as the strongest tier so a
		// policy gap can never mute an alert.
		return domain.SeverityCritical
	}
}

// Clamp forces a confidence score into [0,100].
func Clamp(confidence float64) float64 {
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}
