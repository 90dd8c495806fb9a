package domain

import (
	"time"

	"github.com/google/uuid"
)

// TriggerEvent is the raw triggering signal handed in by the transport
// layer. It is consumed once and never persisted as-is.
//
// Confidence is supplied by the external fall-detection model for
// FALL_DETECTION events and is treated as untrusted input: out-of-range
// values are clamped to [0,100] rather than rejected.
type TriggerEvent struct {
	ProtectedUserID uuid.UUID
	Kind            EmergencyKind
	Confidence      *float64
	Location        *Location
	Description     *string
	OccurredAt      time.Time
}
