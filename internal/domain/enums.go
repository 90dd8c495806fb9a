package domain

// EmergencyKind identifies the triggering signal of an emergency.
type EmergencyKind string

const (
	EmergencyKindManualAlert   EmergencyKind = "MANUAL_ALERT"
	EmergencyKindFallDetection EmergencyKind = "FALL_DETECTION"
	EmergencyKindGeofenceExit  EmergencyKind = "GEOFENCE_EXIT"
)

func (k EmergencyKind) String() string { return string(k) }

func (k EmergencyKind) IsValid() bool {
	switch k {
	case EmergencyKindManualAlert, EmergencyKindFallDetection, EmergencyKindGeofenceExit:
		return true
	}
	return false
}

// Severity is the coarse urgency tier of an emergency. It is computed once
// at creation and governs which notification channels are attempted.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

func (s Severity) String() string { return string(s) }

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Rank returns the ordinal position of the severity tier (LOW=0 .. CRITICAL=3).
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}

// EmergencyStatus is the lifecycle state of an emergency record.
type EmergencyStatus string

const (
	EmergencyStatusActive    EmergencyStatus = "ACTIVE"
	EmergencyStatusNotified  EmergencyStatus = "NOTIFIED"
	EmergencyStatusResolved  EmergencyStatus = "RESOLVED"
	EmergencyStatusCancelled EmergencyStatus = "CANCELLED"
)

func (s EmergencyStatus) String() string { return string(s) }

func (s EmergencyStatus) IsValid() bool {
	switch s {
	case EmergencyStatusActive, EmergencyStatusNotified, EmergencyStatusResolved, EmergencyStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted.
func (s EmergencyStatus) IsTerminal() bool {
	return s == EmergencyStatusResolved || s == EmergencyStatusCancelled
}

// CanTransitionTo reports whether the state machine permits moving from s
// to the target status. ACTIVE may move to any later state; NOTIFIED only
// to a terminal one; terminal states accept nothing.
func (s EmergencyStatus) CanTransitionTo(target EmergencyStatus) bool {
	switch s {
	case EmergencyStatusActive:
		return target == EmergencyStatusNotified ||
			target == EmergencyStatusResolved ||
			target == EmergencyStatusCancelled
	case EmergencyStatusNotified:
		return target == EmergencyStatusResolved || target == EmergencyStatusCancelled
	default:
		return false
	}
}

// Channel is a single delivery mechanism with its own failure domain.
type Channel string

const (
	ChannelPush  Channel = "PUSH"
	ChannelSMS   Channel = "SMS"
	ChannelEmail Channel = "EMAIL"
)

func (c Channel) String() string { return string(c) }

// DispatchErrorKind classifies a failed channel send.
type DispatchErrorKind string

const (
	DispatchErrorTimeout       DispatchErrorKind = "TIMEOUT"
	DispatchErrorRejected      DispatchErrorKind = "REJECTED"
	DispatchErrorUnreachable   DispatchErrorKind = "UNREACHABLE"
	DispatchErrorInvalidTarget DispatchErrorKind = "INVALID_TARGET"
)

func (k DispatchErrorKind) String() string { return string(k) }
