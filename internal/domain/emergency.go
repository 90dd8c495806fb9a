package domain

import (
	"time"

	"github.com/google/uuid"
)

// Location is an optional geographic context attached to an emergency.
type Location struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// Emergency is the aggregate root of the escalation engine. Identity,
// owning user, kind and severity are immutable after creation; status is
// mutated only through the lifecycle service's guarded transitions.
// Re-triggering creates a new Emergency, it never upgrades an existing one.
type Emergency struct {
	ID              uuid.UUID
	ProtectedUserID uuid.UUID
	Kind            EmergencyKind
	Severity        Severity
	Status          EmergencyStatus
	Location        *Location
	Description     *string

	// NotifiedGuardianIDs is append-only, ordered consistently with
	// recipient priority for display purposes.
	NotifiedGuardianIDs []uuid.UUID

	CreatedAt   time.Time
	NotifiedAt  *time.Time
	ResolvedAt  *time.Time
	CancelledAt *time.Time

	ResolvedBy      *uuid.UUID
	CancelledBy     *uuid.UUID
	ResolutionNotes *string

	// ResponseTimeSeconds is derived once at resolution as
	// resolvedAt - createdAt. Nil before resolution.
	ResponseTimeSeconds *int64
}

// IsTerminal reports whether the record accepts no further transitions.
func (e *Emergency) IsTerminal() bool {
	return e.Status.IsTerminal()
}

// ResponseTime computes the elapsed time between creation and the given
// resolution instant, truncated to whole seconds and never negative.
func (e *Emergency) ResponseTime(resolvedAt time.Time) int64 {
	secs := int64(resolvedAt.Sub(e.CreatedAt) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}
