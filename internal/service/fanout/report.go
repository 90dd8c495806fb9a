package fanout

import (
	"github.com/google/uuid"

	"github.com/carewatch/carewatch-backend/internal/domain"
)

// GuardianReport is the delivery result for a single guardian.
type GuardianReport struct {
	GuardianID  uuid.UUID
	DisplayName string
	Outcomes    []domain.DispatchOutcome
	Reached     bool
}

// Report is the aggregate result of one fan-out. PerGuardian preserves
// the priority order of the recipients handed to Dispatch.
type Report struct {
	PerGuardian        []GuardianReport
	GuardiansAttempted int
	GuardiansReached   int
}

// ReachedGuardianIDs returns, in priority order, the guardians that
// acknowledged at least one channel.
func (r Report) ReachedGuardianIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, r.GuardiansReached)
	for _, g := range r.PerGuardian {
		if g.Reached {
			ids = append(ids, g.GuardianID)
		}
	}
	return ids
}
