package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/carewatch/carewatch-backend/internal/domain"
)

// MarkNotified transitions an ACTIVE emergency to NOTIFIED, recording
// the guardians that were actually reached. Repeating the call with the
// same guardian set (in any order) is a no-op returning the current
// record; any other re-notification attempt is a conflict.
func (s *Service) MarkNotified(ctx context.Context, id uuid.UUID, guardianIDs []uuid.UUID) (*domain.Emergency, error) {
	var (
		result  *domain.Emergency
		changed bool
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get emergency: %w", err)
		}

		if current.Status == domain.EmergencyStatusNotified {
			if sameGuardianSet(current.NotifiedGuardianIDs, guardianIDs) {
				result = current
				return nil
			}
			return fmt.Errorf("emergency %s already notified with a different guardian set: %w", id, domain.ErrConflict)
		}
		if !current.Status.CanTransitionTo(domain.EmergencyStatusNotified) {
			return fmt.Errorf("emergency %s is %s: %w", id, current.Status, domain.ErrConflict)
		}

		updated, err := s.repo.MarkNotified(ctx, id, guardianIDs, s.now().UTC())
		if err != nil {
			// The record existed a moment ago, so a miss on the guarded
			// update means another transition won the race.
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("emergency %s changed concurrently: %w", id, domain.ErrConflict)
			}
			return fmt.Errorf("mark notified: %w", err)
		}

		result = updated
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.log.InfoContext(ctx, "emergency notified",
			slog.String("emergency_id", id.String()),
			slog.Int("guardians", len(guardianIDs)),
		)
	}

	return result, nil
}

// sameGuardianSet compares guardian ID slices as sets.
func sameGuardianSet(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[uuid.UUID]struct{}, len(a))
	for _, id := range a {
		seen[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			return false
		}
	}
	return true
}
