package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/carewatch/carewatch-backend/internal/domain"
)

// Resolve closes an emergency as handled by the given guardian and
// records the response time from creation to resolution. Resolving a
// terminal record is a conflict, not an idempotent success, so callers
// can tell who actually closed it.
func (s *Service) Resolve(ctx context.Context, id, resolvedBy uuid.UUID, notes *string) (*domain.Emergency, error) {
	var (
		result          *domain.Emergency
		responseSeconds int64
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get emergency: %w", err)
		}
		if !current.Status.CanTransitionTo(domain.EmergencyStatusResolved) {
			return fmt.Errorf("emergency %s is %s: %w", id, current.Status, domain.ErrConflict)
		}

		resolvedAt := s.now().UTC()
		responseSeconds = current.ResponseTime(resolvedAt)

		updated, err := s.repo.Resolve(ctx, id, resolvedBy, notes, resolvedAt, responseSeconds)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("emergency %s changed concurrently: %w", id, domain.ErrConflict)
			}
			return fmt.Errorf("resolve emergency: %w", err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "emergency resolved",
		slog.String("emergency_id", id.String()),
		slog.String("resolved_by", resolvedBy.String()),
		slog.Int64("response_time_seconds", responseSeconds),
	)

	return result, nil
}

// Cancel closes an emergency as a false alarm. Like Resolve, it wins or
// loses atomically against concurrent transitions.
func (s *Service) Cancel(ctx context.Context, id, cancelledBy uuid.UUID) (*domain.Emergency, error) {
	var result *domain.Emergency

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get emergency: %w", err)
		}
		if !current.Status.CanTransitionTo(domain.EmergencyStatusCancelled) {
			return fmt.Errorf("emergency %s is %s: %w", id, current.Status, domain.ErrConflict)
		}

		updated, err := s.repo.Cancel(ctx, id, cancelledBy, s.now().UTC())
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("emergency %s changed concurrently: %w", id, domain.ErrConflict)
			}
			return fmt.Errorf("cancel emergency: %w", err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "emergency cancelled",
		slog.String("emergency_id", id.String()),
		slog.String("cancelled_by", cancelledBy.String()),
	)

	return result, nil
}
