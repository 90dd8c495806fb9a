package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carewatch/carewatch-backend/internal/domain"
)

// Get returns a single emergency record.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Emergency, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get emergency: %w", err)
	}
	return e, nil
}

// ListOpen returns every ACTIVE and NOTIFIED emergency, newest first.
func (s *Service) ListOpen(ctx context.Context) ([]*domain.Emergency, error) {
	items, err := s.repo.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open emergencies: %w", err)
	}
	return items, nil
}

// ListStaleActive returns emergencies still ACTIVE past the given age.
// These are records whose fan-out never confirmed a single guardian and
// which need operator attention.
func (s *Service) ListStaleActive(ctx context.Context, maxAge time.Duration) ([]*domain.Emergency, error) {
	cutoff := s.now().UTC().Add(-maxAge)
	items, err := s.repo.ListStaleActive(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list stale emergencies: %w", err)
	}
	return items, nil
}

// History returns a page of emergency records matching the filter,
// newest first, along with the total match count.
func (s *Service) History(ctx context.Context, filter domain.EmergencyFilter) (domain.Page[*domain.Emergency], error) {
	items, total, err := s.repo.History(ctx, filter)
	if err != nil {
		return domain.Page[*domain.Emergency]{}, fmt.Errorf("emergency history: %w", err)
	}
	return domain.Page[*domain.Emergency]{Items: items, Total: total}, nil
}
