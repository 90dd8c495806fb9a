package escalation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/carewatch/carewatch-backend/internal/domain"
)

const defaultHistoryLimit = 50

// GetStatus returns the current state of a single emergency.
func (s *Service) GetStatus(ctx context.Context, id uuid.UUID) (*EmergencyView, error) {
	e, err := s.lifecycle.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get emergency: %w", err)
	}
	view := toView(e)
	return &view, nil
}

// ListActive returns every open emergency, newest first.
func (s *Service) ListActive(ctx context.Context) ([]EmergencyView, error) {
	items, err := s.lifecycle.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active emergencies: %w", err)
	}
	views := make([]EmergencyView, len(items))
	for i, e := range items {
		views[i] = toView(e)
	}
	return views, nil
}

// History returns a page of past emergencies, newest first. The limit is
// defaulted and clamped to the configured maximum.
func (s *Service) History(ctx context.Context, in HistoryInput) (domain.Page[EmergencyView], error) {
	if err := in.Validate(); err != nil {
		return domain.Page[EmergencyView]{}, err
	}

	limit := in.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	page, err := s.lifecycle.History(ctx, domain.EmergencyFilter{
		ProtectedUserID: in.ProtectedUserID,
		Status:          in.Status,
		Limit:           limit,
		Offset:          in.Offset,
	})
	if err != nil {
		return domain.Page[EmergencyView]{}, fmt.Errorf("emergency history: %w", err)
	}

	views := make([]EmergencyView, len(page.Items))
	for i, e := range page.Items {
		views[i] = toView(e)
	}
	return domain.Page[EmergencyView]{Items: views, Total: page.Total}, nil
}
