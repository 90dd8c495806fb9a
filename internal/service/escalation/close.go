package escalation

import (
	"context"
	"fmt"
)

// Resolve closes an emergency as handled by the acting guardian.
func (s *Service) Resolve(ctx context.Context, in CloseInput) (*EmergencyView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	e, err := s.lifecycle.Resolve(ctx, in.EmergencyID, in.ActorID, in.Notes)
	if err != nil {
		return nil, fmt.Errorf("resolve emergency: %w", err)
	}

	view := toView(e)
	return &view, nil
}

// Cancel closes an emergency as a false alarm.
func (s *Service) Cancel(ctx context.Context, in CloseInput) (*EmergencyView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	e, err := s.lifecycle.Cancel(ctx, in.EmergencyID, in.ActorID)
	if err != nil {
		return nil, fmt.Errorf("cancel emergency: %w", err)
	}

	view := toView(e)
	return &view, nil
}
