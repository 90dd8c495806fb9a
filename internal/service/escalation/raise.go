package escalation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/carewatch/carewatch-backend/internal/service/escalation/severity"
)

// Raise turns a trigger event into a persisted, escalated emergency.
// The record is created first so that no trigger is ever lost: resolver
// and delivery failures leave it ACTIVE for the stale-alert sweeper to
// pick up.
func (s *Service) Raise(ctx context.Context, in RaiseInput) (*RaiseResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	sev := severity.Classify(s.thresholds, in.Kind, in.Confidence)

	e, err := s.lifecycle.Create(ctx, in.toEvent(), sev)
	if err != nil {
		return nil, fmt.Errorf("create emergency: %w", err)
	}

	log := s.log.With(
		slog.String("emergency_id", e.ID.String()),
		slog.String("protected_user_id", e.ProtectedUserID.String()),
		slog.String("severity", e.Severity.String()),
	)

	recipients, err := s.resolver.Resolve(ctx, e.ProtectedUserID)
	if err != nil {
		log.ErrorContext(ctx, "guardian resolution failed, emergency left active",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("resolve guardians for emergency %s: %w", e.ID, err)
	}

	if len(recipients) == 0 {
		log.WarnContext(ctx, "no guardians configured, emergency left active")
		return &RaiseResult{Emergency: toView(e)}, nil
	}

	report := s.dispatcher.Dispatch(ctx, e, recipients)

	if report.GuardiansReached == 0 {
		log.WarnContext(ctx, "no guardian reached, emergency left active",
			slog.Int("attempted", report.GuardiansAttempted))
		return &RaiseResult{
			Emergency:    toView(e),
			Notification: toNotificationView(report),
		}, nil
	}

	notified, err := s.lifecycle.MarkNotified(ctx, e.ID, report.ReachedGuardianIDs())
	if err != nil {
		// The alerts already went out; surface the failed state change
		// rather than pretending the record advanced.
		log.ErrorContext(ctx, "mark notified failed after successful fan-out",
			slog.Int("reached", report.GuardiansReached),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("mark emergency %s notified: %w", e.ID, err)
	}

	return &RaiseResult{
		Emergency:    toView(notified),
		Notification: toNotificationView(report),
	}, nil
}
