package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/carewatch/carewatch-backend/internal/domain"
)

// Create persists a new emergency record in the ACTIVE state. The
// severity has already been classified by the caller; every trigger
// produces its own record even while another emergency is open for the
// same person.
func (s *Service) Create(ctx context.Context, event domain.TriggerEvent, severity domain.Severity) (*domain.Emergency, error) {
	var fieldErrs []domain.FieldError
	if event.ProtectedUserID == uuid.Nil {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "protectedUserId", Message: "is required"})
	}
	if !event.Kind.IsValid() {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "kind", Message: fmt.Sprintf("unknown kind %q", event.Kind)})
	}
	if !severity.IsValid() {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "severity", Message: fmt.Sprintf("unknown severity %q", severity)})
	}
	if len(fieldErrs) > 0 {
		return nil, domain.NewValidationErrors(fieldErrs)
	}

	e := &domain.Emergency{
		ProtectedUserID: event.ProtectedUserID,
		Kind:            event.Kind,
		Severity:        severity,
		Status:          domain.EmergencyStatusActive,
		Location:        event.Location,
		Description:     event.Description,
		CreatedAt:       s.now().UTC(),
	}

	created, err := s.repo.Create(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("create emergency: %w", err)
	}

	s.log.InfoContext(ctx, "emergency created",
		slog.String("emergency_id", created.ID.String()),
		slog.String("protected_user_id", created.ProtectedUserID.String()),
		slog.String("kind", created.Kind.String()),
		slog.String("severity", created.Severity.String()),
	)

	return created, nil
}
