package escalation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carewatch/carewatch-backend/internal/domain"
)

// RaiseInput holds the parameters of a trigger event.
type RaiseInput struct {
	ProtectedUserID uuid.UUID
	Kind            domain.EmergencyKind
	Confidence      *float64
	Location        *domain.Location
	Description     *string
	OccurredAt      time.Time
}

// Validate checks all fields and collects all errors.
func (i RaiseInput) Validate() error {
	var errs []domain.FieldError

	if i.ProtectedUserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "protectedUserId", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: fmt.Sprintf("unknown kind %q", i.Kind)})
	}
	if i.Confidence != nil && (math.IsNaN(*i.Confidence) || math.IsInf(*i.Confidence, 0)) {
		errs = append(errs, domain.FieldError{Field: "confidence", Message: "must be a finite number"})
	}
	if i.Location != nil {
		if i.Location.Latitude < -90 || i.Location.Latitude > 90 {
			errs = append(errs, domain.FieldError{Field: "location.latitude", Message: "must be between -90 and 90"})
		}
		if i.Location.Longitude < -180 || i.Location.Longitude > 180 {
			errs = append(errs, domain.FieldError{Field: "location.longitude", Message: "must be between -180 and 180"})
		}
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i RaiseInput) toEvent() domain.TriggerEvent {
	occurredAt := i.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}
	return domain.TriggerEvent{
		ProtectedUserID: i.ProtectedUserID,
		Kind:            i.Kind,
		Confidence:      i.Confidence,
		Location:        i.Location,
		Description:     i.Description,
		OccurredAt:      occurredAt,
	}
}

// CloseInput holds the parameters for resolving or cancelling an
// emergency. Notes are only persisted on resolution.
type CloseInput struct {
	EmergencyID uuid.UUID
	ActorID     uuid.UUID
	Notes       *string
}

// Validate checks all fields and collects all errors.
func (i CloseInput) Validate() error {
	var errs []domain.FieldError
	if i.EmergencyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "emergencyId", Message: "required"})
	}
	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actorId", Message: "required"})
	}
	if i.Notes != nil && len(strings.TrimSpace(*i.Notes)) > 2000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 2000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// HistoryInput holds the parameters for listing past emergencies.
type HistoryInput struct {
	ProtectedUserID *uuid.UUID
	Status          *domain.EmergencyStatus
	Limit           int
	Offset          int
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: fmt.Sprintf("unknown status %q", *i.Status)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
