package escalation

import (
	"time"

	"github.com/google/uuid"

	"github.com/carewatch/carewatch-backend/internal/domain"
	"github.com/carewatch/carewatch-backend/internal/service/fanout"
)

// EmergencyView is the read model of an emergency record.
type EmergencyView struct {
	ID                    uuid.UUID
	ProtectedUserID       uuid.UUID
	Kind                  domain.EmergencyKind
	Severity              domain.Severity
	Status                domain.EmergencyStatus
	Location              *domain.Location
	Description           *string
	CreatedAt             time.Time
	NotifiedAt            *time.Time
	ResolvedAt            *time.Time
	CancelledAt           *time.Time
	NotifiedGuardianCount int
	ResponseTimeSeconds   *int64
}

// DispatchView is a single delivery attempt in a raise result.
type DispatchView struct {
	GuardianID uuid.UUID
	Channel    domain.Channel
	Success    bool
	ErrorKind  domain.DispatchErrorKind
}

// NotificationView summarises the fan-out of a raise.
type NotificationView struct {
	GuardiansAttempted int
	GuardiansReached   int
	Outcomes           []DispatchView
}

// RaiseResult combines the persisted record with the fan-out summary.
type RaiseResult struct {
	Emergency    EmergencyView
	Notification NotificationView
}

func toView(e *domain.Emergency) EmergencyView {
	return EmergencyView{
		ID:                    e.ID,
		ProtectedUserID:       e.ProtectedUserID,
		Kind:                  e.Kind,
		Severity:              e.Severity,
		Status:                e.Status,
		Location:              e.Location,
		Description:           e.Description,
		CreatedAt:             e.CreatedAt,
		NotifiedAt:            e.NotifiedAt,
		ResolvedAt:            e.ResolvedAt,
		CancelledAt:           e.CancelledAt,
		NotifiedGuardianCount: len(e.NotifiedGuardianIDs),
		ResponseTimeSeconds:   e.ResponseTimeSeconds,
	}
}

func toNotificationView(report fanout.Report) NotificationView {
	view := NotificationView{
		GuardiansAttempted: report.GuardiansAttempted,
		GuardiansReached:   report.GuardiansReached,
	}
	for _, g := range report.PerGuardian {
		for _, o := range g.Outcomes {
			view.Outcomes = append(view.Outcomes, DispatchView{
				GuardianID: o.GuardianID,
				Channel:    o.Channel,
				Success:    o.Success,
				ErrorKind:  o.ErrorKind,
			})
		}
	}
	return view
}
