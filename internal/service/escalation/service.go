// Package escalation coordinates the path from a raw trigger event to
// notified guardians: severity classification, record creation, guardian
// resolution and the notification fan-out.
package escalation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/carewatch/carewatch-backend/internal/domain"
	"github.com/carewatch/carewatch-backend/internal/service/escalation/severity"
	"github.com/carewatch/carewatch-backend/internal/service/fanout"
)

type lifecycleManager interface {
	Create(ctx context.Context, event domain.TriggerEvent, severity domain.Severity) (*domain.Emergency, error)
	MarkNotified(ctx context.Context, id uuid.UUID, guardianIDs []uuid.UUID) (*domain.Emergency, error)
	Resolve(ctx context.Context, id, resolvedBy uuid.UUID, notes *string) (*domain.Emergency, error)
	Cancel(ctx context.Context, id, cancelledBy uuid.UUID) (*domain.Emergency, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Emergency, error)
	ListOpen(ctx context.Context) ([]*domain.Emergency, error)
	History(ctx context.Context, filter domain.EmergencyFilter) (domain.Page[*domain.Emergency], error)
}

type guardianResolver interface {
	Resolve(ctx context.Context, protectedUserID uuid.UUID) ([]domain.GuardianRecipient, error)
}

type alertDispatcher interface {
	Dispatch(ctx context.Context, e *domain.Emergency, recipients []domain.GuardianRecipient) fanout.Report
}

// Service is the escalation coordinator.
type Service struct {
	lifecycle  lifecycleManager
	resolver   guardianResolver
	dispatcher alertDispatcher
	thresholds severity.Thresholds
	maxLimit   int
	log        *slog.Logger
}

// NewService creates a new escalation service. maxLimit caps the page
// size of history queries.
func NewService(
	logger *slog.Logger,
	lifecycle lifecycleManager,
	resolver guardianResolver,
	dispatcher alertDispatcher,
	thresholds severity.Thresholds,
	maxLimit int,
) *Service {
	return &Service{
		lifecycle:  lifecycle,
		resolver:   resolver,
		dispatcher: dispatcher,
		thresholds: thresholds,
		maxLimit:   maxLimit,
		log:        logger.With("service", "escalation"),
	}
}
