// Package lifecycle owns the emergency record state machine. Every write
// goes through a guarded transition: terminal records never change, and
// concurrent transitions on the same record collapse to exactly one
// winner.
package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/carewatch/carewatch-backend/internal/domain"
)

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type emergencyRepo interface {
	Create(ctx context.Context, e *domain.Emergency) (*domain.Emergency, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Emergency, error)
	MarkNotified(ctx context.Context, id uuid.UUID, guardianIDs []uuid.UUID, at time.Time) (*domain.Emergency, error)
	Resolve(ctx context.Context, id, resolvedBy uuid.UUID, notes *string, at time.Time, responseSeconds int64) (*domain.Emergency, error)
	Cancel(ctx context.Context, id, cancelledBy uuid.UUID, at time.Time) (*domain.Emergency, error)
	ListOpen(ctx context.Context) ([]*domain.Emergency, error)
	ListStaleActive(ctx context.Context, olderThan time.Time) ([]*domain.Emergency, error)
	History(ctx context.Context, filter domain.EmergencyFilter) ([]*domain.Emergency, int, error)
}

// Service manages emergency records and their state transitions.
type Service struct {
	repo emergencyRepo
	tx   txManager
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a new emergency lifecycle service.
func NewService(logger *slog.Logger, repo emergencyRepo, tx txManager) *Service {
	return &Service{
		repo: repo,
		tx:   tx,
		log:  logger.With("service", "lifecycle"),
		now:  time.Now,
	}
}
