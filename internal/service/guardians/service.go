// Package guardians implements the guardian resolution policy for
// emergency alerts. Permission computation belongs to the external
// guardian-relationship collaborator; this service owns only the ordering
// and shaping of recipients for a single fan-out operation.
package guardians

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/carewatch/carewatch-backend/internal/domain"
)

type guardianLookup interface {
	ListActiveGuardians(ctx context.Context, protectedUserID uuid.UUID) ([]domain.GuardianRecipient, error)
}

// Service resolves the ordered, permission-filtered recipients of an alert.
type Service struct {
	lookup guardianLookup
	log    *slog.Logger
}

// NewService creates a new guardian resolution service.
func NewService(logger *slog.Logger, lookup guardianLookup) *Service {
	return &Service{
		lookup: lookup,
		log:    logger.With("service", "guardians"),
	}
}

// Resolve returns the guardians entitled to emergency alerts for the
// protected user, ordered by ascending priority (ties broken by guardian
// ID for determinism). An empty list is a valid result, not an error.
//
// A lookup failure is wrapped as ErrResolverUnavailable: without any list
// the caller cannot make a safety decision and must surface the outage.
func (s *Service) Resolve(ctx context.Context, protectedUserID uuid.UUID) ([]domain.GuardianRecipient, error) {
	recipients, err := s.lookup.ListActiveGuardians(ctx, protectedUserID)
	if err != nil {
		s.log.ErrorContext(ctx, "guardian lookup failed",
			slog.String("protected_user_id", protectedUserID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("list active guardians: %v: %w", err, domain.ErrResolverUnavailable)
	}

	sort.SliceStable(recipients, func(i, j int) bool {
		if recipients[i].Priority != recipients[j].Priority {
			return recipients[i].Priority < recipients[j].Priority
		}
		return recipients[i].GuardianID.String() < recipients[j].GuardianID.String()
	})

	s.log.DebugContext(ctx, "guardians resolved",
		slog.String("protected_user_id", protectedUserID.String()),
		slog.Int("count", len(recipients)),
	)

	return recipients, nil
}
