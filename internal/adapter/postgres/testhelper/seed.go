package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carewatch/carewatch-backend/internal/domain"
)

// GuardianLinkParams controls the guardian link created by SeedGuardianLink.
// Zero-value contact fields are stored as NULL.
type GuardianLinkParams struct {
	Priority         int
	PushToken        string
	Phone            string
	Email            string
	Inactive         bool
	AlertsSuppressed bool
}

// SeedGuardianLink creates a guardian link for the protected user and
// returns the generated guardian ID.
func SeedGuardianLink(t *testing.T, pool *pgxpool.Pool, protectedUserID uuid.UUID, params GuardianLinkParams) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	guardianID := uuid.New()

	var pushToken, phone, email *string
	if params.PushToken != "" {
		pushToken = &params.PushToken
	}
	if params.Phone != "" {
		phone = &params.Phone
	}
	if params.Email != "" {
		email = &params.Email
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO guardian_links (protected_user_id, guardian_id, display_name, priority,
		    push_token, phone, email, is_active, can_receive_alerts)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		protectedUserID, guardianID, "Guardian "+guardianID.String()[:8], params.Priority,
		pushToken, phone, email, !params.Inactive, !params.AlertsSuppressed,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGuardianLink insert: %v", err)
	}

	return guardianID
}

// SeedEmergency creates an ACTIVE emergency for the protected user and
// returns the persisted record.
func SeedEmergency(t *testing.T, pool *pgxpool.Pool, protectedUserID uuid.UUID, kind domain.EmergencyKind, severity domain.Severity) *domain.Emergency {
	t.Helper()
	ctx := context.Background()

	e := &domain.Emergency{
		ProtectedUserID: protectedUserID,
		Kind:            kind,
		Severity:        severity,
		Status:          domain.EmergencyStatusActive,
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO emergencies (protected_user_id, kind, severity, status, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		e.ProtectedUserID, e.Kind, e.Severity, e.Status, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedEmergency insert: %v", err)
	}

	return e
}
