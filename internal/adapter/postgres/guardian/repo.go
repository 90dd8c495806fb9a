// Package guardian implements the read-only guardian-relationship lookup.
// Registration and permission management live in another service; this
// repository only answers "who may be alerted for this protected user".
package guardian

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carewatch/carewatch-backend/internal/adapter/postgres"
	"github.com/carewatch/carewatch-backend/internal/domain"
)

// Repo provides guardian link lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new guardian repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listActiveSQL = `
SELECT guardian_id, display_name, priority, push_token, phone, email
FROM guardian_links
WHERE protected_user_id = $1 AND is_active AND can_receive_alerts
ORDER BY priority ASC, guardian_id ASC`

// ListActiveGuardians returns the active, alert-entitled guardians of the
// protected user ordered by ascending priority. An empty result is not an
// error.
func (r *Repo) ListActiveGuardians(ctx context.Context, protectedUserID uuid.UUID) ([]domain.GuardianRecipient, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listActiveSQL, protectedUserID)
	if err != nil {
		return nil, postgres.MapError(fmt.Errorf("list active guardians: %w", err), "guardian links", protectedUserID)
	}
	defer rows.Close()

	var out []domain.GuardianRecipient
	for rows.Next() {
		var g domain.GuardianRecipient
		err := rows.Scan(&g.GuardianID, &g.DisplayName, &g.Priority,
			&g.Channels.PushToken, &g.Channels.Phone, &g.Channels.Email)
		if err != nil {
			return nil, fmt.Errorf("scan guardian link: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate guardian links: %w", err)
	}

	return out, nil
}
