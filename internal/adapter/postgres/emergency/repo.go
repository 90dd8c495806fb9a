// Package emergency implements the Emergency repository using PostgreSQL.
// Lifecycle transitions are expressed as conditional UPDATEs so that two
// racing transitions on the same record can never both succeed.
package emergency

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carewatch/carewatch-backend/internal/adapter/postgres"
	"github.com/carewatch/carewatch-backend/internal/domain"
)

// Repo provides emergency persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new emergency repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const emergencyColumns = `id, protected_user_id, kind, severity, status,
	latitude, longitude, address, description, notified_guardian_ids,
	created_at, notified_at, resolved_at, cancelled_at,
	resolved_by, cancelled_by, resolution_notes, response_time_seconds`

const insertSQL = `
INSERT INTO emergencies (protected_user_id, kind, severity, status,
	latitude, longitude, address, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + emergencyColumns

const getByIDSQL = `
SELECT ` + emergencyColumns + `
FROM emergencies
WHERE id = $1`

const markNotifiedSQL = `
UPDATE emergencies
SET status = 'NOTIFIED', notified_at = $2, notified_guardian_ids = $3
WHERE id = $1 AND status = 'ACTIVE'
RETURNING ` + emergencyColumns

const resolveSQL = `
UPDATE emergencies
SET status = 'RESOLVED', resolved_at = $2, resolved_by = $3,
    resolution_notes = $4, response_time_seconds = $5
WHERE id = $1 AND status IN ('ACTIVE', 'NOTIFIED')
RETURNING ` + emergencyColumns

const cancelSQL = `
UPDATE emergencies
SET status = 'CANCELLED', cancelled_at = $2, cancelled_by = $3
WHERE id = $1 AND status IN ('ACTIVE', 'NOTIFIED')
RETURNING ` + emergencyColumns

const listOpenSQL = `
SELECT ` + emergencyColumns + `
FROM emergencies
WHERE status IN ('ACTIVE', 'NOTIFIED')
ORDER BY created_at DESC`

const listStaleActiveSQL = `
SELECT ` + emergencyColumns + `
FROM emergencies
WHERE status = 'ACTIVE' AND created_at < $1
ORDER BY created_at ASC`

// Create persists a new emergency record.
func (r *Repo) Create(ctx context.Context, e *domain.Emergency) (*domain.Emergency, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var lat, lon *float64
	var addr *string
	if e.Location != nil {
		lat = &e.Location.Latitude
		lon = &e.Location.Longitude
		if e.Location.Address != "" {
			addr = &e.Location.Address
		}
	}

	row := querier.QueryRow(ctx, insertSQL,
		e.ProtectedUserID, e.Kind, e.Severity, e.Status,
		lat, lon, addr, e.Description, e.CreatedAt,
	)

	created, err := scanEmergency(row)
	if err != nil {
		return nil, postgres.MapError(err, "emergency", e.ID)
	}
	return created, nil
}

// GetByID returns an emergency by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Emergency, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEmergency(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "emergency", id)
	}
	return e, nil
}

// MarkNotified transitions ACTIVE → NOTIFIED, recording the notified
// guardian set and timestamp. Returns ErrNotFound if the record is not
// currently ACTIVE; the caller distinguishes a true miss from a lost race.
func (r *Repo) MarkNotified(ctx context.Context, id uuid.UUID, guardianIDs []uuid.UUID, at time.Time) (*domain.Emergency, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if guardianIDs == nil {
		guardianIDs = []uuid.UUID{}
	}

	e, err := scanEmergency(querier.QueryRow(ctx, markNotifiedSQL, id, at, guardianIDs))
	if err != nil {
		return nil, postgres.MapError(err, "emergency", id)
	}
	return e, nil
}

// Resolve transitions ACTIVE|NOTIFIED → RESOLVED. The response time is
// computed by the caller from the loaded record's creation time.
func (r *Repo) Resolve(ctx context.Context, id, resolvedBy uuid.UUID, notes *string, at time.Time, responseSeconds int64) (*domain.Emergency, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEmergency(querier.QueryRow(ctx, resolveSQL, id, at, resolvedBy, notes, responseSeconds))
	if err != nil {
		return nil, postgres.MapError(err, "emergency", id)
	}
	return e, nil
}

// Cancel transitions ACTIVE|NOTIFIED → CANCELLED.
func (r *Repo) Cancel(ctx context.Context, id, cancelledBy uuid.UUID, at time.Time) (*domain.Emergency, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEmergency(querier.QueryRow(ctx, cancelSQL, id, at, cancelledBy))
	if err != nil {
		return nil, postgres.MapError(err, "emergency", id)
	}
	return e, nil
}

// ListOpen returns all non-terminal emergencies, newest first.
func (r *Repo) ListOpen(ctx context.Context) ([]*domain.Emergency, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listOpenSQL)
	if err != nil {
		return nil, fmt.Errorf("list open emergencies: %w", err)
	}
	defer rows.Close()

	return scanEmergencies(rows)
}

// ListStaleActive returns ACTIVE emergencies created before the threshold,
// oldest first. Used by the sweeper command.
func (r *Repo) ListStaleActive(ctx context.Context, olderThan time.Time) ([]*domain.Emergency, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listStaleActiveSQL, olderThan)
	if err != nil {
		return nil, fmt.Errorf("list stale active emergencies: %w", err)
	}
	defer rows.Close()

	return scanEmergencies(rows)
}

// History returns a page of emergencies matching the filter, newest first,
// along with the total match count.
func (r *Repo) History(ctx context.Context, filter domain.EmergencyFilter) ([]*domain.Emergency, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	where := sq.And{}
	if filter.ProtectedUserID != nil {
		where = append(where, sq.Eq{"protected_user_id": *filter.ProtectedUserID})
	}
	if filter.Status != nil {
		where = append(where, sq.Eq{"status": *filter.Status})
	}

	countSQL, countArgs, err := psql.Select("count(*)").From("emergencies").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count history: %w", err)
	}

	query := psql.Select(emergencyColumns).
		From("emergencies").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit))
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	listSQL, listArgs, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build history query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	items, err := scanEmergencies(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func scanEmergencies(rows pgx.Rows) ([]*domain.Emergency, error) {
	var out []*domain.Emergency
	for rows.Next() {
		e, err := scanEmergency(rows)
		if err != nil {
			return nil, fmt.Errorf("scan emergency: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate emergencies: %w", err)
	}
	return out, nil
}

func scanEmergency(row pgx.Row) (*domain.Emergency, error) {
	var (
		e    domain.Emergency
		lat  *float64
		lon  *float64
		addr *string
	)

	err := row.Scan(
		&e.ID, &e.ProtectedUserID, &e.Kind, &e.Severity, &e.Status,
		&lat, &lon, &addr, &e.Description, &e.NotifiedGuardianIDs,
		&e.CreatedAt, &e.NotifiedAt, &e.ResolvedAt, &e.CancelledAt,
		&e.ResolvedBy, &e.CancelledBy, &e.ResolutionNotes, &e.ResponseTimeSeconds,
	)
	if err != nil {
		return nil, err
	}

	if lat != nil && lon != nil {
		loc := domain.Location{Latitude: *lat, Longitude: *lon}
		if addr != nil {
			loc.Address = *addr
		}
		e.Location = &loc
	}

	return &e, nil
}
