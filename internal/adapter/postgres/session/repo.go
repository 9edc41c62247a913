// Package session implements the RevisionSession repository using PostgreSQL.
// All queries use raw SQL since the entries column is JSONB requiring custom
// marshal/unmarshal logic. Two invariants live here:
//
//   - one session per (user_id, day_key), enforced by a unique constraint;
//     Create maps the violation to domain.ErrAlreadyExists so the service can
//     fall back to re-reading the winner's row (CreateIfAbsent semantics);
//   - entry mutations are optimistic: UpdateEntries only writes when the
//     caller's version matches, and reports domain.ErrConflict otherwise.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sambangiadharsh/algomind/internal/adapter/postgres"
	"github.com/sambangiadharsh/algomind/internal/domain"
)

// Repo provides revision session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, day_key, entries, version, created_at, updated_at`

const createSQL = `
INSERT INTO revision_sessions (id, user_id, day_key, entries, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, 1, $5, $5)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM revision_sessions
WHERE id = $1 AND user_id = $2`

const getByDayKeySQL = `
SELECT ` + sessionColumns + `
FROM revision_sessions
WHERE user_id = $1 AND day_key = $2`

const updateEntriesSQL = `
UPDATE revision_sessions
SET entries = $4, version = version + 1, updated_at = now()
WHERE id = $1 AND user_id = $2 AND version = $3
RETURNING ` + sessionColumns

const listSinceSQL = `
SELECT ` + sessionColumns + `
FROM revision_sessions
WHERE user_id = $1 AND day_key >= $2
ORDER BY day_key DESC`

const countByUserSQL = `
SELECT count(*) FROM revision_sessions WHERE user_id = $1`

const countCompletedDaysSQL = `
SELECT count(*)
FROM revision_sessions s
WHERE s.user_id = $1
  AND jsonb_array_length(s.entries) > 0
  AND NOT EXISTS (
      SELECT 1 FROM jsonb_array_elements(s.entries) e
      WHERE e->>'status' <> 'COMPLETED')`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session by primary key filtered by user_id.
// Returns domain.ErrNotFound if the session does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.RevisionSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, sessionID, userID)

	session, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}

	return session, nil
}

// GetByDayKey returns the user's session for a calendar day ("2006-01-02").
// Returns domain.ErrNotFound if no session exists for that day.
func (r *Repo) GetByDayKey(ctx context.Context, userID uuid.UUID, dayKey string) (*domain.RevisionSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByDayKeySQL, userID, dayKey)

	session, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", uuid.Nil)
	}

	return session, nil
}

// ListSince returns all sessions for a user on or after fromDayKey,
// newest day first.
func (r *Repo) ListSince(ctx context.Context, userID uuid.UUID, fromDayKey string) ([]*domain.RevisionSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSinceSQL, userID, fromDayKey)
	if err != nil {
		return nil, fmt.Errorf("list sessions since %s: %w", fromDayKey, err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// CountByUser returns the total number of sessions ever created for a user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countByUserSQL, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}

	return total, nil
}

// CountCompletedDays returns how many sessions are fully completed
// (at least one entry, every entry COMPLETED), across all time.
func (r *Repo) CountCompletedDays(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countCompletedDaysSQL, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("count completed days: %w", err)
	}

	return total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new session row. The unique constraint on (user_id, day_key)
// ensures one session per day; the loser of a concurrent create receives
// domain.ErrAlreadyExists and must re-read with GetByDayKey.
func (r *Repo) Create(ctx context.Context, session *domain.RevisionSession) (*domain.RevisionSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	entriesBytes, err := marshalEntries(session.Entries)
	if err != nil {
		return nil, fmt.Errorf("session %s: marshal entries: %w", session.ID, err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		session.ID,
		session.UserID,
		session.DayKey,
		entriesBytes,
		now,
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", session.ID)
	}

	return created, nil
}

// UpdateEntries replaces the full entry list, guarded by an optimistic version
// check. Returns domain.ErrConflict when the stored version moved on (another
// refresh or review won the race); callers re-read and retry.
func (r *Repo) UpdateEntries(ctx context.Context, userID, sessionID uuid.UUID, entries []domain.SessionEntry, expectedVersion int) (*domain.RevisionSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	entriesBytes, err := marshalEntries(entries)
	if err != nil {
		return nil, fmt.Errorf("session %s: marshal entries: %w", sessionID, err)
	}

	row := querier.QueryRow(ctx, updateEntriesSQL, sessionID, userID, expectedVersion, entriesBytes)

	updated, err := scanSession(row)
	if err == nil {
		return updated, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		// Distinguish "version moved" from "no such session".
		if _, getErr := r.GetByID(ctx, userID, sessionID); getErr != nil {
			return nil, getErr
		}
		return nil, fmt.Errorf("session %s: stale version %d: %w", sessionID, expectedVersion, domain.ErrConflict)
	}

	return nil, postgres.MapError(err, "session", sessionID)
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.RevisionSession, error) {
	var (
		id          uuid.UUID
		userID      uuid.UUID
		dayKey      time.Time
		entriesJSON []byte
		version     int
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(&id, &userID, &dayKey, &entriesJSON, &version, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	entries, err := unmarshalEntries(entriesJSON)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}

	return &domain.RevisionSession{
		ID:        id,
		UserID:    userID,
		DayKey:    dayKey.Format("2006-01-02"),
		Entries:   entries,
		Version:   version,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func scanSessions(rows pgx.Rows) ([]*domain.RevisionSession, error) {
	var sessions []*domain.RevisionSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if sessions == nil {
		sessions = []*domain.RevisionSession{}
	}

	return sessions, nil
}

// ---------------------------------------------------------------------------
// JSONB serialization helpers for session entries
// ---------------------------------------------------------------------------

// sessionEntryJSON is an intermediate struct for JSON marshaling of
// domain.SessionEntry. Domain types have no json tags, so the repo layer
// handles serialization.
type sessionEntryJSON struct {
	ProblemID  uuid.UUID  `json:"problem_id"`
	Difficulty string     `json:"difficulty"`
	Status     string     `json:"status"`
	Confidence *string    `json:"confidence,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
}

func marshalEntries(entries []domain.SessionEntry) ([]byte, error) {
	out := make([]sessionEntryJSON, len(entries))
	for i, e := range entries {
		out[i] = sessionEntryJSON{
			ProblemID:  e.ProblemID,
			Difficulty: string(e.Difficulty),
			Status:     string(e.Status),
			ReviewedAt: e.ReviewedAt,
		}
		if e.Confidence != nil {
			c := string(*e.Confidence)
			out[i].Confidence = &c
		}
	}

	return json.Marshal(out)
}

func unmarshalEntries(data []byte) ([]domain.SessionEntry, error) {
	if len(data) == 0 {
		return []domain.SessionEntry{}, nil
	}

	var raw []sessionEntryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal session entries: %w", err)
	}

	entries := make([]domain.SessionEntry, len(raw))
	for i, e := range raw {
		entries[i] = domain.SessionEntry{
			ProblemID:  e.ProblemID,
			Difficulty: domain.Difficulty(e.Difficulty),
			Status:     domain.EntryStatus(e.Status),
			ReviewedAt: e.ReviewedAt,
		}
		if e.Confidence != nil {
			c := domain.Confidence(*e.Confidence)
			entries[i].Confidence = &c
		}
	}

	return entries, nil
}
