// Package problem implements the Problem repository using PostgreSQL.
// Fixed-shape queries use raw SQL constants; list and eligibility queries
// are built dynamically with squirrel because their predicates depend on
// caller-supplied filters.
package problem

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sambangiadharsh/algomind/internal/adapter/postgres"
	"github.com/sambangiadharsh/algomind/internal/domain"
)

// Repo provides problem persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new problem repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const problemColumns = `id, user_id, title, link, difficulty, tags, company_tags, status,
archived, notes, revision_interval_days, last_revised_at, next_revision_at, created_at, updated_at`

const createSQL = `
INSERT INTO problems (id, user_id, title, link, difficulty, tags, company_tags, status,
                      archived, notes, revision_interval_days, next_revision_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
RETURNING ` + problemColumns

const getByIDSQL = `
SELECT ` + problemColumns + `
FROM problems
WHERE id = $1 AND user_id = $2`

const updateSQL = `
UPDATE problems
SET title = $3, link = $4, difficulty = $5, tags = $6, company_tags = $7,
    status = $8, archived = $9, notes = $10, next_revision_at = $11, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + problemColumns

const updateRevisionSQL = `
UPDATE problems
SET status = $3, revision_interval_days = $4, last_revised_at = $5,
    next_revision_at = $6, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + problemColumns

const deleteSQL = `
DELETE FROM problems WHERE id = $1 AND user_id = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a problem by primary key filtered by user_id.
// Returns domain.ErrNotFound if the problem does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, problemID uuid.UUID) (*domain.Problem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, problemID, userID)

	p, err := scanProblem(row)
	if err != nil {
		return nil, postgres.MapError(err, "problem", problemID)
	}

	return p, nil
}

// List returns problems for a user matching the filter, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.ProblemFilter) ([]*domain.Problem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := psql.Select(problemColumns).
		From("problems").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if !filter.IncludeArchived {
		q = q.Where(squirrel.Eq{"archived": false})
	}
	if filter.Difficulty != "" {
		q = q.Where(squirrel.Eq{"difficulty": string(filter.Difficulty)})
	}
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"status": string(filter.Status)})
	}
	if filter.Tag != "" {
		q = q.Where("? = ANY(tags)", filter.Tag)
	}
	if filter.CompanyTag != "" {
		q = q.Where("? = ANY(company_tags)", filter.CompanyTag)
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	defer rows.Close()

	return scanProblems(rows)
}

// FindEligible returns problems due for revision at the given instant:
// next_revision_at <= now, not archived, not mastered. Mode-specific tag
// filtering happens in the service layer so it stays a pure function.
// Ordered by created_at so results are stable across calls within a day.
func (r *Repo) FindEligible(ctx context.Context, userID uuid.UUID, now time.Time) ([]*domain.Problem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := psql.Select(problemColumns).
		From("problems").
		Where(squirrel.Eq{"user_id": userID, "archived": false}).
		Where(squirrel.NotEq{"status": string(domain.ProblemStatusMastered)}).
		Where(squirrel.LtOrEq{"next_revision_at": now}).
		OrderBy("created_at ASC", "id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build eligibility query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find eligible problems: %w", err)
	}
	defer rows.Close()

	return scanProblems(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new problem and returns the persisted row.
// A unique index on (user_id, lower(title)) maps duplicates to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.Problem) (*domain.Problem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		p.ID,
		p.UserID,
		p.Title,
		p.Link,
		string(p.Difficulty),
		p.Tags,
		p.CompanyTags,
		string(p.Status),
		p.Archived,
		p.Notes,
		p.RevisionIntervalDays,
		p.NextRevisionAt.UTC(),
		now,
	)

	created, err := scanProblem(row)
	if err != nil {
		return nil, postgres.MapError(err, "problem", p.ID)
	}

	return created, nil
}

// Update rewrites the user-editable fields of a problem.
func (r *Repo) Update(ctx context.Context, p *domain.Problem) (*domain.Problem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateSQL,
		p.ID,
		p.UserID,
		p.Title,
		p.Link,
		string(p.Difficulty),
		p.Tags,
		p.CompanyTags,
		string(p.Status),
		p.Archived,
		p.Notes,
		p.NextRevisionAt.UTC(),
	)

	updated, err := scanProblem(row)
	if err != nil {
		return nil, postgres.MapError(err, "problem", p.ID)
	}

	return updated, nil
}

// UpdateRevision applies post-review scheduling fields to a problem.
func (r *Repo) UpdateRevision(ctx context.Context, userID, problemID uuid.UUID, params domain.RevisionUpdateParams) (*domain.Problem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateRevisionSQL,
		problemID,
		userID,
		string(params.Status),
		params.RevisionIntervalDays,
		params.LastRevisedAt.UTC(),
		params.NextRevisionAt.UTC(),
	)

	updated, err := scanProblem(row)
	if err != nil {
		return nil, postgres.MapError(err, "problem", problemID)
	}

	return updated, nil
}

// Delete removes a problem. Returns domain.ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, userID, problemID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, problemID, userID)
	if err != nil {
		return postgres.MapError(err, "problem", problemID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("problem %s: %w", problemID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanProblem(row pgx.Row) (*domain.Problem, error) {
	var (
		p          domain.Problem
		difficulty string
		status     string
	)

	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&p.Link,
		&difficulty,
		&p.Tags,
		&p.CompanyTags,
		&status,
		&p.Archived,
		&p.Notes,
		&p.RevisionIntervalDays,
		&p.LastRevisedAt,
		&p.NextRevisionAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Difficulty = domain.Difficulty(difficulty)
	p.Status = domain.ProblemStatus(status)

	return &p, nil
}

func scanProblems(rows pgx.Rows) ([]*domain.Problem, error) {
	var problems []*domain.Problem
	for rows.Next() {
		p, err := scanProblem(rows)
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if problems == nil {
		problems = []*domain.Problem{}
	}

	return problems, nil
}
