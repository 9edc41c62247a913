// Package settings implements the RevisionSettings repository using PostgreSQL.
// The revision engine only reads snapshots; Save exists for the settings
// endpoint and upserts the single row per user.
package settings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sambangiadharsh/algomind/internal/adapter/postgres"
	"github.com/sambangiadharsh/algomind/internal/domain"
)

// Repo provides revision settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const settingsColumns = `user_id, easy_count, medium_count, hard_count, mode, topics, companies, updated_at`

const getByUserIDSQL = `
SELECT ` + settingsColumns + `
FROM revision_settings
WHERE user_id = $1`

const saveSQL = `
INSERT INTO revision_settings (user_id, easy_count, medium_count, hard_count, mode, topics, companies, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
ON CONFLICT (user_id) DO UPDATE
SET easy_count = EXCLUDED.easy_count,
    medium_count = EXCLUDED.medium_count,
    hard_count = EXCLUDED.hard_count,
    mode = EXCLUDED.mode,
    topics = EXCLUDED.topics,
    companies = EXCLUDED.companies,
    updated_at = now()
RETURNING ` + settingsColumns

// GetByUserID returns the user's settings snapshot.
// Returns domain.ErrNotFound if the user never saved settings; callers fall
// back to domain.DefaultRevisionSettings.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.RevisionSettings, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByUserIDSQL, userID)

	s, err := scanSettings(row)
	if err != nil {
		return nil, postgres.MapError(err, "settings", userID)
	}

	return s, nil
}

// Save upserts the settings row for a user.
func (r *Repo) Save(ctx context.Context, s *domain.RevisionSettings) (*domain.RevisionSettings, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, saveSQL,
		s.UserID,
		s.EasyCount,
		s.MediumCount,
		s.HardCount,
		string(s.Mode),
		s.Topics,
		s.Companies,
	)

	saved, err := scanSettings(row)
	if err != nil {
		return nil, postgres.MapError(err, "settings", s.UserID)
	}

	return saved, nil
}

func scanSettings(row pgx.Row) (*domain.RevisionSettings, error) {
	var (
		s         domain.RevisionSettings
		mode      string
		updatedAt time.Time
	)

	if err := row.Scan(
		&s.UserID,
		&s.EasyCount,
		&s.MediumCount,
		&s.HardCount,
		&mode,
		&s.Topics,
		&s.Companies,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	s.Mode = domain.RevisionMode(mode)
	s.UpdatedAt = updatedAt

	return &s, nil
}
