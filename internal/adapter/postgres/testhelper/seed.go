package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sambangiadharsh/algomind/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// ProblemOption mutates a problem before it is inserted.
type ProblemOption func(*domain.Problem)

// WithDifficulty sets the difficulty.
func WithDifficulty(d domain.Difficulty) ProblemOption {
	return func(p *domain.Problem) { p.Difficulty = d }
}

// WithStatus sets the status.
func WithStatus(s domain.ProblemStatus) ProblemOption {
	return func(p *domain.Problem) { p.Status = s }
}

// WithArchived marks the problem archived and pins the far-future sentinel.
func WithArchived() ProblemOption {
	return func(p *domain.Problem) {
		p.Archived = true
		p.Status = domain.ProblemStatusMastered
		p.NextRevisionAt = domain.ArchivedNextRevision
	}
}

// WithNextRevisionAt sets when the problem next becomes due.
func WithNextRevisionAt(at time.Time) ProblemOption {
	return func(p *domain.Problem) { p.NextRevisionAt = at }
}

// WithTags sets the topic tags.
func WithTags(tags ...string) ProblemOption {
	return func(p *domain.Problem) { p.Tags = tags }
}

// SeedProblem inserts a problem for the user. Defaults: EASY, PENDING,
// immediately due. Returns the inserted row.
func SeedProblem(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, opts ...ProblemOption) domain.Problem {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Problem{
		ID:                   uuid.New(),
		UserID:               userID,
		Title:                "Problem " + suffix,
		Link:                 "https://example.com/problems/" + suffix,
		Difficulty:           domain.DifficultyEasy,
		Tags:                 []string{"arrays"},
		CompanyTags:          []string{},
		Status:               domain.ProblemStatusPending,
		RevisionIntervalDays: 1,
		NextRevisionAt:       now,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	for _, opt := range opts {
		opt(&p)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO problems (id, user_id, title, link, difficulty, tags, company_tags, status,
		                       archived, notes, revision_interval_days, next_revision_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ID, p.UserID, p.Title, p.Link, string(p.Difficulty), p.Tags, p.CompanyTags, string(p.Status),
		p.Archived, p.Notes, p.RevisionIntervalDays, p.NextRevisionAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProblem insert: %v", err)
	}

	return p
}

// SeedSession inserts a revision session with the given day key and entries.
// Returns the inserted row with Version 1.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, dayKey string, entries []domain.SessionEntry) domain.RevisionSession {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.RevisionSession{
		ID:        uuid.New(),
		UserID:    userID,
		DayKey:    dayKey,
		Entries:   entries,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	entriesJSON := entriesToJSON(t, entries)

	_, err := pool.Exec(ctx,
		`INSERT INTO revision_sessions (id, user_id, day_key, entries, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.UserID, s.DayKey, entriesJSON, s.Version, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}

	return s
}

// entriesToJSON serializes entries in the same wire shape the session repo
// uses for the JSONB column.
func entriesToJSON(t *testing.T, entries []domain.SessionEntry) []byte {
	t.Helper()

	type entryJSON struct {
		ProblemID  uuid.UUID  `json:"problem_id"`
		Difficulty string     `json:"difficulty"`
		Status     string     `json:"status"`
		Confidence *string    `json:"confidence,omitempty"`
		ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	}

	out := make([]entryJSON, len(entries))
	for i, e := range entries {
		out[i] = entryJSON{
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

	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("testhelper: marshal entries: %v", err)
	}
	return data
}
