// Package revision implements the daily revision session scheduling engine:
// eligibility filtering, prioritization, the date-seeded deterministic
// shuffle, per-difficulty allocation, session creation and intraday top-up,
// confidence-driven interval updates, and streak aggregation.
package revision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg revision . problemRepo sessionRepo settingsRepo txManager

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type problemRepo interface {
	GetByID(ctx context.Context, userID, problemID uuid.UUID) (*domain.Problem, error)
	FindEligible(ctx context.Context, userID uuid.UUID, now time.Time) ([]*domain.Problem, error)
	UpdateRevision(ctx context.Context, userID, problemID uuid.UUID, params domain.RevisionUpdateParams) (*domain.Problem, error)
}

type sessionRepo interface {
	Create(ctx context.Context, session *domain.RevisionSession) (*domain.RevisionSession, error)
	GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.RevisionSession, error)
	GetByDayKey(ctx context.Context, userID uuid.UUID, dayKey string) (*domain.RevisionSession, error)
	UpdateEntries(ctx context.Context, userID, sessionID uuid.UUID, entries []domain.SessionEntry, expectedVersion int) (*domain.RevisionSession, error)
	ListSince(ctx context.Context, userID uuid.UUID, fromDayKey string) ([]*domain.RevisionSession, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	CountCompletedDays(ctx context.Context, userID uuid.UUID) (int, error)
}

type settingsRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.RevisionSettings, error)
	Save(ctx context.Context, settings *domain.RevisionSettings) (*domain.RevisionSettings, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

const (
	// conflictRetries bounds optimistic-concurrency retry loops on session
	// entry mutations before the conflict surfaces to the caller.
	conflictRetries = 3

	// streakWindowDays is the trailing window loaded for streak computation.
	streakWindowDays = 90

	// displayWindowDays is the trailing window of day keys returned for
	// calendar display.
	displayWindowDays = 30
)

// Service implements the revision scheduling business logic.
type Service struct {
	problems problemRepo
	sessions sessionRepo
	settings settingsRepo
	tx       txManager
	clock    clock
	loc      *time.Location
	log      *slog.Logger
}

// NewService creates a new revision service. loc is the reference timezone
// used for all calendar-day keys.
func NewService(
	log *slog.Logger,
	problems problemRepo,
	sessions sessionRepo,
	settings settingsRepo,
	tx txManager,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		problems: problems,
		sessions: sessions,
		settings: settings,
		tx:       tx,
		clock:    systemClock{},
		loc:      loc,
		log:      log.With("service", "revision"),
	}
}

// loadSettings returns the user's settings snapshot, falling back to defaults
// when none were ever saved.
func (s *Service) loadSettings(ctx context.Context, userID uuid.UUID) (domain.RevisionSettings, error) {
	settings, err := s.settings.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultRevisionSettings(userID), nil
		}
		return domain.RevisionSettings{}, fmt.Errorf("load settings: %w", err)
	}
	return *settings, nil
}
