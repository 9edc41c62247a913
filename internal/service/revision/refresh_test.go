package revision

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/domain"
	"github.com/sambangiadharsh/algomind/pkg/ctxutil"
)

func TestService_RefreshIfNeeded_TopsUpShortfall(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	inSession := makeProblem(0, domain.DifficultyEasy)
	fresh1 := makeProblem(1, domain.DifficultyEasy)
	fresh2 := makeProblem(2, domain.DifficultyMedium)

	session := &domain.RevisionSession{
		ID:      uuid.New(),
		UserID:  userID,
		DayKey:  "2026-08-29",
		Version: 1,
		Entries: []domain.SessionEntry{
			{ProblemID: inSession.ID, Difficulty: domain.DifficultyEasy, Status: domain.EntryStatusCompleted},
		},
	}

	mockSessions := &sessionRepoMock{
		GetByDayKeyFunc: func(ctx context.Context, uid uuid.UUID, dayKey string) (*domain.RevisionSession, error) {
			return session, nil
		},
		UpdateEntriesFunc: func(ctx context.Context, uid, sid uuid.UUID, entries []domain.SessionEntry, expectedVersion int) (*domain.RevisionSession, error) {
			if expectedVersion != 1 {
				t.Errorf("expected version: got %d, want 1", expectedVersion)
			}
			// Existing entry kept in place, new ones appended after it.
			if entries[0].ProblemID != inSession.ID {
				t.Error("existing entry was displaced")
			}
			updated := *session
			updated.Entries = entries
			updated.Version = 2
			return &updated, nil
		},
	}

	mockProblems := &problemRepoMock{
		FindEligibleFunc: func(ctx context.Context, uid uuid.UUID, at time.Time) ([]*domain.Problem, error) {
			// The repo still returns the already-scheduled problem; the
			// service must skip it.
			return []*domain.Problem{inSession, fresh1, fresh2}, nil
		},
	}

	svc := &Service{
		problems: mockProblems,
		sessions: mockSessions,
		settings: defaultSettingsRepoMock(),
		clock:    fixedClock{now: now},
		loc:      time.UTC,
		log:      slog.Default(),
	}

	ctx := ctxutil.WithUserID(context.Background(), userID)
	outcome := svc.RefreshIfNeeded(ctx)

	if !outcome.Refreshed {
		t.Error("expected Refreshed=true")
	}
	// Shortfall against 2/2/1: easy 1 (one already present), medium 2 but
	// only one available, hard 1 with none available.
	if outcome.AddedCount != 2 {
		t.Errorf("added: got %d, want 2", outcome.AddedCount)
	}

	calls := mockSessions.UpdateEntriesCalls()
	if len(calls) != 1 {
		t.Fatalf("UpdateEntries calls: got %d, want 1", len(calls))
	}
	entries := calls[0].Entries
	if len(entries) != 3 {
		t.Fatalf("entries after refresh: got %d, want 3", len(entries))
	}
	for _, e := range entries[1:] {
		if e.ProblemID == inSession.ID {
			t.Error("already-scheduled problem was appended again")
		}
		if e.Status != domain.EntryStatusPending {
			t.Errorf("appended entry status: got %v, want Pending", e.Status)
		}
	}
}

func TestService_RefreshIfNeeded_NoSessionIsNoop(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	mockSessions := &sessionRepoMock{
		GetByDayKeyFunc: func(ctx context.Context, uid uuid.UUID, dayKey string) (*domain.RevisionSession, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := &Service{
		sessions: mockSessions,
		settings: defaultSettingsRepoMock(),
		clock:    systemClock{},
		loc:      time.UTC,
		log:      slog.Default(),
	}

	ctx := ctxutil.WithUserID(context.Background(), userID)
	outcome := svc.RefreshIfNeeded(ctx)
	if outcome.Refreshed || outcome.AddedCount != 0 {
		t.Errorf("outcome: got %+v, want zero", outcome)
	}
}

func TestService_RefreshIfNeeded_CompletedSessionIsNoop(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	mockSessions := &sessionRepoMock{
		GetByDayKeyFunc: func(ctx context.Context, uid uuid.UUID, dayKey string) (*domain.RevisionSession, error) {
			return &domain.RevisionSession{
				ID:      uuid.New(),
				UserID:  userID,
				Version: 2,
				Entries: []domain.SessionEntry{
					{ProblemID: uuid.New(), Difficulty: domain.DifficultyEasy, Status: domain.EntryStatusCompleted},
				},
			}, nil
		},
	}
	mockProblems := &problemRepoMock{
		FindEligibleFunc: func(ctx context.Context, uid uuid.UUID, at time.Time) ([]*domain.Problem, error) {
			t.Error("FindEligible should not be called for a completed session")
			return nil, nil
		},
	}
	mockSettings := &settingsRepoMock{
		GetByUserIDFunc: func(ctx context.Context, uid uuid.UUID) (*domain.RevisionSettings, error) {
			// Quota far above the single completed entry; completion still
			// wins over shortfall.
			return &domain.RevisionSettings{
				UserID:    userID,
				EasyCount: 5, MediumCount: 5, HardCount: 5,
				Mode: domain.RevisionModeRandom,
			}, nil
		},
	}

	svc := &Service{
		problems: mockProblems,
		sessions: mockSessions,
		settings: mockSettings,
		clock:    systemClock{},
		loc:      time.UTC,
		log:      slog.Default(),
	}

	ctx := ctxutil.WithUserID(context.Background(), userID)
	outcome := svc.RefreshIfNeeded(ctx)
	if outcome.Refreshed {
		t.Error("completed session must not be refreshed")
	}
}

func TestService_RefreshIfNeeded_FullSessionIsNoop(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	mockSessions := &sessionRepoMock{
		GetByDayKeyFunc: func(ctx context.Context, uid uuid.UUID, dayKey string) (*domain.RevisionSession, error) {
			return &domain.RevisionSession{
				ID:      uuid.New(),
				UserID:  userID,
				Version: 1,
				Entries: []domain.SessionEntry{
					{ProblemID: uuid.New(), Difficulty: domain.DifficultyEasy, Status: domain.EntryStatusPending},
					{ProblemID: uuid.New(), Difficulty: domain.DifficultyEasy, Status: domain.EntryStatusPending},
					{ProblemID: uuid.New(), Difficulty: domain.DifficultyMedium, Status: domain.EntryStatusPending},
					{ProblemID: uuid.New(), Difficulty: domain.DifficultyMedium, Status: domain.EntryStatusCompleted},
					{ProblemID: uuid.New(), Difficulty: domain.DifficultyHard, Status: domain.EntryStatusPending},
				},
			}, nil
		},
	}
	mockProblems := &problemRepoMock{
		FindEligibleFunc: func(ctx context.Context, uid uuid.UUID, at time.Time) ([]*domain.Problem, error) {
			t.Error("FindEligible should not be called when there is no shortfall")
			return nil, nil
		},
	}

	svc := &Service{
		problems: mockProblems,
		sessions: mockSessions,
		settings: defaultSettingsRepoMock(),
		clock:    systemClock{},
		loc:      time.UTC,
		log:      slog.Default(),
	}

	ctx := ctxutil.WithUserID(context.Background(), userID)
	outcome := svc.RefreshIfNeeded(ctx)
	if outcome.Refreshed {
		t.Error("full session must not be refreshed")
	}
}

func TestService_RefreshIfNeeded_SwallowsErrors(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	mockSessions := &sessionRepoMock{
		GetByDayKeyFunc: func(ctx context.Context, uid uuid.UUID, dayKey string) (*domain.RevisionSession, error) {
			return nil, errors.New("db down")
		},
	}

	svc := &Service{
		sessions: mockSessions,
		settings: defaultSettingsRepoMock(),
		clock:    systemClock{},
		loc:      time.UTC,
		log:      slog.Default(),
	}

	ctx := ctxutil.WithUserID(context.Background(), userID)
	outcome := svc.RefreshIfNeeded(ctx)
	if outcome.Refreshed || outcome.AddedCount != 0 {
		t.Errorf("outcome: got %+v, want zero", outcome)
	}
}

func TestService_RefreshIfNeeded_NoUserIDIsNoop(t *testing.T) {
	t.Parallel()

	svc := &Service{log: slog.Default(), clock: systemClock{}, loc: time.UTC}

	outcome := svc.RefreshIfNeeded(context.Background())
	if outcome.Refreshed {
		t.Error("expected no-op without a user in context")
	}
}

func TestService_RefreshIfNeeded_RetriesOnVersionConflict(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	fresh := makeProblem(0, domain.DifficultyEasy)

	version := 1
	mockSessions := &sessionRepoMock{
		GetByDayKeyFunc: func(ctx context.Context, uid uuid.UUID, dayKey string) (*domain.RevisionSession, error) {
			return &domain.RevisionSession{
				ID:      uuid.New(),
				UserID:  userID,
				DayKey:  "2026-08-29",
				Version: version,
			}, nil
		},
		UpdateEntriesFunc: func(ctx context.Context, uid, sid uuid.UUID, entries []domain.SessionEntry, expectedVersion int) (*domain.RevisionSession, error) {
			if expectedVersion == 1 {
				version = 2
				return nil, domain.ErrConflict
			}
			return &domain.RevisionSession{ID: sid, UserID: userID, Version: 3, Entries: entries}, nil
		},
	}
	mockProblems := &problemRepoMock{
		FindEligibleFunc: func(ctx context.Context, uid uuid.UUID, at time.Time) ([]*domain.Problem, error) {
			return []*domain.Problem{fresh}, nil
		},
	}

	svc := &Service{
		problems: mockProblems,
		sessions: mockSessions,
		settings: defaultSettingsRepoMock(),
		clock:    fixedClock{now: now},
		loc:      time.UTC,
		log:      slog.Default(),
	}

	ctx := ctxutil.WithUserID(context.Background(), userID)
	outcome := svc.RefreshIfNeeded(ctx)
	if !outcome.Refreshed {
		t.Error("expected refresh to succeed after retry")
	}
	if got := len(mockSessions.UpdateEntriesCalls()); got != 2 {
		t.Errorf("UpdateEntries calls: got %d, want 2", got)
	}
}
