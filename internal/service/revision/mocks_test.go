package revision

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/domain"
)

var _ problemRepo = &problemRepoMock{}

type problemRepoMock struct {
	GetByIDFunc        func(ctx context.Context, userID, problemID uuid.UUID) (*domain.Problem, error)
	FindEligibleFunc   func(ctx context.Context, userID uuid.UUID, now time.Time) ([]*domain.Problem, error)
	UpdateRevisionFunc func(ctx context.Context, userID, problemID uuid.UUID, params domain.RevisionUpdateParams) (*domain.Problem, error)

	calls struct {
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProblemID uuid.UUID
		}
		FindEligible []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Now    time.Time
		}
		UpdateRevision []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProblemID uuid.UUID
			Params    domain.RevisionUpdateParams
		}
	}
	lock sync.RWMutex
}

func (mock *problemRepoMock) GetByID(ctx context.Context, userID, problemID uuid.UUID) (*domain.Problem, error) {
	if mock.GetByIDFunc == nil {
		panic("problemRepoMock.GetByIDFunc: method is nil but problemRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProblemID uuid.UUID
	}{Ctx: ctx, UserID: userID, ProblemID: problemID}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, userID, problemID)
}

func (mock *problemRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProblemID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.GetByID
	mock.lock.RUnlock()
	return calls
}

func (mock *problemRepoMock) FindEligible(ctx context.Context, userID uuid.UUID, now time.Time) ([]*domain.Problem, error) {
	if mock.FindEligibleFunc == nil {
		panic("problemRepoMock.FindEligibleFunc: method is nil but problemRepo.FindEligible was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Now    time.Time
	}{Ctx: ctx, UserID: userID, Now: now}
	mock.lock.Lock()
	mock.calls.FindEligible = append(mock.calls.FindEligible, callInfo)
	mock.lock.Unlock()
	return mock.FindEligibleFunc(ctx, userID, now)
}

func (mock *problemRepoMock) FindEligibleCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Now    time.Time
} {
	mock.lock.RLock()
	calls := mock.calls.FindEligible
	mock.lock.RUnlock()
	return calls
}

func (mock *problemRepoMock) UpdateRevision(ctx context.Context, userID, problemID uuid.UUID, params domain.RevisionUpdateParams) (*domain.Problem, error) {
	if mock.UpdateRevisionFunc == nil {
		panic("problemRepoMock.UpdateRevisionFunc: method is nil but problemRepo.UpdateRevision was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProblemID uuid.UUID
		Params    domain.RevisionUpdateParams
	}{Ctx: ctx, UserID: userID, ProblemID: problemID, Params: params}
	mock.lock.Lock()
	mock.calls.UpdateRevision = append(mock.calls.UpdateRevision, callInfo)
	mock.lock.Unlock()
	return mock.UpdateRevisionFunc(ctx, userID, problemID, params)
}

func (mock *problemRepoMock) UpdateRevisionCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProblemID uuid.UUID
	Params    domain.RevisionUpdateParams
} {
	mock.lock.RLock()
	calls := mock.calls.UpdateRevision
	mock.lock.RUnlock()
	return calls
}

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc             func(ctx context.Context, session *domain.RevisionSession) (*domain.RevisionSession, error)
	GetByIDFunc            func(ctx context.Context, userID, sessionID uuid.UUID) (*domain.RevisionSession, error)
	GetByDayKeyFunc        func(ctx context.Context, userID uuid.UUID, dayKey string) (*domain.RevisionSession, error)
	UpdateEntriesFunc      func(ctx context.Context, userID, sessionID uuid.UUID, entries []domain.SessionEntry, expectedVersion int) (*domain.RevisionSession, error)
	ListSinceFunc          func(ctx context.Context, userID uuid.UUID, fromDayKey string) ([]*domain.RevisionSession, error)
	CountByUserFunc        func(ctx context.Context, userID uuid.UUID) (int, error)
	CountCompletedDaysFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			Session *domain.RevisionSession
		}
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			SessionID uuid.UUID
		}
		GetByDayKey []struct {
			Ctx    context.Context
			UserID uuid.UUID
			DayKey string
		}
		UpdateEntries []struct {
			Ctx             context.Context
			UserID          uuid.UUID
			SessionID       uuid.UUID
			Entries         []domain.SessionEntry
			ExpectedVersion int
		}
		ListSince []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			FromDayKey string
		}
		CountByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		CountCompletedDays []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, session *domain.RevisionSession) (*domain.RevisionSession, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Session *domain.RevisionSession
	}{Ctx: ctx, Session: session}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, session)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Session *domain.RevisionSession
} {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.RevisionSession, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		SessionID uuid.UUID
	}{Ctx: ctx, UserID: userID, SessionID: sessionID}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, userID, sessionID)
}

func (mock *sessionRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	SessionID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.GetByID
	mock.lock.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByDayKey(ctx context.Context, userID uuid.UUID, dayKey string) (*domain.RevisionSession, error) {
	if mock.GetByDayKeyFunc == nil {
		panic("sessionRepoMock.GetByDayKeyFunc: method is nil but sessionRepo.GetByDayKey was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		DayKey string
	}{Ctx: ctx, UserID: userID, DayKey: dayKey}
	mock.lock.Lock()
	mock.calls.GetByDayKey = append(mock.calls.GetByDayKey, callInfo)
	mock.lock.Unlock()
	return mock.GetByDayKeyFunc(ctx, userID, dayKey)
}

func (mock *sessionRepoMock) GetByDayKeyCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	DayKey string
} {
	mock.lock.RLock()
	calls := mock.calls.GetByDayKey
	mock.lock.RUnlock()
	return calls
}

func (mock *sessionRepoMock) UpdateEntries(ctx context.Context, userID, sessionID uuid.UUID, entries []domain.SessionEntry, expectedVersion int) (*domain.RevisionSession, error) {
	if mock.UpdateEntriesFunc == nil {
		panic("sessionRepoMock.UpdateEntriesFunc: method is nil but sessionRepo.UpdateEntries was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		UserID          uuid.UUID
		SessionID       uuid.UUID
		Entries         []domain.SessionEntry
		ExpectedVersion int
	}{Ctx: ctx, UserID: userID, SessionID: sessionID, Entries: entries, ExpectedVersion: expectedVersion}
	mock.lock.Lock()
	mock.calls.UpdateEntries = append(mock.calls.UpdateEntries, callInfo)
	mock.lock.Unlock()
	return mock.UpdateEntriesFunc(ctx, userID, sessionID, entries, expectedVersion)
}

func (mock *sessionRepoMock) UpdateEntriesCalls() []struct {
	Ctx             context.Context
	UserID          uuid.UUID
	SessionID       uuid.UUID
	Entries         []domain.SessionEntry
	ExpectedVersion int
} {
	mock.lock.RLock()
	calls := mock.calls.UpdateEntries
	mock.lock.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ListSince(ctx context.Context, userID uuid.UUID, fromDayKey string) ([]*domain.RevisionSession, error) {
	if mock.ListSinceFunc == nil {
		panic("sessionRepoMock.ListSinceFunc: method is nil but sessionRepo.ListSince was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		FromDayKey string
	}{Ctx: ctx, UserID: userID, FromDayKey: fromDayKey}
	mock.lock.Lock()
	mock.calls.ListSince = append(mock.calls.ListSince, callInfo)
	mock.lock.Unlock()
	return mock.ListSinceFunc(ctx, userID, fromDayKey)
}

func (mock *sessionRepoMock) ListSinceCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	FromDayKey string
} {
	mock.lock.RLock()
	calls := mock.calls.ListSince
	mock.lock.RUnlock()
	return calls
}

func (mock *sessionRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("sessionRepoMock.CountByUserFunc: method is nil but sessionRepo.CountByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lock.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lock.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *sessionRepoMock) CountByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.CountByUser
	mock.lock.RUnlock()
	return calls
}

func (mock *sessionRepoMock) CountCompletedDays(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountCompletedDaysFunc == nil {
		panic("sessionRepoMock.CountCompletedDaysFunc: method is nil but sessionRepo.CountCompletedDays was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lock.Lock()
	mock.calls.CountCompletedDays = append(mock.calls.CountCompletedDays, callInfo)
	mock.lock.Unlock()
	return mock.CountCompletedDaysFunc(ctx, userID)
}

func (mock *sessionRepoMock) CountCompletedDaysCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.CountCompletedDays
	mock.lock.RUnlock()
	return calls
}

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.RevisionSettings, error)
	SaveFunc        func(ctx context.Context, settings *domain.RevisionSettings) (*domain.RevisionSettings, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Save []struct {
			Ctx      context.Context
			Settings *domain.RevisionSettings
		}
	}
	lock sync.RWMutex
}

func (mock *settingsRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.RevisionSettings, error) {
	if mock.GetByUserIDFunc == nil {
		panic("settingsRepoMock.GetByUserIDFunc: method is nil but settingsRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lock.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lock.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *settingsRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.GetByUserID
	mock.lock.RUnlock()
	return calls
}

func (mock *settingsRepoMock) Save(ctx context.Context, settings *domain.RevisionSettings) (*domain.RevisionSettings, error) {
	if mock.SaveFunc == nil {
		panic("settingsRepoMock.SaveFunc: method is nil but settingsRepo.Save was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Settings *domain.RevisionSettings
	}{Ctx: ctx, Settings: settings}
	mock.lock.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lock.Unlock()
	return mock.SaveFunc(ctx, settings)
}

func (mock *settingsRepoMock) SaveCalls() []struct {
	Ctx      context.Context
	Settings *domain.RevisionSettings
} {
	mock.lock.RLock()
	calls := mock.calls.Save
	mock.lock.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lock.RLock()
	calls := mock.calls.RunInTx
	mock.lock.RUnlock()
	return calls
}

// fixedClock pins Now for deterministic scheduling tests.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
