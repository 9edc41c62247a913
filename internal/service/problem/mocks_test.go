package problem

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/domain"
	"github.com/sambangiadharsh/algomind/internal/service/revision"
)

var _ problemRepo = &problemRepoMock{}

type problemRepoMock struct {
	CreateFunc  func(ctx context.Context, p *domain.Problem) (*domain.Problem, error)
	GetByIDFunc func(ctx context.Context, userID, problemID uuid.UUID) (*domain.Problem, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, filter domain.ProblemFilter) ([]*domain.Problem, error)
	UpdateFunc  func(ctx context.Context, p *domain.Problem) (*domain.Problem, error)
	DeleteFunc  func(ctx context.Context, userID, problemID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx     context.Context
			Problem *domain.Problem
		}
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProblemID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.ProblemFilter
		}
		Update []struct {
			Ctx     context.Context
			Problem *domain.Problem
		}
		Delete []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProblemID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *problemRepoMock) Create(ctx context.Context, p *domain.Problem) (*domain.Problem, error) {
	if mock.CreateFunc == nil {
		panic("problemRepoMock.CreateFunc: method is nil but problemRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Problem *domain.Problem
	}{Ctx: ctx, Problem: p}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *problemRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Problem *domain.Problem
} {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
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

func (mock *problemRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.ProblemFilter) ([]*domain.Problem, error) {
	if mock.ListFunc == nil {
		panic("problemRepoMock.ListFunc: method is nil but problemRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.ProblemFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lock.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *problemRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.ProblemFilter
} {
	mock.lock.RLock()
	calls := mock.calls.List
	mock.lock.RUnlock()
	return calls
}

func (mock *problemRepoMock) Update(ctx context.Context, p *domain.Problem) (*domain.Problem, error) {
	if mock.UpdateFunc == nil {
		panic("problemRepoMock.UpdateFunc: method is nil but problemRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Problem *domain.Problem
	}{Ctx: ctx, Problem: p}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *problemRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	Problem *domain.Problem
} {
	mock.lock.RLock()
	calls := mock.calls.Update
	mock.lock.RUnlock()
	return calls
}

func (mock *problemRepoMock) Delete(ctx context.Context, userID, problemID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("problemRepoMock.DeleteFunc: method is nil but problemRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProblemID uuid.UUID
	}{Ctx: ctx, UserID: userID, ProblemID: problemID}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, problemID)
}

func (mock *problemRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProblemID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.Delete
	mock.lock.RUnlock()
	return calls
}

var _ refresher = &refresherMock{}

type refresherMock struct {
	RefreshIfNeededFunc func(ctx context.Context) revision.RefreshOutcome

	calls struct {
		RefreshIfNeeded []struct {
			Ctx context.Context
		}
	}
	lock sync.RWMutex
}

func (mock *refresherMock) RefreshIfNeeded(ctx context.Context) revision.RefreshOutcome {
	if mock.RefreshIfNeededFunc == nil {
		panic("refresherMock.RefreshIfNeededFunc: method is nil but refresher.RefreshIfNeeded was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lock.Lock()
	mock.calls.RefreshIfNeeded = append(mock.calls.RefreshIfNeeded, callInfo)
	mock.lock.Unlock()
	return mock.RefreshIfNeededFunc(ctx)
}

func (mock *refresherMock) RefreshIfNeededCalls() []struct {
	Ctx context.Context
} {
	mock.lock.RLock()
	calls := mock.calls.RefreshIfNeeded
	mock.lock.RUnlock()
	return calls
}

// fixedClock pins Now for deterministic tests.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func noopRefresher() *refresherMock {
	return &refresherMock{
		RefreshIfNeededFunc: func(ctx context.Context) revision.RefreshOutcome {
			return revision.RefreshOutcome{}
		},
	}
}
