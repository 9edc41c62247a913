// Package problem implements CRUD and archival for coding-practice problems.
// Every mutation that can change today's eligible pool notifies the revision
// engine so an open session can be topped up immediately.
package problem

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/domain"
	"github.com/sambangiadharsh/algomind/internal/service/revision"
)

//go:generate moq -out mocks_test.go -pkg problem . problemRepo refresher

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type problemRepo interface {
	Create(ctx context.Context, p *domain.Problem) (*domain.Problem, error)
	GetByID(ctx context.Context, userID, problemID uuid.UUID) (*domain.Problem, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.ProblemFilter) ([]*domain.Problem, error)
	Update(ctx context.Context, p *domain.Problem) (*domain.Problem, error)
	Delete(ctx context.Context, userID, problemID uuid.UUID) error
}

// refresher is the revision engine hook fired after pool-changing mutations.
// Its outcome is advisory; failures never surface here.
type refresher interface {
	RefreshIfNeeded(ctx context.Context) revision.RefreshOutcome
}

type clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Service implements the problem business logic.
type Service struct {
	problems  problemRepo
	refresher refresher
	clock     clock
	log       *slog.Logger
}

// NewService creates a new problem service.
func NewService(log *slog.Logger, problems problemRepo, refresher refresher) *Service {
	return &Service{
		problems:  problems,
		refresher: refresher,
		clock:     systemClock{},
		log:       log.With("service", "problem"),
	}
}

// clampLimit ensures a limit is within (0, max], defaulting from 0.
func clampLimit(limit, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit > max {
		return max
	}
	return limit
}
