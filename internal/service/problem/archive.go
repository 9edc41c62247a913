package problem

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/domain"
	"github.com/sambangiadharsh/algomind/pkg/ctxutil"
)

// Archive retires a problem from the revision rotation: status is pinned to
// Mastered and the next due date to a far-future sentinel, so the problem
// never passes the eligibility rule again.
func (s *Service) Archive(ctx context.Context, problemID uuid.UUID) (*domain.Problem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if problemID == uuid.Nil {
		return nil, domain.NewValidationError("problem_id", "required")
	}

	current, err := s.problems.GetByID(ctx, userID, problemID)
	if err != nil {
		return nil, fmt.Errorf("get problem: %w", err)
	}
	if current.Archived {
		return current, nil
	}

	archived := *current
	archived.Archived = true
	archived.Status = domain.ProblemStatusMastered
	archived.NextRevisionAt = domain.ArchivedNextRevision

	updated, err := s.problems.Update(ctx, &archived)
	if err != nil {
		return nil, fmt.Errorf("archive problem: %w", err)
	}

	s.log.InfoContext(ctx, "problem archived",
		"user_id", userID, "problem_id", updated.ID)

	return updated, nil
}

// Unarchive brings a problem back into rotation as Revisiting, due
// immediately.
func (s *Service) Unarchive(ctx context.Context, problemID uuid.UUID) (*domain.Problem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if problemID == uuid.Nil {
		return nil, domain.NewValidationError("problem_id", "required")
	}

	current, err := s.problems.GetByID(ctx, userID, problemID)
	if err != nil {
		return nil, fmt.Errorf("get problem: %w", err)
	}
	if !current.Archived {
		return current, nil
	}

	restored := *current
	restored.Archived = false
	restored.Status = domain.ProblemStatusRevisiting
	restored.NextRevisionAt = s.clock.Now().UTC()

	updated, err := s.problems.Update(ctx, &restored)
	if err != nil {
		return nil, fmt.Errorf("unarchive problem: %w", err)
	}

	s.log.InfoContext(ctx, "problem unarchived",
		"user_id", userID, "problem_id", updated.ID)

	s.refresher.RefreshIfNeeded(ctx)

	return updated, nil
}
