package problem

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/domain"
	"github.com/sambangiadharsh/algomind/pkg/ctxutil"
)

// Get returns a single owned problem.
func (s *Service) Get(ctx context.Context, problemID uuid.UUID) (*domain.Problem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if problemID == uuid.Nil {
		return nil, domain.NewValidationError("problem_id", "required")
	}

	p, err := s.problems.GetByID(ctx, userID, problemID)
	if err != nil {
		return nil, fmt.Errorf("get problem: %w", err)
	}
	return p, nil
}
