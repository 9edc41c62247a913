package problem

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/domain"
	"github.com/sambangiadharsh/algomind/pkg/ctxutil"
)

// Delete permanently removes an owned problem. Session entries keep their
// recorded problem id; history is not rewritten.
func (s *Service) Delete(ctx context.Context, problemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if problemID == uuid.Nil {
		return domain.NewValidationError("problem_id", "required")
	}

	if err := s.problems.Delete(ctx, userID, problemID); err != nil {
		return fmt.Errorf("delete problem: %w", err)
	}

	s.log.InfoContext(ctx, "problem deleted",
		"user_id", userID, "problem_id", problemID)

	return nil
}
