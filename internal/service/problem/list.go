package problem

import (
	"context"
	"fmt"

	"github.com/sambangiadharsh/algomind/internal/domain"
	"github.com/sambangiadharsh/algomind/pkg/ctxutil"
)

// List returns the caller's problems matching the filter, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Problem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	problems, err := s.problems.List(ctx, userID, domain.ProblemFilter{
		Difficulty:      input.Difficulty,
		Status:          input.Status,
		Tag:             input.Tag,
		CompanyTag:      input.CompanyTag,
		IncludeArchived: input.IncludeArchived,
		Limit:           clampLimit(input.Limit, maxListLimit, defaultListLimit),
		Offset:          input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	return problems, nil
}
