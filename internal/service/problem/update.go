package problem

import (
	"context"
	"fmt"

	"github.com/sambangiadharsh/algomind/internal/domain"
	"github.com/sambangiadharsh/algomind/pkg/ctxutil"
)

// Update merges the input into an owned problem. Scheduling state is not
// touched here; intervals and due dates change only through reviews.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Problem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.problems.GetByID(ctx, userID, input.ProblemID)
	if err != nil {
		return nil, fmt.Errorf("get problem: %w", err)
	}
	if current.Archived {
		return nil, domain.NewValidationError("problem_id", "problem is archived")
	}

	merged := applyChanges(*current, input)

	updated, err := s.problems.Update(ctx, &merged)
	if err != nil {
		return nil, fmt.Errorf("update problem: %w", err)
	}

	s.log.InfoContext(ctx, "problem updated",
		"user_id", userID, "problem_id", updated.ID)

	// Tag or difficulty changes can move the problem in or out of today's
	// mode filter and quota buckets.
	s.refresher.RefreshIfNeeded(ctx)

	return updated, nil
}

// applyChanges merges the input changes into the current problem.
func applyChanges(current domain.Problem, input UpdateInput) domain.Problem {
	result := current

	if input.Title != nil {
		result.Title = *input.Title
	}
	if input.Link != nil {
		result.Link = *input.Link
	}
	if input.Difficulty != nil {
		result.Difficulty = *input.Difficulty
	}
	if input.Tags != nil {
		result.Tags = normalizeTags(input.Tags)
	}
	if input.CompanyTags != nil {
		result.CompanyTags = normalizeTags(input.CompanyTags)
	}
	if input.Notes != nil {
		result.Notes = *input.Notes
	}

	return result
}
