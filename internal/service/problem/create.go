package problem

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/domain"
	"github.com/sambangiadharsh/algomind/pkg/ctxutil"
)

// Create registers a new problem. It starts Pending with a one-day interval
// and is immediately due, so today's session can pick it up via refresh.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Problem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	created, err := s.problems.Create(ctx, &domain.Problem{
		ID:                   uuid.New(),
		UserID:               userID,
		Title:                strings.TrimSpace(input.Title),
		Link:                 strings.TrimSpace(input.Link),
		Difficulty:           input.Difficulty,
		Tags:                 normalizeTags(input.Tags),
		CompanyTags:          normalizeTags(input.CompanyTags),
		Status:               domain.ProblemStatusPending,
		Notes:                input.Notes,
		RevisionIntervalDays: 1,
		NextRevisionAt:       now,
	})
	if err != nil {
		return nil, fmt.Errorf("create problem: %w", err)
	}

	s.log.InfoContext(ctx, "problem created",
		"user_id", userID, "problem_id", created.ID, "difficulty", created.Difficulty)

	s.refresher.RefreshIfNeeded(ctx)

	return created, nil
}

// normalizeTags trims, lowercases, and deduplicates while keeping order.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
