package revision

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/domain"
	"github.com/sambangiadharsh/algomind/pkg/ctxutil"
)

// MarkReviewed completes a session entry with the user's confidence and
// applies the resulting interval update to the underlying problem. The entry
// mutation and the problem update commit in one transaction; a concurrent
// entry mutation is retried a bounded number of times before ErrConflict
// reaches the caller.
func (s *Service) MarkReviewed(ctx context.Context, input MarkReviewedInput) (*domain.SessionEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < conflictRetries; attempt++ {
		entry, err := s.markReviewedOnce(ctx, userID, input)
		if err == nil {
			return entry, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (s *Service) markReviewedOnce(ctx context.Context, userID uuid.UUID, input MarkReviewedInput) (*domain.SessionEntry, error) {
	session, err := s.sessions.GetByID(ctx, userID, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	idx := session.EntryIndex(input.ProblemID)
	if idx < 0 {
		return nil, fmt.Errorf("entry for problem %s: %w", input.ProblemID, domain.ErrNotFound)
	}
	if session.Entries[idx].Status == domain.EntryStatusCompleted {
		return nil, domain.NewValidationError("problem_id", "entry already completed")
	}

	now := s.clock.Now()
	confidence := input.Confidence

	entries := make([]domain.SessionEntry, len(session.Entries))
	copy(entries, session.Entries)
	entries[idx].Status = domain.EntryStatusCompleted
	entries[idx].Confidence = &confidence
	entries[idx].ReviewedAt = &now

	var updated *domain.RevisionSession
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		updated, err = s.sessions.UpdateEntries(ctx, userID, session.ID, entries, session.Version)
		if err != nil {
			return fmt.Errorf("update session entries: %w", err)
		}

		problem, err := s.problems.GetByID(ctx, userID, input.ProblemID)
		if err != nil {
			return fmt.Errorf("get problem: %w", err)
		}

		params := NextRevision(problem.RevisionIntervalDays, confidence, now)
		if _, err := s.problems.UpdateRevision(ctx, userID, problem.ID, params); err != nil {
			return fmt.Errorf("update problem revision: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entry reviewed",
		"user_id", userID, "session_id", session.ID,
		"problem_id", input.ProblemID, "confidence", confidence)

	reviewed := updated.Entries[idx]
	return &reviewed, nil
}

// NextRevision computes the problem's next scheduling state from the current
// interval and the reported confidence. The next due date is always a fixed
// 24 hours out; the growing interval records progress and orders priorities
// rather than spacing the calendar.
func NextRevision(intervalDays int, confidence domain.Confidence, now time.Time) domain.RevisionUpdateParams {
	if intervalDays < 1 {
		intervalDays = 1
	}

	var (
		next   int
		status domain.ProblemStatus
	)
	switch confidence {
	case domain.ConfidenceMastered:
		next = int(math.Ceil(float64(intervalDays) * 2.5))
		status = domain.ProblemStatusMastered
	case domain.ConfidenceLessConfident:
		next = int(math.Ceil(float64(intervalDays) * 1.5))
		status = domain.ProblemStatusRevisiting
	default:
		next = 1
		status = domain.ProblemStatusRevisiting
	}

	return domain.RevisionUpdateParams{
		Status:               status,
		RevisionIntervalDays: next,
		LastRevisedAt:        now,
		NextRevisionAt:       now.Add(24 * time.Hour),
	}
}
