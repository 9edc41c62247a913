package revision

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/domain"
	"github.com/sambangiadharsh/algomind/pkg/ctxutil"
)

// RefreshIfNeeded tops up today's session after the problem pool changed.
// It is a best-effort side effect of problem mutations: every failure is
// logged and swallowed so the triggering mutation never fails because of it.
func (s *Service) RefreshIfNeeded(ctx context.Context) RefreshOutcome {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return RefreshOutcome{}
	}

	outcome, err := s.refresh(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "session refresh failed",
			"user_id", userID, "error", err)
		return RefreshOutcome{}
	}
	return outcome
}

func (s *Service) refresh(ctx context.Context, userID uuid.UUID) (RefreshOutcome, error) {
	var lastErr error
	for attempt := 0; attempt < conflictRetries; attempt++ {
		outcome, err := s.refreshOnce(ctx, userID)
		if err == nil {
			return outcome, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return RefreshOutcome{}, err
		}
		lastErr = err
	}
	return RefreshOutcome{}, lastErr
}

// refreshOnce runs a single top-up pass. It never creates a session and never
// removes or reorders existing entries; it only appends pending entries up to
// the per-difficulty shortfall against the current quota.
func (s *Service) refreshOnce(ctx context.Context, userID uuid.UUID) (RefreshOutcome, error) {
	now := s.clock.Now()
	dayKey := DayKey(now, s.loc)

	session, err := s.sessions.GetByDayKey(ctx, userID, dayKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return RefreshOutcome{}, nil
		}
		return RefreshOutcome{}, fmt.Errorf("get session by day key: %w", err)
	}
	if session.IsComplete() {
		return RefreshOutcome{}, nil
	}

	settings, err := s.loadSettings(ctx, userID)
	if err != nil {
		return RefreshOutcome{}, err
	}

	shortfall := shortfallCounts(settings.Quota(), session.DifficultyCounts())
	if shortfall.IsZero() {
		return RefreshOutcome{}, nil
	}

	eligible, err := s.problems.FindEligible(ctx, userID, now)
	if err != nil {
		return RefreshOutcome{}, fmt.Errorf("find eligible problems: %w", err)
	}

	inSession := make(map[uuid.UUID]struct{}, len(session.Entries))
	for i := range session.Entries {
		inSession[session.Entries[i].ProblemID] = struct{}{}
	}
	fresh := eligible[:0:0]
	for _, p := range eligible {
		if _, ok := inSession[p.ID]; !ok {
			fresh = append(fresh, p)
		}
	}

	// Top-up is append-only and keeps priority order; the shuffle only
	// applies when a session is first built.
	pool := Prioritize(FilterByMode(fresh, settings))
	picked, _ := Allocate(pool, shortfall)
	if len(picked) == 0 {
		return RefreshOutcome{}, nil
	}

	entries := session.Entries
	for _, p := range picked {
		entries = append(entries, domain.SessionEntry{
			ProblemID:  p.ID,
			Difficulty: p.Difficulty,
			Status:     domain.EntryStatusPending,
		})
	}

	if _, err := s.sessions.UpdateEntries(ctx, userID, session.ID, entries, session.Version); err != nil {
		return RefreshOutcome{}, fmt.Errorf("update session entries: %w", err)
	}

	s.log.InfoContext(ctx, "session refreshed",
		"user_id", userID, "day_key", dayKey, "added", len(picked))

	return RefreshOutcome{Refreshed: true, AddedCount: len(picked)}, nil
}

func shortfallCounts(quota, current domain.DifficultyCounts) domain.DifficultyCounts {
	return domain.DifficultyCounts{
		Easy:   max(0, quota.Easy-current.Easy),
		Medium: max(0, quota.Medium-current.Medium),
		Hard:   max(0, quota.Hard-current.Hard),
	}
}
