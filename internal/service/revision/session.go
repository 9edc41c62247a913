package revision

import (
	"context"
	"errors"
	"fmt"

	"github.com/sambangiadharsh/algomind/internal/domain"
	"github.com/sambangiadharsh/algomind/pkg/ctxutil"
)

// GetTodaysSession returns the session for the caller's current calendar day,
// creating it on first request. An existing session for the day is returned
// as-is regardless of its state; the daily content is frozen at creation and
// only refresh can extend it.
func (s *Service) GetTodaysSession(ctx context.Context) (*SessionResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock.Now()
	dayKey := DayKey(now, s.loc)

	settings, err := s.loadSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	quota := settings.Quota()

	session, err := s.sessions.GetByDayKey(ctx, userID, dayKey)
	if err == nil {
		return &SessionResult{
			Session:   session,
			Requested: quota,
			Actual:    session.DifficultyCounts(),
		}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get session by day key: %w", err)
	}

	eligible, err := s.problems.FindEligible(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("find eligible problems: %w", err)
	}

	pool := Shuffle(Prioritize(FilterByMode(eligible, settings)), DaySeed(dayKey))
	picked, actual := Allocate(pool, quota)

	if len(picked) == 0 {
		s.log.InfoContext(ctx, "no eligible problems for today",
			"user_id", userID, "day_key", dayKey)
		return &SessionResult{Requested: quota}, nil
	}

	entries := make([]domain.SessionEntry, 0, len(picked))
	for _, p := range picked {
		entries = append(entries, domain.SessionEntry{
			ProblemID:  p.ID,
			Difficulty: p.Difficulty,
			Status:     domain.EntryStatusPending,
		})
	}

	created, err := s.sessions.Create(ctx, &domain.RevisionSession{
		UserID:  userID,
		DayKey:  dayKey,
		Entries: entries,
	})
	if err != nil {
		// A concurrent request won the insert race; the unique
		// (user_id, day_key) constraint guarantees a single winner.
		if errors.Is(err, domain.ErrAlreadyExists) {
			s.log.InfoContext(ctx, "session already created concurrently",
				"user_id", userID, "day_key", dayKey)
			existing, getErr := s.sessions.GetByDayKey(ctx, userID, dayKey)
			if getErr != nil {
				return nil, fmt.Errorf("get session after create race: %w", getErr)
			}
			return &SessionResult{
				Session:   existing,
				Requested: quota,
				Actual:    existing.DifficultyCounts(),
			}, nil
		}
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.InfoContext(ctx, "session created",
		"user_id", userID, "day_key", dayKey, "entries", len(created.Entries))

	return &SessionResult{
		Session:   created,
		Requested: quota,
		Actual:    actual,
	}, nil
}
