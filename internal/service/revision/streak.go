package revision

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sambangiadharsh/algomind/internal/domain"
	"github.com/sambangiadharsh/algomind/pkg/ctxutil"
)

// GetStreak aggregates the user's session history into streak and calendar
// figures. Streaks are computed over a trailing 90-day window; the returned
// date lists are trimmed to the trailing 30 days for calendar display.
func (s *Service) GetStreak(ctx context.Context) (*domain.StreakSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock.Now()
	today := DayKey(now, s.loc)
	windowStart := DayKey(now.AddDate(0, 0, -streakWindowDays), s.loc)
	displayStart := DayKey(now.AddDate(0, 0, -displayWindowDays), s.loc)

	sessions, err := s.sessions.ListSince(ctx, userID, windowStart)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	completed := make(map[string]bool, len(sessions))
	var allDates, completedDates []string
	for _, sess := range sessions {
		done := sess.IsComplete()
		if done {
			completed[sess.DayKey] = true
		}
		if sess.DayKey >= displayStart {
			allDates = append(allDates, sess.DayKey)
			if done {
				completedDates = append(completedDates, sess.DayKey)
			}
		}
	}
	sort.Strings(allDates)
	sort.Strings(completedDates)

	totalSessions, err := s.sessions.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}
	totalDays, err := s.sessions.CountCompletedDays(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count completed days: %w", err)
	}

	return &domain.StreakSummary{
		CurrentStreak:     currentStreak(completed, today, s.loc),
		LongestStreak:     longestStreak(completed),
		CompletedDates:    completedDates,
		AllSessionDates:   allDates,
		TotalSessions:     totalSessions,
		TotalRevisionDays: totalDays,
	}, nil
}

// currentStreak counts consecutive complete days ending at today, or at
// yesterday when today's session is not yet complete. An incomplete today
// does not break a streak that is still alive.
func currentStreak(completed map[string]bool, today string, loc *time.Location) int {
	day, err := time.ParseInLocation(dayKeyLayout, today, loc)
	if err != nil {
		return 0
	}
	if !completed[today] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for completed[day.Format(dayKeyLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// longestStreak finds the longest run of consecutive complete days within
// the loaded window.
func longestStreak(completed map[string]bool) int {
	if len(completed) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(completed))
	for key := range completed {
		t, err := time.Parse(dayKeyLayout, key)
		if err != nil {
			continue
		}
		days = append(days, t)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 0, 0
	for i, d := range days {
		if i > 0 && days[i-1].AddDate(0, 0, 1).Equal(d) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
