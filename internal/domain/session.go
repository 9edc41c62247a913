package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionEntry is a single problem scheduled within a revision session.
// Difficulty is denormalized at allocation time so that quota accounting
// never needs to re-load problems.
type SessionEntry struct {
	ProblemID  uuid.UUID
	Difficulty Difficulty
	Status     EntryStatus
	Confidence *Confidence
	ReviewedAt *time.Time
}

// RevisionSession is the one-per-day bounded worklist of problems presented
// to a user for review. Exactly one session exists per (user, day key);
// the database enforces the uniqueness.
type RevisionSession struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	DayKey    string // calendar day in the reference timezone, "2006-01-02"
	Entries   []SessionEntry
	Version   int // optimistic concurrency token, bumped on every entry mutation
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsComplete reports whether the session has at least one entry and every
// entry is completed. A completed session is terminal: it is returned
// unchanged and never topped up.
func (s *RevisionSession) IsComplete() bool {
	if len(s.Entries) == 0 {
		return false
	}
	for i := range s.Entries {
		if s.Entries[i].Status != EntryStatusCompleted {
			return false
		}
	}
	return true
}

// EntryIndex returns the index of the entry for the given problem, or -1.
func (s *RevisionSession) EntryIndex(problemID uuid.UUID) int {
	for i := range s.Entries {
		if s.Entries[i].ProblemID == problemID {
			return i
		}
	}
	return -1
}

// DifficultyCounts returns how many entries the session holds per difficulty.
func (s *RevisionSession) DifficultyCounts() DifficultyCounts {
	var c DifficultyCounts
	for i := range s.Entries {
		c.Add(s.Entries[i].Difficulty, 1)
	}
	return c
}

// DifficultyCounts is a per-difficulty tally, used both for quotas and for
// requested-vs-actual session reporting.
type DifficultyCounts struct {
	Easy   int
	Medium int
	Hard   int
}

// Of returns the count for a difficulty.
func (c DifficultyCounts) Of(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return c.Easy
	case DifficultyMedium:
		return c.Medium
	case DifficultyHard:
		return c.Hard
	}
	return 0
}

// Add increments the count for a difficulty.
func (c *DifficultyCounts) Add(d Difficulty, n int) {
	switch d {
	case DifficultyEasy:
		c.Easy += n
	case DifficultyMedium:
		c.Medium += n
	case DifficultyHard:
		c.Hard += n
	}
}

// Total returns the sum over all difficulties.
func (c DifficultyCounts) Total() int {
	return c.Easy + c.Medium + c.Hard
}

// IsZero reports whether every count is zero.
func (c DifficultyCounts) IsZero() bool {
	return c.Easy == 0 && c.Medium == 0 && c.Hard == 0
}

// StreakSummary is the aggregated view over a user's session history.
type StreakSummary struct {
	CurrentStreak     int
	LongestStreak     int
	CompletedDates    []string // complete-session day keys within the display window
	AllSessionDates   []string // all session day keys within the display window
	TotalSessions     int
	TotalRevisionDays int
}
