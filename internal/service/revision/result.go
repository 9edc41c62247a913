package revision

import "github.com/sambangiadharsh/algomind/internal/domain"

// SessionResult is the outcome of GetTodaysSession. Session is nil when
// nothing was eligible for today, which is an empty day and not an error.
// Requested holds the configured quota, Actual what the session contains,
// so callers can surface per-difficulty shortfalls.
type SessionResult struct {
	Session   *domain.RevisionSession
	Requested domain.DifficultyCounts
	Actual    domain.DifficultyCounts
}

// RefreshOutcome reports what a session top-up did. Callers triggering it
// from problem mutations are free to discard it.
type RefreshOutcome struct {
	Refreshed  bool
	AddedCount int
}
