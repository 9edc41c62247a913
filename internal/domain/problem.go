package domain

import (
	"time"

	"github.com/google/uuid"
)

// ArchivedNextRevision is the far-future sentinel pinned to archived problems
// so they never become eligible again.
var ArchivedNextRevision = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// Problem represents a coding-practice problem owned by a user, together with
// its spaced-repetition scheduling state.
type Problem struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	Title                string
	Link                 string
	Difficulty           Difficulty
	Tags                 []string
	CompanyTags          []string
	Status               ProblemStatus
	Archived             bool
	Notes                string
	RevisionIntervalDays int
	LastRevisedAt        *time.Time
	NextRevisionAt       time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsEligible reports whether the problem is due for revision at the given
// time under the base rule, before any mode-specific filtering.
func (p *Problem) IsEligible(now time.Time) bool {
	if p.Archived || p.Status == ProblemStatusMastered {
		return false
	}
	return !p.NextRevisionAt.After(now)
}

// HasAnyTag reports whether the problem's tags intersect the given set.
func (p *Problem) HasAnyTag(tags []string) bool {
	return intersects(p.Tags, tags)
}

// HasAnyCompanyTag reports whether the problem's company tags intersect the given set.
func (p *Problem) HasAnyCompanyTag(companies []string) bool {
	return intersects(p.CompanyTags, companies)
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// ProblemFilter narrows problem listing. Zero values mean "no filter".
type ProblemFilter struct {
	Difficulty      Difficulty
	Status          ProblemStatus
	Tag             string
	CompanyTag      string
	IncludeArchived bool
	Limit           int
	Offset          int
}

// RevisionUpdateParams holds the scheduling fields to update on a problem
// after a review.
type RevisionUpdateParams struct {
	Status               ProblemStatus
	RevisionIntervalDays int
	LastRevisedAt        time.Time
	NextRevisionAt       time.Time
}
