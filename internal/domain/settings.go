package domain

import (
	"time"

	"github.com/google/uuid"
)

// RevisionSettings is the per-user scheduling snapshot. The revision engine
// only ever reads it; writes happen through the settings endpoint.
type RevisionSettings struct {
	UserID      uuid.UUID
	EasyCount   int
	MediumCount int
	HardCount   int
	Mode        RevisionMode
	Topics      []string
	Companies   []string
	UpdatedAt   time.Time
}

// DefaultRevisionSettings returns the snapshot used when a user has never
// saved settings.
func DefaultRevisionSettings(userID uuid.UUID) RevisionSettings {
	return RevisionSettings{
		UserID:      userID,
		EasyCount:   2,
		MediumCount: 2,
		HardCount:   1,
		Mode:        RevisionModeRandom,
	}
}

// Quota returns the per-difficulty session quota.
func (s RevisionSettings) Quota() DifficultyCounts {
	return DifficultyCounts{Easy: s.EasyCount, Medium: s.MediumCount, Hard: s.HardCount}
}
