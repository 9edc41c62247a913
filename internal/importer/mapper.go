package importer

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/domain"
)

// Map converts a validated import record to a domain problem owned by the
// given user. Imported problems start pending with a one-day interval and
// are immediately due, so they enter the next session build.
func Map(userID uuid.UUID, p ImportProblem, now time.Time) *domain.Problem {
	return &domain.Problem{
		ID:                   uuid.New(),
		UserID:               userID,
		Title:                strings.TrimSpace(p.Title),
		Link:                 strings.TrimSpace(p.Link),
		Difficulty:           domain.Difficulty(strings.ToUpper(p.Difficulty)),
		Tags:                 normalizeTags(p.Tags),
		CompanyTags:          normalizeTags(p.CompanyTags),
		Status:               domain.ProblemStatusPending,
		Notes:                p.Notes,
		RevisionIntervalDays: 1,
		NextRevisionAt:       now,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// normalizeTags trims, lowercases, and deduplicates preserving order.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
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
