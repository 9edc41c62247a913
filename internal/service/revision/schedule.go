package revision

import (
	"slices"
	"sort"

	"github.com/sambangiadharsh/algomind/internal/domain"
)

// The scheduling pipeline is a chain of pure functions over an eligible pool:
// FilterByMode, then Prioritize, then Shuffle, then Allocate. None of them
// fail on valid typed input; an empty result at any stage is a valid output.

// FilterByMode applies the settings' mode refinement to an eligible pool.
// TOPIC requires a tag overlap with settings.Topics, COMPANY a company-tag
// overlap, COMBO both. A mode whose filter set is empty degrades to RANDOM
// semantics for that dimension.
func FilterByMode(problems []*domain.Problem, settings domain.RevisionSettings) []*domain.Problem {
	wantTopics := len(settings.Topics) > 0 &&
		(settings.Mode == domain.RevisionModeTopic || settings.Mode == domain.RevisionModeCombo)
	wantCompanies := len(settings.Companies) > 0 &&
		(settings.Mode == domain.RevisionModeCompany || settings.Mode == domain.RevisionModeCombo)

	if !wantTopics && !wantCompanies {
		return slices.Clone(problems)
	}

	out := make([]*domain.Problem, 0, len(problems))
	for _, p := range problems {
		if wantTopics && !p.HasAnyTag(settings.Topics) {
			continue
		}
		if wantCompanies && !p.HasAnyCompanyTag(settings.Companies) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Prioritize returns the pool in ascending priority order:
// older createdAt first, then status (Pending before Revisiting before
// Mastered), then shorter revision interval. The sort is stable so ties keep
// their incoming order.
func Prioritize(problems []*domain.Problem) []*domain.Problem {
	out := slices.Clone(problems)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		if ra, rb := statusRank(a.Status), statusRank(b.Status); ra != rb {
			return ra < rb
		}
		return a.RevisionIntervalDays < b.RevisionIntervalDays
	})
	return out
}

func statusRank(s domain.ProblemStatus) int {
	switch s {
	case domain.ProblemStatusPending:
		return 1
	case domain.ProblemStatusRevisiting:
		return 2
	default: // Mastered should already be excluded by eligibility
		return 3
	}
}

// Classic C rand LCG constants. The generator is fixed here rather than taken
// from math/rand so the permutation for a given day never changes across Go
// releases.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 1 << 31
)

// Shuffle applies a Fisher-Yates permutation driven by a seeded LCG.
// Same seed and same input order always produce the same output order, which
// keeps a day's session stable across repeated requests.
func Shuffle(problems []*domain.Problem, seed int64) []*domain.Problem {
	out := slices.Clone(problems)
	state := seed % lcgModulus
	if state < 0 {
		state = -state
	}
	for i := len(out) - 1; i > 0; i-- {
		state = (state*lcgMultiplier + lcgIncrement) % lcgModulus
		j := int(state % int64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Allocate carves the session list out of the shuffled pool: partition by
// difficulty preserving pool order, take up to the quota for each, and
// concatenate Easy, Medium, Hard. When a difficulty has fewer problems than
// requested the session simply contains fewer. The shortfall is visible in
// the returned counts and is never backfilled from other difficulties.
func Allocate(pool []*domain.Problem, quota domain.DifficultyCounts) ([]*domain.Problem, domain.DifficultyCounts) {
	byDifficulty := map[domain.Difficulty][]*domain.Problem{}
	for _, p := range pool {
		byDifficulty[p.Difficulty] = append(byDifficulty[p.Difficulty], p)
	}

	var (
		picked []*domain.Problem
		actual domain.DifficultyCounts
	)
	for _, d := range []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard} {
		n := min(quota.Of(d), len(byDifficulty[d]))
		picked = append(picked, byDifficulty[d][:n]...)
		actual.Add(d, n)
	}

	return picked, actual
}
