package revision

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/domain"
)

// MarkReviewedInput holds the parameters for completing a session entry.
type MarkReviewedInput struct {
	SessionID  uuid.UUID
	ProblemID  uuid.UUID
	Confidence domain.Confidence
}

// Validate checks all fields and collects all errors.
func (i *MarkReviewedInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if i.ProblemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "problem_id", Message: "required"})
	}
	if !i.Confidence.IsValid() {
		errs = append(errs, domain.FieldError{Field: "confidence", Message: "must be FORGOT, LESS_CONFIDENT, or MASTERED"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// maxQuotaPerDifficulty caps how many problems a user can request per
// difficulty in a single day.
const maxQuotaPerDifficulty = 20

// UpdateSettingsInput carries partial settings changes. Nil fields keep
// their current values; a non-nil empty Topics or Companies slice clears
// the filter.
type UpdateSettingsInput struct {
	EasyCount   *int
	MediumCount *int
	HardCount   *int
	Mode        *domain.RevisionMode
	Topics      []string
	Companies   []string
}

// Validate checks all fields and collects all errors.
func (i *UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	checkCount := func(field string, v *int) {
		if v == nil {
			return
		}
		if *v < 0 || *v > maxQuotaPerDifficulty {
			errs = append(errs, domain.FieldError{
				Field:   field,
				Message: fmt.Sprintf("must be between 0 and %d", maxQuotaPerDifficulty),
			})
		}
	}
	checkCount("easy_count", i.EasyCount)
	checkCount("medium_count", i.MediumCount)
	checkCount("hard_count", i.HardCount)

	if i.Mode != nil && !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be RANDOM, TOPIC, COMPANY, or COMBO"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
