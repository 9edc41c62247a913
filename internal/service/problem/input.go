package problem

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/domain"
)

const (
	maxTitleLen = 300
	maxLinkLen  = 2048
	maxNotesLen = 10000
	maxTags     = 20
)

// CreateInput holds the fields for registering a new problem.
type CreateInput struct {
	Title       string
	Link        string
	Difficulty  domain.Difficulty
	Tags        []string
	CompanyTags []string
	Notes       string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if len(i.Link) > maxLinkLen {
		errs = append(errs, domain.FieldError{Field: "link", Message: "too long"})
	}
	if !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be EASY, MEDIUM, or HARD"})
	}
	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many"})
	}
	if len(i.CompanyTags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "company_tags", Message: "too many"})
	}
	if len(i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput carries partial problem changes. Nil fields keep their current
// values; a non-nil empty slice clears the tags.
type UpdateInput struct {
	ProblemID   uuid.UUID
	Title       *string
	Link        *string
	Difficulty  *domain.Difficulty
	Tags        []string
	CompanyTags []string
	Notes       *string
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ProblemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "problem_id", Message: "required"})
	}
	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "cannot be empty"})
		} else if len(*i.Title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}
	if i.Link != nil && len(*i.Link) > maxLinkLen {
		errs = append(errs, domain.FieldError{Field: "link", Message: "too long"})
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be EASY, MEDIUM, or HARD"})
	}
	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many"})
	}
	if len(i.CompanyTags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "company_tags", Message: "too many"})
	}
	if i.Notes != nil && len(*i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput narrows and pages the problem list.
type ListInput struct {
	Difficulty      domain.Difficulty
	Status          domain.ProblemStatus
	Tag             string
	CompanyTag      string
	IncludeArchived bool
	Limit           int
	Offset          int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Difficulty != "" && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be EASY, MEDIUM, or HARD"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be PENDING, REVISITING, or MASTERED"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
