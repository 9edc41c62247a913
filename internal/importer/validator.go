package importer

import (
	"fmt"
	"strings"

	"github.com/sambangiadharsh/algomind/internal/domain"
)

const maxTags = 20

// Validate checks a single imported problem before mapping.
func Validate(p ImportProblem) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if !domain.Difficulty(strings.ToUpper(p.Difficulty)).IsValid() {
		return fmt.Errorf("invalid difficulty %q", p.Difficulty)
	}
	if len(p.Tags) > maxTags {
		return fmt.Errorf("too many tags (%d)", len(p.Tags))
	}
	if len(p.CompanyTags) > maxTags {
		return fmt.Errorf("too many company tags (%d)", len(p.CompanyTags))
	}
	return nil
}
