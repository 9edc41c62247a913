package revision

import (
	"context"
	"fmt"

	"github.com/sambangiadharsh/algomind/internal/domain"
	"github.com/sambangiadharsh/algomind/pkg/ctxutil"
)

// GetSettings returns the caller's scheduling settings, falling back to
// defaults when none were ever saved.
func (s *Service) GetSettings(ctx context.Context) (*domain.RevisionSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.loadSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings merges the input into the caller's settings and persists the
// result. A raised quota or a changed mode can open shortfalls in today's
// session, so a best-effort refresh runs afterwards.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.RevisionSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.loadSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := applySettingsChanges(current, input)
	merged.UserID = userID

	saved, err := s.settings.Save(ctx, &merged)
	if err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		"user_id", userID, "mode", saved.Mode)

	s.RefreshIfNeeded(ctx)

	return saved, nil
}

// applySettingsChanges merges the input changes into current settings.
func applySettingsChanges(current domain.RevisionSettings, input UpdateSettingsInput) domain.RevisionSettings {
	result := current

	if input.EasyCount != nil {
		result.EasyCount = *input.EasyCount
	}
	if input.MediumCount != nil {
		result.MediumCount = *input.MediumCount
	}
	if input.HardCount != nil {
		result.HardCount = *input.HardCount
	}
	if input.Mode != nil {
		result.Mode = *input.Mode
	}
	if input.Topics != nil {
		result.Topics = input.Topics
	}
	if input.Companies != nil {
		result.Companies = input.Companies
	}

	return result
}
