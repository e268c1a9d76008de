package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/pkg/apperror"
)

// SettingsService handles per-user preferences
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the user's settings, falling back to defaults when
// none are stored yet
func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return entity.DefaultSettings(userID), nil
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	UserID       uuid.UUID
	CurrencyCode *string
	Language     *string
	ReminderHour *int
}

// UpdateSettings patches and persists the user's settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.UserSettings, error) {
	settings, err := s.GetSettings(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.CurrencyCode != nil {
		if len(*input.CurrencyCode) != 3 {
			return nil, apperror.NewFieldError("currency_code", "must be a 3-letter code")
		}
		settings.CurrencyCode = *input.CurrencyCode
	}
	if input.Language != nil {
		settings.Language = *input.Language
	}
	if input.ReminderHour != nil {
		if *input.ReminderHour < 0 || *input.ReminderHour > 23 {
			return nil, apperror.NewFieldError("reminder_hour", "must be between 0 and 23")
		}
		settings.ReminderHour = *input.ReminderHour
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
