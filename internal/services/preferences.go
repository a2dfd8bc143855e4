package services

import (
	"context"
	"fmt"

	"focusboss/internal/domain"
	"focusboss/internal/logging"
	"focusboss/internal/ports"
)

// PreferencesService handles consent and notification preferences
type PreferencesService struct {
	prefs ports.PreferencesRepository
}

// NewPreferencesService creates a new PreferencesService
func NewPreferencesService(prefs ports.PreferencesRepository) *PreferencesService {
	return &PreferencesService{
		prefs: prefs,
	}
}

// GetPreferences returns the stored preferences with defaults applied
func (s *PreferencesService) GetPreferences(ctx context.Context) (*domain.Preferences, error) {
	prefs, err := s.prefs.GetPreferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	if prefs.NotificationIntervalMinutes <= 0 {
		prefs.NotificationIntervalMinutes = domain.DefaultNotificationIntervalMinutes
	}
	return prefs, nil
}

// GiveConsent records that the user allows activity tracking
func (s *PreferencesService) GiveConsent(ctx context.Context) error {
	logging.Logger.Info("Recording consent")

	if err := s.prefs.SetConsent(ctx, true); err != nil {
		logging.Logger.Error("Failed to record consent", "error", err)
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// SetNotificationInterval updates how many minutes of distraction trigger each nudge.
// Takes effect from the next started day.
func (s *PreferencesService) SetNotificationInterval(ctx context.Context, minutes int) error {
	if minutes < 1 {
		return fmt.Errorf("%w: notification interval must be at least 1 minute", domain.ErrValidation)
	}

	logging.Logger.Info("Setting notification interval", "minutes", minutes)

	if err := s.prefs.SetNotificationInterval(ctx, minutes); err != nil {
		logging.Logger.Error("Failed to update notification interval", "minutes", minutes, "error", err)
		return fmt.Errorf("failed to update notification interval: %w", err)
	}
	return nil
}
