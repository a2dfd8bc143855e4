package ports

import (
	"context"

	"focusboss/internal/domain"
)

// PreferencesReader reads user preferences
type PreferencesReader interface {
	GetPreferences(ctx context.Context) (*domain.Preferences, error)
}

// PreferencesWriter updates user preferences
type PreferencesWriter interface {
	SetConsent(ctx context.Context, given bool) error
	SetLastPersona(ctx context.Context, personaID string) error
	SetNotificationInterval(ctx context.Context, minutes int) error
}

// PreferencesRepository is the composite interface
type PreferencesRepository interface {
	PreferencesReader
	PreferencesWriter
}
