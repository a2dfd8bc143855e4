package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"focusboss/internal/domain"
	portsmocks "focusboss/internal/ports/mocks"
)

func TestGetPreferences_AppliesDefaultInterval(t *testing.T) {
	repo := portsmocks.NewMockPreferencesRepository(t)
	repo.EXPECT().GetPreferences(mock.Anything).Return(&domain.Preferences{ConsentGiven: true}, nil)

	prefs, err := NewPreferencesService(repo).GetPreferences(context.Background())

	require.NoError(t, err)
	assert.True(t, prefs.ConsentGiven)
	assert.Equal(t, domain.DefaultNotificationIntervalMinutes, prefs.NotificationIntervalMinutes)
}

func TestGetPreferences_Error(t *testing.T) {
	repo := portsmocks.NewMockPreferencesRepository(t)
	repo.EXPECT().GetPreferences(mock.Anything).Return(nil, errors.New("no such table"))

	_, err := NewPreferencesService(repo).GetPreferences(context.Background())

	assert.ErrorContains(t, err, "no such table")
}

func TestGiveConsent(t *testing.T) {
	repo := portsmocks.NewMockPreferencesRepository(t)
	repo.EXPECT().SetConsent(mock.Anything, true).Return(nil)

	require.NoError(t, NewPreferencesService(repo).GiveConsent(context.Background()))
}

func TestSetNotificationInterval(t *testing.T) {
	t.Run("rejects less than a minute", func(t *testing.T) {
		repo := portsmocks.NewMockPreferencesRepository(t)

		err := NewPreferencesService(repo).SetNotificationInterval(context.Background(), 0)

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("stores minutes", func(t *testing.T) {
		repo := portsmocks.NewMockPreferencesRepository(t)
		repo.EXPECT().SetNotificationInterval(mock.Anything, 25).Return(nil)

		require.NoError(t, NewPreferencesService(repo).SetNotificationInterval(context.Background(), 25))
	})

	t.Run("wraps repository errors", func(t *testing.T) {
		repo := portsmocks.NewMockPreferencesRepository(t)
		repo.EXPECT().SetNotificationInterval(mock.Anything, 5).Return(errors.New("disk full"))

		err := NewPreferencesService(repo).SetNotificationInterval(context.Background(), 5)

		assert.ErrorContains(t, err, "disk full")
		assert.NotErrorIs(t, err, domain.ErrValidation)
	})
}

func TestListDays(t *testing.T) {
	entries := []domain.DayLogEntry{{ID: "b", Date: "2026-03-03"}, {ID: "a", Date: "2026-03-02"}}

	t.Run("default limit", func(t *testing.T) {
		repo := portsmocks.NewMockDayLogRepository(t)
		repo.EXPECT().ListDayLogs(mock.Anything, DefaultHistoryLimit).Return(entries, nil)

		got, err := NewHistoryService(repo).ListDays(context.Background(), 0)

		require.NoError(t, err)
		assert.Equal(t, entries, got)
	})

	t.Run("explicit limit and error", func(t *testing.T) {
		repo := portsmocks.NewMockDayLogRepository(t)
		repo.EXPECT().ListDayLogs(mock.Anything, 5).Return(nil, errors.New("boom"))

		_, err := NewHistoryService(repo).ListDays(context.Background(), 5)

		assert.ErrorContains(t, err, "failed to list day logs")
	})
}
