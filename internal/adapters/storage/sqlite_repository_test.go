package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusboss/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "nested", "focusboss.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestGetPreferences_DefaultsWhenEmpty(t *testing.T) {
	repo := newTestRepository(t)

	prefs, err := repo.GetPreferences(context.Background())

	require.NoError(t, err)
	assert.False(t, prefs.ConsentGiven)
	assert.Equal(t, domain.DefaultNotificationIntervalMinutes, prefs.NotificationIntervalMinutes)
	assert.Empty(t, prefs.LastPersona)
}

func TestPreferencesRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SetConsent(ctx, true))
	require.NoError(t, repo.SetLastPersona(ctx, "drill_sergeant"))
	require.NoError(t, repo.SetNotificationInterval(ctx, 25))

	prefs, err := repo.GetPreferences(ctx)

	require.NoError(t, err)
	assert.Equal(t, domain.Preferences{
		ConsentGiven:                true,
		LastPersona:                 "drill_sergeant",
		NotificationIntervalMinutes: 25,
	}, *prefs)

	var count int64
	require.NoError(t, repo.db.Model(&PreferencesModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSetNotificationInterval_RejectsNonPositive(t *testing.T) {
	repo := newTestRepository(t)

	assert.Error(t, repo.SetNotificationInterval(context.Background(), 0))
}

func TestDayLogs_NewestFirstWithLimit(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)

	for i, id := range []string{"mon", "tue", "wed"} {
		ended := base.Add(time.Duration(i) * 24 * time.Hour)
		require.NoError(t, repo.AppendDayLog(ctx, domain.DayLogEntry{
			Date:            ended.Format("2006-01-02"),
			DistractionTime: 600,
			EndedAt:         ended,
			Goals:           "ship " + id,
			ID:              id,
			IdleTime:        120,
			PersonaID:       "coach",
			Report:          "ok",
			StartedAt:       ended.Add(-8 * time.Hour),
			WorkTime:        3600 * (i + 1),
		}))
	}

	entries, err := repo.ListDayLogs(ctx, 2)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "wed", entries[0].ID)
	assert.Equal(t, "tue", entries[1].ID)
	assert.Equal(t, 3*3600, entries[0].WorkTime)
	assert.Equal(t, "2026-03-04", entries[0].Date)
	assert.True(t, entries[0].StartedAt.Equal(base.Add(48*time.Hour-8*time.Hour)))

	all, err := repo.ListDayLogs(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAppendDayLog_RejectsDuplicateAndMissingID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	entry := domain.DayLogEntry{ID: "one", PersonaID: "coach", EndedAt: time.Now(), StartedAt: time.Now()}

	require.NoError(t, repo.AppendDayLog(ctx, entry))
	assert.Error(t, repo.AppendDayLog(ctx, entry))
	assert.Error(t, repo.AppendDayLog(ctx, domain.DayLogEntry{PersonaID: "coach"}))
}

func TestWithRetry(t *testing.T) {
	t.Run("retries busy then succeeds", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls < 3 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		}, 3)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		err := withRetry(func() error {
			return sqlite3.Error{Code: sqlite3.ErrLocked}
		}, 2)

		assert.ErrorContains(t, err, "after 2 retries")
		var sqliteErr sqlite3.Error
		require.ErrorAs(t, err, &sqliteErr)
		assert.Equal(t, sqlite3.ErrLocked, sqliteErr.Code)
	})

	t.Run("returns other errors immediately", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := withRetry(func() error {
			calls++
			return boom
		}, 3)

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})
}
