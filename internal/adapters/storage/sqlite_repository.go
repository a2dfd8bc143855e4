package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"focusboss/internal/domain"
	"focusboss/internal/logging"
	"focusboss/internal/ports"
)

// SQLiteRepository implements the preferences and day log ports using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var (
	_ ports.DayLogRepository      = (*SQLiteRepository)(nil)
	_ ports.PreferencesRepository = (*SQLiteRepository)(nil)
)

// gormLogger wraps the focusboss logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("FOCUSBOSS_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating if needed) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if strings.HasPrefix(dbPath, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the CLI read history while serve is writing
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&PreferencesModel{}, &DayLogModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Database opened", "path", dbPath)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetPreferences implements PreferencesReader.GetPreferences.
// Returns defaults when nothing has been stored yet.
func (r *SQLiteRepository) GetPreferences(ctx context.Context) (*domain.Preferences, error) {
	var model PreferencesModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", preferencesRowID).First(&model).Error
	}, 3)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		prefs := preferencesModelToDomain(defaultPreferencesModel())
		return &prefs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	prefs := preferencesModelToDomain(model)
	return &prefs, nil
}

// SetConsent implements PreferencesWriter.SetConsent
func (r *SQLiteRepository) SetConsent(ctx context.Context, given bool) error {
	return r.updatePreferences(ctx, func(m *PreferencesModel) {
		m.ConsentGiven = given
	})
}

// SetLastPersona implements PreferencesWriter.SetLastPersona
func (r *SQLiteRepository) SetLastPersona(ctx context.Context, personaID string) error {
	return r.updatePreferences(ctx, func(m *PreferencesModel) {
		m.LastPersona = personaID
	})
}

// SetNotificationInterval implements PreferencesWriter.SetNotificationInterval
func (r *SQLiteRepository) SetNotificationInterval(ctx context.Context, minutes int) error {
	if minutes < 1 {
		return fmt.Errorf("invalid notification interval %d", minutes)
	}
	return r.updatePreferences(ctx, func(m *PreferencesModel) {
		m.NotificationInterval = minutes
	})
}

// updatePreferences loads the preferences row (or defaults), applies fn and saves it
func (r *SQLiteRepository) updatePreferences(ctx context.Context, fn func(*PreferencesModel)) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var model PreferencesModel
			err := tx.Where("id = ?", preferencesRowID).First(&model).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				model = defaultPreferencesModel()
				fn(&model)
				return tx.Create(&model).Error
			}
			if err != nil {
				return fmt.Errorf("failed to load preferences: %w", err)
			}

			fn(&model)
			return tx.Save(&model).Error
		})
	}, 3)
}

// AppendDayLog implements DayLogWriter.AppendDayLog
func (r *SQLiteRepository) AppendDayLog(ctx context.Context, entry domain.DayLogEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("day log entry has no id")
	}

	model := domainToDayLogModel(entry)
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to append day log %s: %w", entry.ID, err)
		}
		return nil
	}, 3)
}

// ListDayLogs implements DayLogReader.ListDayLogs, newest first
func (r *SQLiteRepository) ListDayLogs(ctx context.Context, limit int) ([]domain.DayLogEntry, error) {
	var models []DayLogModel

	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Order("ended_at DESC")
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list day logs: %w", err)
	}

	entries := make([]domain.DayLogEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, dayLogModelToDomain(m))
	}
	return entries, nil
}

func defaultPreferencesModel() PreferencesModel {
	return PreferencesModel{
		ID:                   preferencesRowID,
		NotificationInterval: domain.DefaultNotificationIntervalMinutes,
	}
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}
